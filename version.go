package logframe

// Version is the release of the engine. Overridden at build time with
// -ldflags "-X github.com/aretw0/logframe.Version=...".
var Version = "0.1.0"
