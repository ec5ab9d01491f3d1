/*
Package observability turns engine lifecycle events into Prometheus metrics.

Metrics.Hooks returns a domain.LifecycleHooks value for the engine's
WithLifecycleHooks option. The CLI has no HTTP listener; it writes the registry in the
node-exporter textfile format with WriteTextfile.
*/
package observability
