package middleware

import "github.com/aretw0/logframe/pkg/ports"

// Middleware allows wrapping a Recorder to add behavior.
type Middleware func(ports.Recorder) ports.Recorder

// Chain applies mws so that the first one sees records first.
func Chain(next ports.Recorder, mws ...Middleware) ports.Recorder {
	for i := len(mws) - 1; i >= 0; i-- {
		next = mws[i](next)
	}
	return next
}
