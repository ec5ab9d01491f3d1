// Package middleware decorates ports.Recorder implementations.
package middleware
