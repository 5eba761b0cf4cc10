// Package server runs the HTTP transport of the theme store emulator.
//
// It owns the server lifecycle: startup, signal handling, and graceful
// shutdown that lets in-flight requests finish.
package server
