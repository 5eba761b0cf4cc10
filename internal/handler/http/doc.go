// Package http implements the REST transport of the theme store emulator.
//
// It exposes route wiring, request handlers, and middleware. Authentication
// by api key, request tracing, access logging and response compression are
// handled here before requests are delegated to the service layer.
package http
