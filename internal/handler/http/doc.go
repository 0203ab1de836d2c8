// Package http implements the HTTP transport layer of the trade-journal
// server.
//
// It exposes route wiring, request handlers and middleware. Basic
// authentication, request tracing, access logging and body compression are
// handled here before requests are delegated to the service layer.
package http
