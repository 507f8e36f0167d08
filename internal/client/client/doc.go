// Package client is the transport to the GophSession backend API.
//
// # Overview
//
// Every call returns an Envelope {status, data, error}. Remote and transport
// failures never come back as Go errors: an unreachable server yields
// status 0 with an error object of kind "transport". Callers decide what a
// status means; Envelope.Err maps the common cases onto sentinel errors
// (ErrUnavailable, ErrUnauthorized) for callers that prefer errors.Is.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All calls take a context and are
// also bounded by the configured request timeout.
package client
