// Package deepl is a client for the DeepL REST API v2.
//
// DeepL does not publish an official Go SDK, so this package plays the role
// the official client libraries play for other languages: request encoding,
// response decoding, endpoint selection, and a typed error taxonomy. It
// performs no retries, caching, or concurrency coordination of its own; a
// Client is safe for concurrent use because each call carries its own
// request state.
//
// Free-plan auth keys are suffixed ":fx" and are routed to
// api-free.deepl.com automatically.
//
// Every failure is reported as a *Error whose Kind identifies the cause
// category (authorization, quota, rate limit, ...) so callers can classify
// failures without inspecting HTTP status codes.
package deepl
