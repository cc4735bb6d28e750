// Package translator exposes the DeepL capability set behind a normalized
// response and failure contract.
//
// A Client wraps the vendor client from internal/deepl and performs exactly
// two jobs on every operation:
//
//   - Response normalization: heterogeneous vendor result shapes are copied
//     field by field into a small set of canonical response records with
//     fixed, always-present fields, so callers never branch on shape.
//   - Error classification: vendor failure kinds are mapped to a closed set
//     of integer status codes. The two translation operations receive
//     fine-grained codes (403 authorization, 456 quota, 429 rate limit);
//     every other operation maps all vendor failures to 500. A missing
//     local upload file maps to 404.
//
// The package never retries, never logs, and never swallows failures: every
// failure propagates as a *APIError chaining the vendor error as its cause.
package translator
