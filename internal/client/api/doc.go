// Package api contains the client-side building blocks for talking to the
// DataShare backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register/Login, Upload, FileInfo, Download, ListFiles, DeleteFile.
//  2. A concrete HTTP implementation (see HTTPClient) that attaches the
//     bearer credential through a single request interceptor, speaks the
//     JSON/multipart REST contract, and decodes error bodies into
//     RequestError values.
//  3. The display-message derivation for failures: a fixed lookup of known
//     server messages, then the verbatim server message, then a generic
//     fallback (see DisplayMessage).
//
// # Error Handling
//
// Transport-level failures (connection refused, timeouts) are wrapped with
// ErrUnavailable so callers can match them with errors.Is. Server rejections
// carry a *RequestError with the HTTP status and the server's error string,
// when one was present. Neither kind is ever surfaced raw to the user;
// workflows convert them with DisplayMessage.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation and timeouts.
package api
