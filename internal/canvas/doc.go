// Package canvas contains the client-side building blocks for talking to a
// Canvas LMS instance.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the endpoints the app consumes: current-user profile, course list,
//     custom colors, dashboard cards, and the paginated activity stream.
//  2. A concrete HTTP implementation (see HTTPClient) bound to one
//     (domain, access token) pair, speaking JSON over
//     https://{domain}/api/v1/... with bearer-token authorization and
//     Link-header pagination.
//  3. Typed response records, including the type-tagged activity stream
//     items with a fallback variant for unrecognized types.
//
// # Error Handling
//
// Failures are classified so callers can react per class, matched with
// errors.Is/errors.As: ErrNetwork (no response), ErrUnauthorized (401/403),
// *RemoteError (other non-2xx, carrying status and raw body), and ErrDecode
// (shape mismatch). The client never retries; retry policy belongs to the
// caller.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package canvas
