// Package httpserver exposes the operational HTTP surface of Muster.
//
// The server carries health probes (/healthz, /readyz) and a read-only
// group listing endpoint for tooling. All interactive traffic (pagination
// callbacks, group mutations) flows through the pager and service packages,
// never through HTTP.
package httpserver
