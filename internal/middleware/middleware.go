// Package middleware holds the echo middleware shared by every route:
// request IDs, the request-scoped logger, New Relic tracing, CORS, rate
// limiting, panic recovery, Clerk authentication and the global error
// handler.
package middleware
