// Package middleware provides HTTP middleware for the VolunteerHub API.
//
// # Available Middleware
//
//   - RequestID: attaches a unique request identifier to every request
//   - Logger: structured request logging via log/slog
//   - Recovery: panic recovery with a JSON 500 response
//   - CORS: cross-origin resource sharing with preflight handling
//   - Compress: gzip response compression
//   - Auth: bearer token validation and identity extraction
//   - RequireAdmin: role check for admin-only routes
//   - RateLimit: token bucket rate limiting per user or IP
//
// # Composition
//
// Middlewares compose with Chain; the first middleware listed is outermost:
//
//	handler := middleware.Chain(mux,
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.Recovery,
//	)
//
// # Context Values
//
// After the Auth middleware runs, handlers can read the authenticated
// identity from the request context:
//
//	userID := middleware.GetUserID(r.Context())
//	claims := middleware.GetClaims(r.Context())
package middleware
