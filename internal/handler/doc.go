// Package handler provides HTTP request handlers for the VolunteerHub API.
//
// Each handler struct encapsulates the services needed to serve requests for
// one feature area (authentication, profiles, events, matching, and so on).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the services it needs
//   - Methods handle specific HTTP endpoints; routing and method dispatch
//     happen in the server's mux
//   - Response helpers from response.go standardize output format
//   - Service errors are mapped to RFC 9457 Problem Details via MapServiceError
//
// # Authentication
//
// Protected handlers read the authenticated identity set by the auth
// middleware via middleware.GetUserID and middleware.GetClaims.
package handler
