// Package service contains the business logic for VolunteerHub.
//
// Services are constructed with a config struct holding their dependencies
// and depend on repository interfaces declared in this package, so tests can
// substitute lightweight mocks without touching the database layer.
//
// The matching service is the heart of the system: it scores volunteers
// against events on skills, weekday availability, and location, and ranks
// candidates in both directions (volunteers for an event, events for a
// volunteer). Match results are derived on demand and never persisted.
//
// All errors returned by service methods are sentinel values defined in
// errors.go; handlers translate them to HTTP problem responses.
package service
