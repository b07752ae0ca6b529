// Package model defines the domain types for the VolunteerHub API.
//
// Types in this package are shared across repositories, services, and
// handlers. Derived types (such as MatchResult) are computed on demand
// and never persisted.
package model
