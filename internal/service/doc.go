// Package service implements the gym business rules: registration with
// generated credentials, trainee and trainer lifecycle, training scheduling
// and filtered listings, and token-based authentication.
//
// Services depend on storage through interfaces declared in this package and
// satisfied by the repository package, which keeps every rule unit-testable
// against in-memory fakes.
//
// # Error Contract
//
// Service methods return the sentinel errors from errors.go (checked with
// errors.Is) or a *model.ProblemDetails for field-level validation failures.
// The handler layer maps both onto HTTP problem responses.
package service
