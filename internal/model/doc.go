// Package model defines domain entities and data structures for the gym CRM
// API.
//
// The package contains the struct definitions for domain objects,
// request/response types, and error definitions. Models are shared across
// all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: account identity with credentials and an activation flag
//   - Trainee: member profile layered on a User
//   - Trainer: coach profile layered on a User, with one specialization
//   - Training: a scheduled session linking one Trainee and one Trainer
//   - TrainingType: closed catalog of session categories
//
// # JSON Serialization
//
// All models use json struct tags for API serialization. Secrets (the User
// password) are tagged `json:"-"` and only ever leave the system through the
// registration Credentials response.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type   string `json:"type"`
//	    Title  string `json:"title"`
//	    Status int    `json:"status"`
//	    Detail string `json:"detail"`
//	}
package model
