// Package handler exposes the gym services over HTTP. Handlers decode
// requests, delegate to the service layer and translate service errors into
// RFC 9457 problem responses via MapServiceError.
package handler
