// Package api defines the request and response messages of the Ludus RPC
// services. Messages are plain structs serialized as JSON; the validate tags
// are checked by the service layer before any storage access.
package api

// Empty is the message of procedures that take or return nothing.
type Empty struct{}

// IDRequest addresses a single record.
type IDRequest struct {
	ID string `json:"id" validate:"required"`
}
