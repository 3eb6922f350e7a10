// api/errors/client_errors.go
package errors

import "errors"

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientData = errors.New("invalid client data")
	ErrClientConflict    = errors.New("client conflict")
	ErrMalformedPayload  = errors.New("malformed payload")
)
