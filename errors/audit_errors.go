// api/errors/audit_errors.go
package errors

import "errors"

var (
	ErrInvalidAuditQuery = errors.New("invalid audit query")
	ErrAuditUnavailable  = errors.New("audit log queries unavailable")
)
