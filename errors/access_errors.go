// api/errors/access_errors.go
package errors

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrAmbiguousActor  = errors.New("ambiguous actor")
	ErrForbidden       = errors.New("forbidden")
	ErrNoEvaluator     = errors.New("no access evaluator for actor kind")
	ErrInvalidRole     = errors.New("invalid employee role data")
)
