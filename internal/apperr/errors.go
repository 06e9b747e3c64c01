package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist or belongs
// to another tenant. Callers cannot tell the two apart.
var ErrNotFound = errors.New("not found")

// ErrTenantContextMissing is returned by tenant-scoped operations invoked
// without a resolved tenant.
var ErrTenantContextMissing = errors.New("tenant context missing")

// ErrTenantNotFound is returned when the tenant selector matches no active tenant.
var ErrTenantNotFound = errors.New("tenant not found")

// ErrRouteUnavailable is returned when the routing provider cannot produce a route.
var ErrRouteUnavailable = errors.New("route unavailable")

// ErrAlreadyAssigned signals a lost assignment race: the order already has a driver.
var ErrAlreadyAssigned = conflict("order already assigned")

// ErrAlreadyActive signals that the driver already has an open shift.
var ErrAlreadyActive = conflict("shift already active")

// ErrInvalidTransition signals that the order is not in a state the requested
// transition can start from.
var ErrInvalidTransition = conflict("invalid status transition")

// conflictError is a named conflict that also matches ErrConflict.
type conflictError struct{ msg string }

func conflict(msg string) error { return &conflictError{msg: msg} }

func (e *conflictError) Error() string { return e.msg }

func (e *conflictError) Is(target error) bool { return target == ErrConflict }
