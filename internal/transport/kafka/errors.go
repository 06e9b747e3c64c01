package kafka

import (
	"errors"

	"dispatch-platform/internal/apperr"
)

// errPermanent marks failures that retrying the same message cannot fix.
var errPermanent = errors.New("kafka: permanent failure")

type permanent struct{ err error }

func (p permanent) Error() string   { return p.err.Error() }
func (p permanent) Unwrap() []error { return []error{p.err, errPermanent} }

// Permanent marks err as not worth retrying. Permanent(nil) is nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanent{err: err}
}

// IsPermanent reports whether err was marked with Permanent or is a
// validation failure, which a redelivery would hit again.
func IsPermanent(err error) bool {
	return errors.Is(err, errPermanent) || errors.Is(err, apperr.ErrInvalid)
}
