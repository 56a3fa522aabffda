package models

import "github.com/cockroachdb/errors"

// Error kinds raised by the registries and the bill factory.
// Detection sites wrap them with context; match with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidBillType = errors.New("invalid bill type")
	ErrInvalidAmount   = errors.New("invalid amount")
)

// UserNotFound reports an unknown user id.
func UserNotFound(id int) error {
	return errors.Wrapf(ErrNotFound, "user %d", id)
}

// ProviderNotFound reports an unknown provider id.
func ProviderNotFound(id int) error {
	return errors.Wrapf(ErrNotFound, "provider %d", id)
}

// BillIndexOutOfRange reports a bill index outside [0, length).
func BillIndexOutOfRange(index, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "bill index %d (user has %d bills)", index, length)
}
