package client

import (
	"github.com/placename-desk/placename-desk/client/internal/errors"
)

// RelayError is returned by every failed relay call. Error() is the text
// shown to end users.
type RelayError = errors.RelayError

// ErrorKind classifies a RelayError.
type ErrorKind = errors.Kind

const (
	KindValidation = errors.Validation
	KindTransport  = errors.Transport
	KindStatus     = errors.Status
	KindDecode     = errors.Decode
)

// ErrEmptySysID is wrapped by the error GetPlacename returns for a blank id.
var ErrEmptySysID = errors.ErrEmptySysID

// KindOf reports the kind of a relay error; ok is false for other errors.
func KindOf(err error) (ErrorKind, bool) { return errors.KindOf(err) }

// IsValidation reports whether err was raised before any request was sent.
func IsValidation(err error) bool { return hasKind(err, KindValidation) }

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool { return hasKind(err, KindTransport) }

// IsStatus reports whether the gazetteer answered with a non-2xx status.
func IsStatus(err error) bool { return hasKind(err, KindStatus) }

// IsDecode reports whether a 2xx body could not be parsed as JSON.
func IsDecode(err error) bool { return hasKind(err, KindDecode) }

func hasKind(err error, k ErrorKind) bool {
	got, ok := errors.KindOf(err)
	return ok && got == k
}
