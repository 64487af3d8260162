package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := hasher.Info(record)
//	if errors.Is(err, hashing.ErrInvalidRecord) {
//	    // stored record is malformed
//	}
//
// Note that [Hasher.Check] never returns these for a malformed stored
// record; verification fails silently instead. The sentinels surface on the
// inspection paths (Info, NeedsRehash) and on construction/registration.
var (
	// ErrInvalidRecord is returned when a credential record cannot be parsed:
	// unrecognised format, wrong field count, bad iteration count, or invalid
	// base64 encoding.
	ErrInvalidRecord = errors.New("hashing: invalid or unrecognised credential record")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value outside the allowed range (e.g. a non-positive PBKDF2
	// iteration count).
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrSchemeMismatch is returned by a [Hasher]'s Info or NeedsRehash
	// method when the record was produced by a different scheme than the one
	// implemented by that hasher.
	ErrSchemeMismatch = errors.New("hashing: record was produced by a different scheme")

	// ErrDriverNotFound is returned by [Manager.Driver], or indirectly by the
	// Manager's hashing operations, when the requested driver has not been
	// registered.
	ErrDriverNotFound = errors.New("hashing: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("hashing: driver name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterDriver] when a nil
	// [Hasher] is supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")
)
