package hashing

import "strings"

// DriverName identifies a hashing scheme driver.
// Using a named string type prevents accidental confusion with plain strings.
type DriverName string

const (
	// DriverPBKDF2 selects the PBKDF2-HMAC-SHA256 driver (the default).
	DriverPBKDF2 DriverName = "pbkdf2"
	// DriverBcrypt selects the bcrypt driver (legacy records only).
	DriverBcrypt DriverName = "bcrypt"
)

// Hasher is the core interface satisfied by all password-hashing drivers.
//
// All implementations must be safe for concurrent use by multiple
// goroutines. None of them holds state across calls: each Make draws fresh
// entropy from the system CSPRNG, and Check only reads its inputs.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded credential
	// record. A fresh cryptographic salt is generated for every call, so two
	// calls with the same password produce different records.
	//
	// Make does not reject empty or weak passwords; enforcing password rules
	// is the caller's concern and belongs in front of the hashing layer.
	Make(password string) (string, error)

	// Check verifies that password matches the previously stored record.
	// It returns (true, nil) only on an exact derived-key match.
	//
	// A structurally invalid record verifies as (false, nil), exactly like a
	// wrong password; the two failure cases are indistinguishable to the
	// caller. A non-nil error indicates an internal failure of the driver,
	// never a property of the record.
	//
	// The derived-key comparison is performed in constant time to prevent
	// timing attacks.
	Check(password, record string) (bool, error)

	// NeedsRehash reports whether record was produced with parameters that
	// differ from the hasher's current configuration. Callers should produce
	// a fresh record on the next successful login when this returns true;
	// records are superseded, never edited in place.
	//
	// Unlike Check, NeedsRehash returns ErrInvalidRecord for a record it
	// cannot parse and ErrSchemeMismatch for a record of another scheme.
	NeedsRehash(record string) (bool, error)

	// Info extracts metadata from a stored record without verifying it.
	// Useful for auditing and migration tooling.
	Info(record string) (HashInfo, error)

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// HashInfo carries metadata parsed from a stored credential record.
type HashInfo struct {
	// Driver is the hashing scheme that produced the record.
	Driver DriverName

	// Params holds scheme-specific parameters extracted from the record.
	//
	// For pbkdf2:
	//   "iterations" → int
	//   "salt_len"   → int (bytes)
	//   "key_len"    → int (bytes)
	//
	// For bcrypt:
	//   "cost" → int
	Params map[string]any
}

// DetectDriver inspects a stored record and returns the [DriverName] that
// produced it. It is a best-effort heuristic based on the record prefix and
// does not validate the rest of the record.
//
// The second return value is false when the format is not recognised.
func DetectDriver(record string) (DriverName, bool) {
	switch {
	case strings.HasPrefix(record, "pbkdf2$"):
		return DriverPBKDF2, true
	// bcrypt hashes start with $2a$, $2b$, or $2y$
	case strings.HasPrefix(record, "$2a$"),
		strings.HasPrefix(record, "$2b$"),
		strings.HasPrefix(record, "$2y$"):
		return DriverBcrypt, true
	default:
		return "", false
	}
}
