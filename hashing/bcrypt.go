package hashing

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBcryptCost is the work factor used for newly produced bcrypt
	// hashes. Cost 12 keeps hashing in the 100–500 ms range on current
	// server hardware.
	//
	// New records should use [PBKDF2Hasher]; this driver exists so stored
	// bcrypt hashes keep verifying and can be flagged for migration.
	DefaultBcryptCost = 12
)

// BcryptOptions configures a [BcryptHasher].
type BcryptOptions struct {
	// Cost is the bcrypt work factor (logarithmic).
	// Valid range: [bcrypt.MinCost (4), bcrypt.MaxCost (31)].
	// Default: [DefaultBcryptCost].
	Cost int
}

// DefaultBcryptOptions returns BcryptOptions with [DefaultBcryptCost].
func DefaultBcryptOptions() BcryptOptions {
	return BcryptOptions{Cost: DefaultBcryptCost}
}

// BcryptHasher verifies and (where still required) produces bcrypt hashes.
//
// Bcrypt hashes are self-describing in the Modular Crypt Format ("$2b$12$…")
// and embed their own 128-bit salt, so no salt management is needed here.
//
// In this library bcrypt is the legacy scheme: registered in the [Manager]
// so that [Manager.CheckWithDetect] still verifies old hashes and
// [Manager.NeedsRehash] flags every one of them for supersession by a
// PBKDF2 record on the next successful login.
//
// # Thread safety
//
// BcryptHasher is immutable after construction and safe for concurrent use.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a BcryptHasher with the provided options.
// Returns [ErrInvalidOption] if Cost is outside [bcrypt.MinCost, bcrypt.MaxCost].
func NewBcryptHasher(opts BcryptOptions) (*BcryptHasher, error) {
	if opts.Cost < bcrypt.MinCost || opts.Cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, opts.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: opts.Cost}, nil
}

// Driver returns [DriverBcrypt].
func (h *BcryptHasher) Driver() DriverName { return DriverBcrypt }

// Cost returns the configured bcrypt work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Make hashes password with bcrypt and returns the Modular Crypt Format
// string. A fresh random salt is generated internally on every call.
//
// Note: bcrypt truncates passwords longer than 72 bytes.
func (h *BcryptHasher) Make(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Check verifies that password matches the bcrypt-encoded record.
//
// Mismatched passwords and structurally invalid records both verify as
// (false, nil); the two cases are indistinguishable to the caller, matching
// the package-wide verification contract.
func (h *BcryptHasher) Check(password, record string) (bool, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(record), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

// NeedsRehash returns true if the work factor encoded in record differs
// from the hasher's configured cost.
//
// Returns [ErrSchemeMismatch] for a record of another scheme and
// [ErrInvalidRecord] for a record that cannot be parsed.
func (h *BcryptHasher) NeedsRehash(record string) (bool, error) {
	if err := h.requireBcrypt(record); err != nil {
		return false, err
	}
	cost, err := bcrypt.Cost([]byte(record))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return cost != h.cost, nil
}

// Info extracts the work factor from a bcrypt record.
//
// Returned [HashInfo].Params:
//   - "cost" → int
func (h *BcryptHasher) Info(record string) (HashInfo, error) {
	if err := h.requireBcrypt(record); err != nil {
		return HashInfo{}, err
	}
	cost, err := bcrypt.Cost([]byte(record))
	if err != nil {
		return HashInfo{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return HashInfo{
		Driver: DriverBcrypt,
		Params: map[string]any{"cost": cost},
	}, nil
}

// requireBcrypt rejects records that clearly belong to another scheme.
func (h *BcryptHasher) requireBcrypt(record string) error {
	d, ok := DetectDriver(record)
	if !ok {
		return fmt.Errorf("%w: record does not appear to be bcrypt", ErrInvalidRecord)
	}
	if d != DriverBcrypt {
		return fmt.Errorf("%w: record is %s, not bcrypt", ErrSchemeMismatch, d)
	}
	return nil
}
