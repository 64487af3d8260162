package hashing

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultPBKDF2Iterations is the default PBKDF2 work factor.
	// 120 000 iterations of HMAC-SHA256 is in line with the OWASP
	// recommendation for PBKDF2-HMAC-SHA256 password storage.
	DefaultPBKDF2Iterations = 120_000

	// DefaultPBKDF2KeyLen is the default derived-key length in bytes (256 bits).
	DefaultPBKDF2KeyLen = 32

	// DefaultPBKDF2SaltLen is the default random salt length in bytes.
	DefaultPBKDF2SaltLen = 16

	// schemePBKDF2 is the scheme tag written as the first record field.
	schemePBKDF2 = "pbkdf2"
)

// PBKDF2Options configures a [PBKDF2Hasher].
//
// Iterations and KeyLen are encoded into every produced record (KeyLen
// implicitly, as the length of the stored key), so changing them only
// affects newly produced records; existing records remain verifiable
// because verification reads its parameters back out of the record.
type PBKDF2Options struct {
	// Iterations is the PBKDF2 iteration count.
	// Minimum: 1. Default: [DefaultPBKDF2Iterations].
	Iterations int

	// KeyLen is the derived-key length in bytes.
	// Minimum: 4. Default: [DefaultPBKDF2KeyLen].
	KeyLen int

	// SaltLen is the random salt length in bytes.
	// Minimum: 8. Default: [DefaultPBKDF2SaltLen].
	SaltLen int
}

// DefaultPBKDF2Options returns PBKDF2Options with the recommended defaults.
func DefaultPBKDF2Options() PBKDF2Options {
	return PBKDF2Options{
		Iterations: DefaultPBKDF2Iterations,
		KeyLen:     DefaultPBKDF2KeyLen,
		SaltLen:    DefaultPBKDF2SaltLen,
	}
}

func validatePBKDF2Options(opts PBKDF2Options) error {
	if opts.Iterations < 1 {
		return fmt.Errorf("%w: pbkdf2 iterations must be ≥ 1, got %d", ErrInvalidOption, opts.Iterations)
	}
	if opts.KeyLen < 4 {
		return fmt.Errorf("%w: pbkdf2 key_len must be ≥ 4, got %d", ErrInvalidOption, opts.KeyLen)
	}
	if opts.SaltLen < 8 {
		return fmt.Errorf("%w: pbkdf2 salt_len must be ≥ 8, got %d", ErrInvalidOption, opts.SaltLen)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Record format helpers
// ──────────────────────────────────────────────────────────────────────────────

// pbkdf2Record holds the fields decoded from a stored record. A record is
// parsed exactly once, at verification (or inspection) entry; everything
// after decodeRecord works with typed fields, never with the raw string.
type pbkdf2Record struct {
	iterations int
	salt       []byte
	key        []byte
}

// encodeRecord serialises a PBKDF2 credential record:
//
//	pbkdf2$<iterations>$<salt_base64>$<key_base64>
//
// The base64 fields use the standard alphabet with padding (RFC 4648 §4),
// which keeps records byte-for-byte interoperable with stores written by
// the JVM's Base64 encoder.
func encodeRecord(iterations int, salt, key []byte) string {
	return fmt.Sprintf("%s$%d$%s$%s",
		schemePBKDF2,
		iterations,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	)
}

// decodeRecord parses a stored record into its typed fields.
//
// A record is either fully well-formed — exactly four fields, the pbkdf2
// tag, a positive decimal iteration count, two decodable base64 fields with
// a non-empty key — or it is rejected whole. There is no partially trusted
// parse result.
func decodeRecord(record string) (*pbkdf2Record, error) {
	parts := strings.Split(record, "$")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: expected 4 fields, got %d", ErrInvalidRecord, len(parts))
	}
	if parts[0] != schemePBKDF2 {
		return nil, fmt.Errorf("%w: unknown scheme tag %q", ErrInvalidRecord, parts[0])
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric iteration count %q", ErrInvalidRecord, parts[1])
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iteration count must be positive, got %d", ErrInvalidRecord, iterations)
	}

	salt, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt base64: %v", ErrInvalidRecord, err)
	}

	key, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid key base64: %v", ErrInvalidRecord, err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: empty derived key", ErrInvalidRecord)
	}

	return &pbkdf2Record{iterations: iterations, salt: salt, key: key}, nil
}

// randomSalt returns n cryptographically random bytes.
func randomSalt(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("hashing: pbkdf2: failed to generate salt: %w", err)
	}
	return b, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// PBKDF2Hasher
// ──────────────────────────────────────────────────────────────────────────────

// PBKDF2Hasher hashes passwords using PBKDF2 with HMAC-SHA256.
//
// Output format: pbkdf2$<iterations>$<salt base64>$<key base64>.
// All verification parameters are read back out of the record, so records
// produced under older iteration counts keep verifying after the hasher's
// configuration is raised; [PBKDF2Hasher.NeedsRehash] flags them for
// supersession.
//
// # Thread safety
//
// PBKDF2Hasher is immutable after construction and safe for concurrent use.
type PBKDF2Hasher struct {
	opts PBKDF2Options
}

// NewPBKDF2Hasher constructs a PBKDF2Hasher with the given options.
// Use [DefaultPBKDF2Options] for the recommended defaults.
//
// Returns [ErrInvalidOption] for out-of-range parameters. Construction is
// the only configuration gate: a process that would otherwise hash with
// unsafe parameters refuses to obtain a hasher at all, rather than
// degrading per call.
func NewPBKDF2Hasher(opts PBKDF2Options) (*PBKDF2Hasher, error) {
	if err := validatePBKDF2Options(opts); err != nil {
		return nil, err
	}
	return &PBKDF2Hasher{opts: opts}, nil
}

// Driver returns [DriverPBKDF2].
func (h *PBKDF2Hasher) Driver() DriverName { return DriverPBKDF2 }

// Options returns the current PBKDF2 parameter set.
func (h *PBKDF2Hasher) Options() PBKDF2Options { return h.opts }

// Make hashes password and returns a four-field pbkdf2 record.
// A fresh random salt of the configured length is generated for each call,
// so identical passwords never produce identical records.
func (h *PBKDF2Hasher) Make(password string) (string, error) {
	salt, err := randomSalt(h.opts.SaltLen)
	if err != nil {
		return "", err
	}
	key := pbkdf2.Key([]byte(password), salt, h.opts.Iterations, h.opts.KeyLen, sha256.New)
	return encodeRecord(h.opts.Iterations, salt, key), nil
}

// Check verifies that password matches the stored pbkdf2 record.
//
// The iteration count and key length are read from the record itself, so
// verification works correctly even when the hasher's options have changed
// since the record was produced.
//
// Any structural defect in the record — wrong field count, wrong scheme
// tag, non-numeric or non-positive iteration count, undecodable base64 —
// verifies as (false, nil), indistinguishable from a wrong password. The
// derived-key comparison runs in constant time over the full key length.
func (h *PBKDF2Hasher) Check(password, record string) (bool, error) {
	p, err := decodeRecord(record)
	if err != nil {
		return false, nil
	}
	computed := pbkdf2.Key([]byte(password), p.salt, p.iterations, len(p.key), sha256.New)
	return subtle.ConstantTimeCompare(computed, p.key) == 1, nil
}

// NeedsRehash returns true if the iteration count or key length stored in
// record differs from the hasher's current configuration.
//
// Returns [ErrSchemeMismatch] for a record of another scheme and
// [ErrInvalidRecord] for a record that cannot be parsed.
func (h *PBKDF2Hasher) NeedsRehash(record string) (bool, error) {
	if d, ok := DetectDriver(record); ok && d != DriverPBKDF2 {
		return false, fmt.Errorf("%w: record is %s, not pbkdf2", ErrSchemeMismatch, d)
	}
	p, err := decodeRecord(record)
	if err != nil {
		return false, err
	}
	return p.iterations != h.opts.Iterations || len(p.key) != h.opts.KeyLen, nil
}

// Info parses the record and returns the encoded parameters.
//
// Returned [HashInfo].Params:
//   - "iterations" → int
//   - "salt_len"   → int (bytes)
//   - "key_len"    → int (bytes)
func (h *PBKDF2Hasher) Info(record string) (HashInfo, error) {
	if d, ok := DetectDriver(record); ok && d != DriverPBKDF2 {
		return HashInfo{}, fmt.Errorf("%w: record is %s, not pbkdf2", ErrSchemeMismatch, d)
	}
	p, err := decodeRecord(record)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Driver: DriverPBKDF2,
		Params: map[string]any{
			"iterations": p.iterations,
			"salt_len":   len(p.salt),
			"key_len":    len(p.key),
		},
	}, nil
}
