package hashing_test

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/AstudilloAriel/tiempo-utils/hashing"
)

// fastPBKDF2Opts returns a low iteration count for unit tests.
// These parameters are intentionally weak — do NOT use in production.
func fastPBKDF2Opts() hashing.PBKDF2Options {
	return hashing.PBKDF2Options{
		Iterations: 100,
		KeyLen:     16,
		SaltLen:    8,
	}
}

func newTestPBKDF2Hasher(tb testing.TB) *hashing.PBKDF2Hasher {
	tb.Helper()
	h, err := hashing.NewPBKDF2Hasher(fastPBKDF2Opts())
	if err != nil {
		tb.Fatalf("NewPBKDF2Hasher: %v", err)
	}
	return h
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructor validation
// ──────────────────────────────────────────────────────────────────────────────

func TestNewPBKDF2Hasher_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts hashing.PBKDF2Options
	}{
		{"iterations=0", hashing.PBKDF2Options{Iterations: 0, KeyLen: 16, SaltLen: 8}},
		{"iterations negative", hashing.PBKDF2Options{Iterations: -1, KeyLen: 16, SaltLen: 8}},
		{"key_len<4", hashing.PBKDF2Options{Iterations: 100, KeyLen: 3, SaltLen: 8}},
		{"salt_len<8", hashing.PBKDF2Options{Iterations: 100, KeyLen: 16, SaltLen: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hashing.NewPBKDF2Hasher(tt.opts)
			if !errors.Is(err, hashing.ErrInvalidOption) {
				t.Errorf("expected ErrInvalidOption, got %v", err)
			}
		})
	}
}

func TestDefaultPBKDF2Options(t *testing.T) {
	opts := hashing.DefaultPBKDF2Options()
	if opts.Iterations != hashing.DefaultPBKDF2Iterations {
		t.Errorf("Iterations = %d, want %d", opts.Iterations, hashing.DefaultPBKDF2Iterations)
	}
	if opts.KeyLen != hashing.DefaultPBKDF2KeyLen {
		t.Errorf("KeyLen = %d, want %d", opts.KeyLen, hashing.DefaultPBKDF2KeyLen)
	}
	if opts.SaltLen != hashing.DefaultPBKDF2SaltLen {
		t.Errorf("SaltLen = %d, want %d", opts.SaltLen, hashing.DefaultPBKDF2SaltLen)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Make — record format
// ──────────────────────────────────────────────────────────────────────────────

func TestPBKDF2Hasher_Make_RecordFormat(t *testing.T) {
	h := newTestPBKDF2Hasher(t)
	record, err := h.Make("password")
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(record, "$")
	if len(parts) != 4 {
		t.Fatalf("record %q: got %d fields, want 4", record, len(parts))
	}
	if parts[0] != "pbkdf2" {
		t.Errorf("scheme tag = %q, want pbkdf2", parts[0])
	}
	if parts[1] != "100" {
		t.Errorf("iteration field = %q, want 100", parts[1])
	}

	salt, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		t.Fatalf("salt field is not standard base64: %v", err)
	}
	if len(salt) != 8 {
		t.Errorf("salt length = %d bytes, want 8", len(salt))
	}

	key, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		t.Fatalf("key field is not standard base64: %v", err)
	}
	if len(key) != 16 {
		t.Errorf("derived key length = %d bytes, want 16", len(key))
	}
}

func TestPBKDF2Hasher_Make_DefaultKeyLengthIs256Bits(t *testing.T) {
	h, err := hashing.NewPBKDF2Hasher(hashing.DefaultPBKDF2Options())
	if err != nil {
		t.Fatal(err)
	}
	record, err := h.Make("password")
	if err != nil {
		t.Fatal(err)
	}
	parts := strings.Split(record, "$")
	key, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		t.Fatal(err)
	}
	if len(key) != 32 {
		t.Errorf("derived key length = %d bytes, want 32", len(key))
	}
	if parts[1] != "120000" {
		t.Errorf("iteration field = %q, want 120000", parts[1])
	}
}

func TestPBKDF2Hasher_Make_UniqueRecords(t *testing.T) {
	h := newTestPBKDF2Hasher(t)
	r1, _ := h.Make("same")
	r2, _ := h.Make("same")
	if r1 == r2 {
		t.Error("two Make calls must produce different records (fresh salts)")
	}
	// Both must still verify.
	for _, r := range []string{r1, r2} {
		ok, err := h.Check("same", r)
		if err != nil || !ok {
			t.Errorf("Check(same, %q) = (%v, %v), want (true, nil)", r, ok, err)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Check — verification
// ──────────────────────────────────────────────────────────────────────────────

func TestPBKDF2Hasher_Check_CorrectPassword(t *testing.T) {
	h := newTestPBKDF2Hasher(t)
	record, _ := h.Make("secret")
	ok, err := h.Check("secret", record)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("correct password did not verify")
	}
}

func TestPBKDF2Hasher_Check_WrongPassword(t *testing.T) {
	h := newTestPBKDF2Hasher(t)
	record, _ := h.Make("secret")
	ok, err := h.Check("not-the-secret", record)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("wrong password verified")
	}
}

func TestPBKDF2Hasher_Check_EmptyPasswordRoundTrip(t *testing.T) {
	// Rejecting blank passwords is the caller's job; the hasher itself must
	// handle the empty string like any other input.
	h := newTestPBKDF2Hasher(t)
	record, err := h.Make("")
	if err != nil {
		t.Fatal(err)
	}
	ok, _ := h.Check("", record)
	if !ok {
		t.Error("empty password did not verify against its own record")
	}
	ok, _ = h.Check("x", record)
	if ok {
		t.Error("non-empty password verified against the empty-password record")
	}
}

func TestPBKDF2Hasher_Check_MalformedRecordsSilentFalse(t *testing.T) {
	h := newTestPBKDF2Hasher(t)

	valid, _ := h.Make("secret")
	parts := strings.Split(valid, "$")

	tests := []struct {
		name   string
		record string
	}{
		{"empty string", ""},
		{"garbage", "not a record at all"},
		{"three fields", "pbkdf2$100$" + parts[2]},
		{"five fields", valid + "$extra"},
		{"wrong scheme tag", "scrypt$100$" + parts[2] + "$" + parts[3]},
		{"bcrypt record", "$2b$12$RvYl8pFk2NwSsOaryUH0u.G5EW27PFJgLKvoj6M1KRlsGkfY1jy2i"},
		{"non-numeric iterations", "pbkdf2$many$" + parts[2] + "$" + parts[3]},
		{"zero iterations", "pbkdf2$0$" + parts[2] + "$" + parts[3]},
		{"negative iterations", "pbkdf2$-5$" + parts[2] + "$" + parts[3]},
		{"invalid salt base64", "pbkdf2$100$!!!$" + parts[3]},
		{"invalid key base64", "pbkdf2$100$" + parts[2] + "$!!!"},
		{"empty key", "pbkdf2$100$" + parts[2] + "$"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Check("secret", tt.record)
			if err != nil {
				t.Fatalf("Check must not report an error for a malformed record, got %v", err)
			}
			if ok {
				t.Error("malformed record verified")
			}
		})
	}
}

func TestPBKDF2Hasher_Check_SurvivesParameterChange(t *testing.T) {
	// Records carry their own parameters: a record made with old options
	// must keep verifying after the hasher's configuration is raised.
	old := newTestPBKDF2Hasher(t)
	record, _ := old.Make("secret")

	upgraded, err := hashing.NewPBKDF2Hasher(hashing.PBKDF2Options{
		Iterations: 200,
		KeyLen:     32,
		SaltLen:    16,
	})
	if err != nil {
		t.Fatal(err)
	}
	ok, err := upgraded.Check("secret", record)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("record made under old options did not verify under new options")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// NeedsRehash / Info
// ──────────────────────────────────────────────────────────────────────────────

func TestPBKDF2Hasher_NeedsRehash(t *testing.T) {
	h := newTestPBKDF2Hasher(t)
	record, _ := h.Make("secret")

	needs, err := h.NeedsRehash(record)
	if err != nil {
		t.Fatal(err)
	}
	if needs {
		t.Error("record made with current options flagged for rehash")
	}

	upgraded, _ := hashing.NewPBKDF2Hasher(hashing.PBKDF2Options{
		Iterations: 200, KeyLen: 16, SaltLen: 8,
	})
	needs, err = upgraded.NeedsRehash(record)
	if err != nil {
		t.Fatal(err)
	}
	if !needs {
		t.Error("record with outdated iteration count not flagged for rehash")
	}
}

func TestPBKDF2Hasher_NeedsRehash_Errors(t *testing.T) {
	h := newTestPBKDF2Hasher(t)

	if _, err := h.NeedsRehash("pbkdf2$nope$AAAA$AAAA"); !errors.Is(err, hashing.ErrInvalidRecord) {
		t.Errorf("expected ErrInvalidRecord, got %v", err)
	}
	bcryptRecord := "$2b$12$RvYl8pFk2NwSsOaryUH0u.G5EW27PFJgLKvoj6M1KRlsGkfY1jy2i"
	if _, err := h.NeedsRehash(bcryptRecord); !errors.Is(err, hashing.ErrSchemeMismatch) {
		t.Errorf("expected ErrSchemeMismatch, got %v", err)
	}
}

func TestPBKDF2Hasher_Info(t *testing.T) {
	h := newTestPBKDF2Hasher(t)
	record, _ := h.Make("secret")

	info, err := h.Info(record)
	if err != nil {
		t.Fatal(err)
	}
	if info.Driver != hashing.DriverPBKDF2 {
		t.Errorf("Driver = %q, want pbkdf2", info.Driver)
	}
	if got := info.Params["iterations"]; got != 100 {
		t.Errorf("iterations = %v, want 100", got)
	}
	if got := info.Params["salt_len"]; got != 8 {
		t.Errorf("salt_len = %v, want 8", got)
	}
	if got := info.Params["key_len"]; got != 16 {
		t.Errorf("key_len = %v, want 16", got)
	}
}

func TestPBKDF2Hasher_Info_MalformedRecord(t *testing.T) {
	h := newTestPBKDF2Hasher(t)
	if _, err := h.Info("pbkdf2$100$bad!$AAAA"); !errors.Is(err, hashing.ErrInvalidRecord) {
		t.Errorf("expected ErrInvalidRecord, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DetectDriver
// ──────────────────────────────────────────────────────────────────────────────

func TestDetectDriver(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   hashing.DriverName
		ok     bool
	}{
		{"pbkdf2", "pbkdf2$120000$AAAA$BBBB", hashing.DriverPBKDF2, true},
		{"bcrypt 2a", "$2a$10$abcdefghijklmnopqrstuv", hashing.DriverBcrypt, true},
		{"bcrypt 2b", "$2b$12$abcdefghijklmnopqrstuv", hashing.DriverBcrypt, true},
		{"bcrypt 2y", "$2y$12$abcdefghijklmnopqrstuv", hashing.DriverBcrypt, true},
		{"unknown", "$argon2id$v=19$m=65536$AAAA$BBBB", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := hashing.DetectDriver(tt.record)
			if got != tt.want || ok != tt.ok {
				t.Errorf("DetectDriver(%q) = (%q, %v), want (%q, %v)",
					tt.record, got, ok, tt.want, tt.ok)
			}
		})
	}
}
