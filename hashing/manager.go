package hashing

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe driver registry and dispatcher for password
// hashing.
//
// Register one or more named [Hasher] implementations, nominate a default
// driver, and then call [Manager.Make] / [Manager.Check] /
// [Manager.NeedsRehash] through the Manager for day-to-day hashing
// operations. Because every stored record names its own scheme,
// [Manager.CheckWithDetect] can verify records from any registered driver,
// which is what makes a gradual bcrypt→pbkdf2 migration possible.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterDriver, SetDefaultDriver)
// while allowing concurrent reads (Make, Check, etc.).
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Hasher
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered with [Manager.RegisterDriver] before any
// hashing operation is invoked through the Manager.
//
// Use [NewDefaultManager] for the batteries-included variant.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Hasher),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with both built-in drivers registered
// using their recommended default options. The default driver is
// [DriverPBKDF2]; bcrypt is registered for verifying legacy hashes only.
//
//	m, err := hashing.NewDefaultManager()
//	record, _ := m.Make("secret")
func NewDefaultManager() (*Manager, error) {
	pbkdf2H, err := NewPBKDF2Hasher(DefaultPBKDF2Options())
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create default pbkdf2 hasher: %w", err)
	}
	bcryptH, err := NewBcryptHasher(DefaultBcryptOptions())
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create default bcrypt hasher: %w", err)
	}

	m := NewManager(DriverPBKDF2)
	_ = m.RegisterDriver(DriverPBKDF2, pbkdf2H)
	_ = m.RegisterDriver(DriverBcrypt, bcryptH)
	return m, nil
}

// RegisterDriver adds or replaces a named hasher in the Manager.
// It is safe to call while other goroutines are using the Manager.
//
// Custom drivers only need to implement the [Hasher] interface:
//
//	m.RegisterDriver("my-scheme", &MyHasher{})
func (m *Manager) RegisterDriver(name DriverName, h Hasher) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the [Hasher] registered under name, or [ErrDriverNotFound]
// if no such driver has been registered.
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// SetDefaultDriver changes the driver used by [Manager.Make],
// [Manager.Check], and [Manager.NeedsRehash]. The named driver must
// already be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the currently configured default driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Make hashes password using the default driver.
func (m *Manager) Make(password string) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Make(password)
}

// Check verifies password against record using the default driver.
//
// To verify records that may have been produced by a non-default driver,
// use [Manager.CheckWithDetect].
func (m *Manager) Check(password, record string) (bool, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return false, err
	}
	return h.Check(password, record)
}

// CheckWithDetect verifies password against record by detecting which
// driver produced the record. This is the verification entry point to use
// while records from multiple schemes coexist in the same store.
//
// An unrecognised record format verifies as (false, nil), matching the
// package-wide verification contract. Returns [ErrDriverNotFound] when the
// record's scheme is recognised but its driver is not registered.
func (m *Manager) CheckWithDetect(password, record string) (bool, error) {
	name, ok := DetectDriver(record)
	if !ok {
		return false, nil
	}
	h, err := m.Driver(name)
	if err != nil {
		return false, err
	}
	return h.Check(password, record)
}

// NeedsRehash reports whether record should be superseded by a fresh one.
//
// It returns true when:
//  1. The record was produced by a different driver than the current
//     default (e.g. a legacy bcrypt hash while pbkdf2 is the default), or
//  2. The record was produced by the current default driver but with
//     different parameters (e.g. an outdated iteration count).
//
// On the next successful login, callers should call [Manager.Make] and
// persist the new record when this returns true.
func (m *Manager) NeedsRehash(record string) (bool, error) {
	detected, ok := DetectDriver(record)
	if !ok {
		return false, ErrInvalidRecord
	}

	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()

	// Different driver → always supersede to match the current default.
	if detected != def {
		return true, nil
	}

	// Same driver — delegate to the hasher to compare parameters.
	h, err := m.Driver(detected)
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(record)
}

// Info extracts metadata from record using the default driver.
func (m *Manager) Info(record string) (HashInfo, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(record)
}

// InfoWithDetect extracts metadata from record by detecting which driver
// produced it.
func (m *Manager) InfoWithDetect(record string) (HashInfo, error) {
	name, ok := DetectDriver(record)
	if !ok {
		return HashInfo{}, ErrInvalidRecord
	}
	h, err := m.Driver(name)
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(record)
}

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return h, nil
}
