// Package hashing provides extensible password hashing built around
// self-describing credential records.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface. Two drivers ship with
// this package:
//
//   - [PBKDF2Hasher] — PBKDF2-HMAC-SHA256 (the default; produces the
//     four-field record format documented below)
//   - [BcryptHasher] — bcrypt (legacy; retained so stored bcrypt hashes can
//     be verified and migrated to PBKDF2 records)
//
// Both implement [Hasher], so callers can depend on the interface rather
// than a concrete type — the strategy pattern.
//
// The [Manager] is a named driver registry and dispatcher. Register one or
// more [Hasher] implementations, designate a default driver, then delegate
// all hashing operations through the Manager.
//
// # Quick start
//
//	m, err := hashing.NewDefaultManager() // PBKDF2 default, both drivers registered
//	if err != nil { log.Fatal(err) }
//
//	record, _ := m.Make("my-secret-password")
//	ok, _    := m.Check("my-secret-password", record) // true
//
// # Record format
//
// PBKDF2 records are stored as four dollar-delimited fields:
//
//	pbkdf2$120000$<base64-salt>$<base64-key>
//
// scheme tag, iteration count (decimal), then salt and derived key in
// standard padded base64. Every parameter needed for verification is
// contained in the record itself, so no external configuration is required
// to verify a previously produced record, even after the hasher's defaults
// change.
//
// # Verification contract
//
// Check never reports an error for a malformed stored record: wrong field
// count, unknown scheme tag, non-numeric iteration count, and undecodable
// base64 all verify as false, exactly like a wrong password. A caller (and
// an attacker) cannot distinguish the two cases. The derived-key comparison
// itself runs in constant time via [crypto/subtle].
//
// # Record lifecycle
//
// A record is written once and never edited. On password change — or when
// [Hasher.NeedsRehash] reports that a record was produced with outdated
// parameters — produce a brand-new record with [Hasher.Make] (fresh salt)
// and persist it in place of the old one:
//
//	ok, _ := m.CheckWithDetect(password, stored)
//	if ok {
//	    if needs, _ := m.NeedsRehash(stored); needs {
//	        fresh, _ := m.Make(password)
//	        persist(userID, fresh)
//	    }
//	}
package hashing
