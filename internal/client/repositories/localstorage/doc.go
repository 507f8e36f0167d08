// Package localstorage is the client's persistent key/value store, the
// place where the session token survives restarts.
//
// Drivers
//
//   - sqlite: a local database file migrated with goose (default).
//   - redis:  a hash per namespace, for sessions shared between machines.
//   - memory: process-local map; not persistent.
//
// GetItem reports a missing key as ("", false, nil). Removing an absent key
// is not an error.
package localstorage
