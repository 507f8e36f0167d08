// Package cli provides the interactive GophSession command-line client.
//
// It wires configuration, local storage, the API client, the session store
// and the auth services. On start the persisted session is restored, then a
// REPL accepts commands:
//
//   - register / login   (the token is persisted explicitly on success)
//   - logout             (drops the token and resets the session)
//   - status / verify    (inspect or re-check the current session)
//   - purge              (sign out and wipe local storage)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
