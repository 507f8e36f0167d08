// Package common contains shared constants and sentinel errors used across
// GophSession components.
package common

// AccessTokenKey is the local storage key holding the session token.
// Its presence is the only signal that a session exists across restarts.
const AccessTokenKey = "accessToken"

// RequestIDHeaderName is the HTTP header carrying the per-request id.
const RequestIDHeaderName = "X-Request-ID"

// AuthorizationHeaderName carries the session token on profile requests.
const AuthorizationHeaderName = "Authorization"

// SessionSavedAtKey records when the session token was persisted (RFC 3339).
const SessionSavedAtKey = "sessionSavedAt"
