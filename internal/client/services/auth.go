// Package services contains application services for the GophSession client.
// This file defines the authentication service: account creation, login,
// token verification, explicit session persistence and sign-out.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophsession/internal/client/client"
	"github.com/dmitrijs2005/gophsession/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/gophsession/internal/common"
	"github.com/dmitrijs2005/gophsession/internal/logging"
)

const (
	createUserPath  = "users/create-user/"
	loginPath       = "users/login/"
	verifyTokenPath = "users/verify-token/"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - CreateAccount, Login, VerifyToken: return the API envelope unmodified
//     in meaning; success or failure is for the caller to interpret.
//   - PersistSession: store a token obtained from a successful login.
//   - SignOut: drop the persisted token and reset the session store.
//
// Login and CreateAccount never persist anything themselves.
type AuthService interface {
	CreateAccount(ctx context.Context, email, username, password string) client.Envelope
	Login(ctx context.Context, email, password string) client.Envelope
	VerifyToken(ctx context.Context, token string) client.Envelope
	PersistSession(ctx context.Context, token string) error
	SignOut(ctx context.Context)
}

// SessionResetter is the part of the session store sign-out needs.
type SessionResetter interface {
	Reset()
}

type authService struct {
	api     client.Client
	storage localstorage.Storage
	session SessionResetter
	log     logging.Logger
	now     func() time.Time
}

// NewAuthService constructs an AuthService over the API client, the local
// storage holding the token, and the session store.
func NewAuthService(api client.Client, storage localstorage.Storage, session SessionResetter, log logging.Logger) AuthService {
	return &authService{
		api:     api,
		storage: storage,
		session: session,
		log:     log.With("component", "auth"),
		now:     time.Now,
	}
}

type createAccountRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyTokenRequest struct {
	Refresh string `json:"refresh"`
}

// TokenPair is the data of a verify-token envelope.
type TokenPair struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

func (a *authService) CreateAccount(ctx context.Context, email, username, password string) client.Envelope {
	env := a.api.Post(ctx, createUserPath, createAccountRequest{Email: email, Username: username, Password: password})
	a.log.Info(ctx, "create account", "status", env.Status)
	return env
}

func (a *authService) Login(ctx context.Context, email, password string) client.Envelope {
	env := a.api.Post(ctx, loginPath, loginRequest{Email: email, Password: password})
	a.log.Info(ctx, "login", "status", env.Status)
	return env
}

// VerifyToken asks the API whether token is still valid. The data of a
// successful envelope is a TokenPair; a server that omits the refresh
// token gets the input token echoed back in its place.
func (a *authService) VerifyToken(ctx context.Context, token string) client.Envelope {
	env := a.api.Post(ctx, verifyTokenPath, verifyTokenRequest{Refresh: token})
	a.log.Info(ctx, "verify token", "status", env.Status, "token", logging.MaskToken(token))
	if !env.Succeeded() {
		return env
	}

	var pair TokenPair
	if env.HasData() {
		if err := json.Unmarshal(env.Data, &pair); err != nil {
			a.log.Warn(ctx, "verify token: unexpected data shape", "err", err)
		}
	}
	if pair.Refresh == "" {
		pair.Refresh = token
	}
	data, err := json.Marshal(pair)
	if err != nil {
		return env
	}
	env.Data = data
	return env
}

// PersistSession writes token under the access token key, together with the
// time it was saved.
func (a *authService) PersistSession(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return common.ErrEmptyToken
	}
	err := a.storage.SetItems(ctx, map[string]string{
		common.AccessTokenKey:    token,
		common.SessionSavedAtKey: a.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	a.log.Info(ctx, "session persisted", "token", logging.MaskToken(token))
	return nil
}

// SignOut removes the persisted token and resets the session store. A
// storage failure is logged; the store is reset regardless.
func (a *authService) SignOut(ctx context.Context) {
	if err := a.storage.RemoveItems(ctx, common.AccessTokenKey, common.SessionSavedAtKey); err != nil {
		a.log.Error(ctx, "sign out: removing persisted token failed", "err", err)
	}
	a.session.Reset()
	a.log.Info(ctx, "signed out")
}

// TokenFromEnvelope extracts the session token from a successful login or
// registration envelope. Both {"token"} and {"access"} shapes are accepted.
func TokenFromEnvelope(env client.Envelope) (string, bool) {
	if !env.Succeeded() || !env.HasData() {
		return "", false
	}
	var data struct {
		Token  string `json:"token"`
		Access string `json:"access"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", false
	}
	if data.Token != "" {
		return data.Token, true
	}
	if data.Access != "" {
		return data.Access, true
	}
	return "", false
}
