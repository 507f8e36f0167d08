// Package bootstrap reconciles the persisted session token with the
// in-memory session state once, at client start.
package bootstrap

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophsession/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/gophsession/internal/client/services"
	"github.com/dmitrijs2005/gophsession/internal/client/userdata"
	"github.com/dmitrijs2005/gophsession/internal/common"
	"github.com/dmitrijs2005/gophsession/internal/logging"
)

// Outcome describes what a Run did.
type Outcome string

const (
	OutcomeNoStorage Outcome = "no-storage"
	OutcomeNoToken   Outcome = "no-token"
	OutcomeHydrated  Outcome = "hydrated"
	OutcomeDiscarded Outcome = "discarded"
	// OutcomeKept means the profile could not be fetched because the server
	// was unreachable and the token was kept (see Options).
	OutcomeKept Outcome = "kept"
)

// SessionSetter is the part of the session store hydration needs.
type SessionSetter interface {
	Set(userdata.UserProfile)
	Reset()
}

// Options tune Run.
type Options struct {
	// KeepTokenOnTransportError keeps the persisted token when the profile
	// request got no response at all (status 0). By default any non-200
	// status discards the token.
	KeepTokenOnTransportError bool
}

// Bootstrapper reconciles the persisted token with the session store.
type Bootstrapper struct {
	storage  localstorage.Storage
	profiles services.ProfileService
	session  SessionSetter
	log      logging.Logger
	opts     Options

	once    sync.Once
	outcome Outcome
}

// New creates a Bootstrapper over storage, the profile service and the
// session store.
func New(storage localstorage.Storage, profiles services.ProfileService, session SessionSetter, log logging.Logger, opts Options) *Bootstrapper {
	return &Bootstrapper{
		storage:  storage,
		profiles: profiles,
		session:  session,
		log:      log.With("component", "bootstrap"),
		opts:     opts,
	}
}

// Run performs the startup Restore. Only the first call does any work;
// later calls return the first outcome.
func (b *Bootstrapper) Run(ctx context.Context) Outcome {
	b.once.Do(func() { b.outcome = b.Restore(ctx) })
	return b.outcome
}

// Restore reads the persisted token, fetches the matching profile and either
// hydrates the session store or drops the token and resets the store. It
// never returns an error: every failure leaves the client unauthenticated.
// Callers use it directly after persisting a fresh token.
func (b *Bootstrapper) Restore(ctx context.Context) Outcome {
	if b.storage == nil || !b.storage.Persistent() {
		b.log.Debug(ctx, "no persistent storage, skipping session restore")
		return OutcomeNoStorage
	}

	token, ok, err := b.storage.GetItem(ctx, common.AccessTokenKey)
	if err != nil {
		b.log.Warn(ctx, "reading persisted token failed", "err", err)
		return OutcomeNoToken
	}
	if !ok || token == "" {
		return OutcomeNoToken
	}

	env := b.profiles.GetUserProfile(ctx, token)

	if env.Status == 200 {
		profile, err := services.DecodeProfile(env)
		if err == nil {
			b.session.Set(profile.WithToken(token))
			b.log.Info(ctx, "session restored", "name", profile.Name)
			return OutcomeHydrated
		}
		b.log.Warn(ctx, "profile response unreadable", "err", err)
	}

	if env.Status == 0 && b.opts.KeepTokenOnTransportError {
		b.log.Warn(ctx, "profile fetch failed, keeping token", "err", env.ErrorMessage())
		return OutcomeKept
	}

	if err := b.storage.RemoveItems(ctx, common.AccessTokenKey, common.SessionSavedAtKey); err != nil {
		b.log.Error(ctx, "removing invalid token failed", "err", err)
	}
	b.session.Reset()
	b.log.Info(ctx, "persisted token rejected", "status", env.Status, "token", logging.MaskToken(token))
	return OutcomeDiscarded
}
