package cli

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dmitrijs2005/gophsession/internal/client/bootstrap"
	"github.com/dmitrijs2005/gophsession/internal/client/services"
	"github.com/dmitrijs2005/gophsession/internal/client/userdata"
	"github.com/dmitrijs2005/gophsession/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var (
	errNotLoggedIn        = errors.New("not logged in")
	errProfileUnavailable = errors.New("could not load user profile")
)

type credentials struct {
	Email    string
	Username string
	Password string
}

func (c credentials) validate(withUsername bool) error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required, is.Email),
		validation.Field(&c.Username, validation.By(func(any) error {
			if !withUsername {
				return nil
			}
			return validation.Validate(c.Username, validation.Required, validation.Length(3, 64))
		})),
		validation.Field(&c.Password, validation.Required, validation.Length(8, 0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	return nil
}

func (a *App) readCredentials(withUsername bool) (credentials, error) {
	var c credentials
	var err error

	if c.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return c, err
	}
	if withUsername {
		if c.Username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
			return c, err
		}
	}
	pw, err := getPassword(a.out)
	if err != nil {
		return c, err
	}
	c.Password = string(pw)
	wipe(pw)

	return c, c.validate(withUsername)
}

// Register prompts for email, username and password and creates an account.
// When the API answers with a token the session is persisted and restored.
func (a *App) Register(ctx context.Context) error {
	c, err := a.readCredentials(true)
	if err != nil {
		return err
	}

	env := a.authService.CreateAccount(ctx, c.Email, c.Username, c.Password)
	if err := env.Err(); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	token, ok := services.TokenFromEnvelope(env)
	if !ok {
		fmt.Fprintln(a.out, "Account created, please login")
		return nil
	}
	return a.startSession(ctx, token)
}

// Login prompts for credentials and signs in. The token from a successful
// envelope is persisted and the profile is loaded into the session store.
func (a *App) Login(ctx context.Context) error {
	c, err := a.readCredentials(false)
	if err != nil {
		return err
	}

	env := a.authService.Login(ctx, c.Email, c.Password)
	if err := env.Err(); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	token, ok := services.TokenFromEnvelope(env)
	if !ok {
		return errors.New("login failed: no token in response")
	}
	return a.startSession(ctx, token)
}

func (a *App) startSession(ctx context.Context, token string) error {
	if err := a.authService.PersistSession(ctx, token); err != nil {
		return err
	}

	switch a.restorer.Restore(ctx) {
	case bootstrap.OutcomeHydrated:
		fmt.Fprintf(a.out, "Welcome, %s\n", a.store.Get().Name)
		return nil
	case bootstrap.OutcomeNoStorage:
		// Nothing survives a restart here, keep the session in memory only.
		a.store.Set(userdata.Default().WithToken(token))
		fmt.Fprintln(a.out, "Logged in (session is not persisted)")
		return nil
	case bootstrap.OutcomeKept:
		// The server could not be reached for the profile; the login is not
		// complete, so the token must not be restored on the next start.
		a.authService.SignOut(ctx)
		return fmt.Errorf("%w: server unavailable", errProfileUnavailable)
	default:
		return errProfileUnavailable
	}
}

// Logout signs out. It never fails.
func (a *App) Logout(ctx context.Context) error {
	a.authService.SignOut(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Purge signs out and wipes everything the client keeps in local storage.
func (a *App) Purge(ctx context.Context) error {
	a.authService.SignOut(ctx)
	if err := a.storage.Clear(ctx); err != nil {
		return fmt.Errorf("purge local storage: %w", err)
	}
	fmt.Fprintln(a.out, "Local data removed")
	return nil
}

// Verify asks the API whether the current session token is still valid.
func (a *App) Verify(ctx context.Context) error {
	token, err := a.currentToken(ctx)
	if err != nil {
		return err
	}

	env := a.authService.VerifyToken(ctx, token)
	if err := env.Err(); err != nil {
		return fmt.Errorf("token rejected: %w", err)
	}
	fmt.Fprintln(a.out, "Token is valid")
	return nil
}

// currentToken prefers the session store and falls back to storage.
func (a *App) currentToken(ctx context.Context) (string, error) {
	if p := a.store.Get(); p.Token != nil && *p.Token != "" {
		return *p.Token, nil
	}
	token, ok, err := a.storage.GetItem(ctx, common.AccessTokenKey)
	if err != nil {
		return "", err
	}
	if !ok || token == "" {
		return "", errNotLoggedIn
	}
	return token, nil
}
