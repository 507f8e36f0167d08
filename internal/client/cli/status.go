package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophsession/internal/client/tokeninfo"
	"github.com/dmitrijs2005/gophsession/internal/common"
	"github.com/dmitrijs2005/gophsession/internal/logging"
)

// now is swapped in tests.
var now = time.Now

// Status prints the current session: profile, masked token, when it was
// saved and, for JWT tokens, their claimed expiry.
func (a *App) Status(ctx context.Context) error {
	p := a.store.Get()
	if !p.Authenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	if p.ID != nil {
		fmt.Fprintf(a.out, "User:    %s (id %d)\n", p.Name, *p.ID)
	} else {
		fmt.Fprintf(a.out, "User:    %s\n", p.Name)
	}
	fmt.Fprintf(a.out, "Token:   %s\n", logging.MaskToken(*p.Token))

	savedAt, ok, err := a.storage.GetItem(ctx, common.SessionSavedAtKey)
	if err != nil {
		a.log.Warn(ctx, "status: reading session time failed", "err", err)
	} else if ok {
		fmt.Fprintf(a.out, "Saved:   %s\n", savedAt)
	}

	if info, ok := tokeninfo.Inspect(*p.Token); ok {
		if info.Subject != "" {
			fmt.Fprintf(a.out, "Subject: %s\n", info.Subject)
		}
		if !info.IssuedAt.IsZero() {
			fmt.Fprintf(a.out, "Issued:  %s\n", info.IssuedAt.Format(time.RFC3339))
		}
		if !info.ExpiresAt.IsZero() {
			state := "valid"
			if info.Expired(now()) {
				state = "expired"
			}
			fmt.Fprintf(a.out, "Expires: %s (%s)\n", info.ExpiresAt.Format(time.RFC3339), state)
		}
	}
	fmt.Fprintf(a.out, "Prefs:   data processing=%t, data sharing=%t\n",
		p.Preferences.DataProcessing, p.Preferences.DataSharing)
	return nil
}
