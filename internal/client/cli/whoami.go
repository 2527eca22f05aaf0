package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/moneytrack/moneytrack/internal/common"
)

// Whoami fetches and prints the authenticated profile. An expired local
// session is reported without a round-trip.
func (a *App) Whoami(ctx context.Context) error {
	if _, err := a.authService.CurrentSession(ctx); err != nil {
		if errors.Is(err, common.ErrNotSignedIn) || errors.Is(err, common.ErrSessionExpired) {
			a.showError(err.Error())
			return nil
		}
		return err
	}

	profile, err := a.trackerService.Profile(ctx)
	if err != nil {
		a.showError(err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s>\n", profile.Name, profile.Email)
	return nil
}
