package cli

import (
	"context"
	"errors"
	"time"

	"github.com/collegecupid/cupid-cli/internal/client/auth"
	"github.com/collegecupid/cupid-cli/internal/common"
)

// loginWait bounds how long one login attempt waits for the provider
// redirect before giving up.
const loginWait = 5 * time.Minute

// Login runs one sign-in attempt: start the loopback callback listener on
// the configured redirect URI, point the user's browser at the backend's
// Microsoft login entry, and wait for exactly one redirect. The callback
// outcome decides what the user sees; decode failures are only ever logged.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.printer.Info("Already signed in. Use 'logout' first to switch accounts.")
		return nil
	}

	listener, err := auth.NewListener(a.config.RedirectURI, a.session, a.logger)
	if err != nil {
		a.printer.Errorf("Invalid redirect URI %q: %v", a.config.RedirectURI, err)
		return err
	}
	serveErr := listener.Start()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = listener.Shutdown(shutdownCtx)
	}()

	a.printer.Info("Open this URL in your browser to sign in with Microsoft:")
	a.printer.Info("  %s", auth.EntryURL(a.config.BackendURL))
	a.printer.Info("Waiting for the sign-in to complete...")

	waitCtx, cancel := context.WithTimeout(ctx, loginWait)
	defer cancel()

	var res auth.Result
	select {
	case err := <-serveErr:
		a.printer.Errorf("Could not listen on %s: %v", a.config.RedirectURI, err)
		return err
	case <-waitCtx.Done():
		a.printer.Warn("Timed out waiting for the sign-in redirect.")
		return waitCtx.Err()
	case res = <-listener.Results():
	}

	switch res.Outcome {
	case auth.OutcomeHome:
		a.printer.Success("Signed in as %s.", res.Payload.Email)
	case auth.OutcomeLoginAuthFailed:
		a.printer.Errorf("Sign-in failed (%s). Please try again.", res.Outcome.ErrorAnnotation())
	case auth.OutcomeLoginParseError:
		a.printer.Errorf("Sign-in failed (%s). Please try again.", res.Outcome.ErrorAnnotation())
	default:
		a.printer.Warn("Sign-in did not complete. Please try again.")
	}
	return nil
}

// Logout clears every persisted session field and drops to logged-out state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		a.printer.Errorf("Logout failed: %v", err)
		return err
	}
	a.printer.Info("Logged out.")
	return nil
}

// WhoAmI renders the locally held identity. No network calls: everything
// shown comes from the persisted session.
func (a *App) WhoAmI(ctx context.Context) error {
	s, err := a.session.Current(ctx)
	if err != nil {
		if errors.Is(err, common.ErrAuthMissing) {
			a.printer.Warn("Not signed in. Use 'login' first.")
			return err
		}
		a.printer.Errorf("Could not read session: %v", err)
		return err
	}

	rows := [][]string{
		{"Email", s.Email},
		{"Display name", s.DisplayName},
	}
	if s.RollNumber != "" {
		rows = append(rows, []string{"Roll number", s.RollNumber})
	}
	rows = append(rows, []string{"Account status", "Active"})

	a.printer.Table([]string{"Field", "Value"}, rows)
	return nil
}
