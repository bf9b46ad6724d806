package auth

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/collegecupid/cupid-cli/internal/client/session"
	"github.com/collegecupid/cupid-cli/internal/logging"
)

// statusSuccess is the provider's value for a completed authentication.
const statusSuccess = "SUCCESS"

// Outcome is where the callback sends the user next.
type Outcome int

const (
	// OutcomeHome: payload decoded, status SUCCESS, session committed.
	OutcomeHome Outcome = iota
	// OutcomeLogin: required query parameters absent; back to login, no
	// error annotation.
	OutcomeLogin
	// OutcomeLoginAuthFailed: payload decoded but status was not SUCCESS.
	OutcomeLoginAuthFailed
	// OutcomeLoginParseError: payload malformed at some normalization stage,
	// or the decoded record lacked the minimal identity fields.
	OutcomeLoginParseError
)

// ErrorAnnotation returns the login-page error query value for the outcome,
// empty when none applies.
func (o Outcome) ErrorAnnotation() string {
	switch o {
	case OutcomeLoginAuthFailed:
		return "auth_failed"
	case OutcomeLoginParseError:
		return "json_parse_error"
	default:
		return ""
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeHome:
		return "home"
	case OutcomeLogin:
		return "login"
	case OutcomeLoginAuthFailed:
		return "login (auth failed)"
	case OutcomeLoginParseError:
		return "login (parse error)"
	default:
		return "unknown"
	}
}

// Result is the terminal state of one callback invocation.
type Result struct {
	Outcome Outcome
	Payload *Payload
}

// Committer persists a decoded session. *session.Manager satisfies this.
type Committer interface {
	Commit(ctx context.Context, s session.Session) error
}

// Resolve runs the callback state machine for one redirect:
// AwaitingParams -> DecodeAttempt -> {Success, Failure}.
//
// Missing parameters short-circuit to OutcomeLogin without touching the
// committer. Decode failures and commit failures log the raw payload and the
// underlying error to the operator sink only; they are never surfaced to the
// end user. Re-invoking with the same inputs reproduces the same outcome.
func Resolve(ctx context.Context, status, rawInfo string, committer Committer, logger logging.Logger) Result {
	if status == "" || rawInfo == "" {
		return Result{Outcome: OutcomeLogin}
	}

	p, err := DecodePayload(rawInfo)
	if err != nil {
		logger.Error(ctx, "callback payload parse failed", "error", err, "outlookInfo", rawInfo)
		return Result{Outcome: OutcomeLoginParseError}
	}

	if status != statusSuccess {
		return Result{Outcome: OutcomeLoginAuthFailed}
	}

	if err := committer.Commit(ctx, p.Session()); err != nil {
		logger.Error(ctx, "session commit failed", "error", err)
		return Result{Outcome: OutcomeLoginParseError}
	}

	return Result{Outcome: OutcomeHome, Payload: &p}
}

// Listener is the one-shot loopback server standing in for the browser's
// callback page. It binds to the host:port of the configured redirect URI,
// waits for the provider redirect, resolves it and reports the result.
type Listener struct {
	e         *echo.Echo
	addr      string
	path      string
	committer Committer
	logger    logging.Logger

	once    sync.Once
	results chan Result
}

// NewListener builds a listener for redirectURI (e.g. "http://localhost:3000").
// The URI's path, or "/" when empty, becomes the callback route.
func NewListener(redirectURI string, committer Committer, logger logging.Logger) (*Listener, error) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return nil, err
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	l := &Listener{
		addr:      u.Host,
		path:      path,
		committer: committer,
		logger:    logger,
		results:   make(chan Result, 1),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET(path, l.handleCallback)
	l.e = e

	return l, nil
}

func (l *Listener) handleCallback(c echo.Context) error {
	status := c.QueryParam("status")
	rawInfo := c.QueryParam("outlookInfo")

	res := Resolve(c.Request().Context(), status, rawInfo, l.committer, l.logger)

	// First redirect wins; any repeat just gets the page again.
	l.once.Do(func() { l.results <- res })

	if res.Outcome == OutcomeHome {
		return c.HTML(http.StatusOK, "<html><body><p>Signed in. You can close this window and return to the terminal.</p></body></html>")
	}
	return c.HTML(http.StatusOK, "<html><body><p>Sign-in did not complete. Return to the terminal to try again.</p></body></html>")
}

// Start begins serving in the background. The returned channel carries the
// listen error, if the server ever fails to come up.
func (l *Listener) Start() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		if err := l.e.Start(l.addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// Results exposes the one-shot result channel for callers that need to
// select over it together with other channels.
func (l *Listener) Results() <-chan Result {
	return l.results
}

// Wait blocks until a redirect has been handled or ctx expires.
func (l *Listener) Wait(ctx context.Context) (Result, error) {
	select {
	case res := <-l.results:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Shutdown stops the server.
func (l *Listener) Shutdown(ctx context.Context) error {
	return l.e.Shutdown(ctx)
}
