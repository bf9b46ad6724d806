// Package session owns the locally persisted authentication state: the token
// pair and identity claims handed over by the auth callback. It is pure local
// state management plus a gate predicate; no network calls originate here.
package session

import (
	"context"

	"github.com/collegecupid/cupid-cli/internal/client/store"
	"github.com/collegecupid/cupid-cli/internal/common"
)

// Persisted field names. These match the browser client's local-storage keys
// one for one, so a session written by either client reads back identically.
const (
	KeyAccessToken         = "accessToken"
	KeyRefreshToken        = "refreshToken"
	KeyUserEmail           = "userEmail"
	KeyDisplayName         = "displayName"
	KeyRollNumber          = "rollNumber"
	KeyOutlookAccessToken  = "outlookAccessToken"
	KeyOutlookRefreshToken = "outlookRefreshToken"
)

// Session is the locally held proof of authentication plus identity claims.
type Session struct {
	AccessToken         string
	RefreshToken        string
	Email               string
	DisplayName         string
	RollNumber          string
	OutlookAccessToken  string
	OutlookRefreshToken string
}

// Manager mediates every read and write of the persisted session.
//
// Contract:
//   - Commit: writes all fields; fails with common.ErrAuthDecode when the
//     minimal identity (access token + email) is absent. No partial session
//     is ever persisted.
//   - Current: returns the session, or common.ErrAuthMissing when the access
//     token or email is missing. This is the sole authorization gate for
//     protected operations.
//   - Clear: removes every field; used by logout and by any 401 response.
type Manager struct {
	repo store.SessionRepository
}

func NewManager(repo store.SessionRepository) *Manager {
	return &Manager{repo: repo}
}

func (m *Manager) Commit(ctx context.Context, s Session) error {
	if s.AccessToken == "" || s.Email == "" {
		return common.ErrAuthDecode
	}

	fields := map[string]string{
		KeyAccessToken:         s.AccessToken,
		KeyRefreshToken:        s.RefreshToken,
		KeyUserEmail:           s.Email,
		KeyDisplayName:         s.DisplayName,
		KeyRollNumber:          s.RollNumber,
		KeyOutlookAccessToken:  s.OutlookAccessToken,
		KeyOutlookRefreshToken: s.OutlookRefreshToken,
	}
	return m.repo.SetAll(ctx, fields)
}

func (m *Manager) Current(ctx context.Context) (Session, error) {
	fields, err := m.repo.List(ctx)
	if err != nil {
		return Session{}, err
	}

	s := Session{
		AccessToken:         fields[KeyAccessToken],
		RefreshToken:        fields[KeyRefreshToken],
		Email:               fields[KeyUserEmail],
		DisplayName:         fields[KeyDisplayName],
		RollNumber:          fields[KeyRollNumber],
		OutlookAccessToken:  fields[KeyOutlookAccessToken],
		OutlookRefreshToken: fields[KeyOutlookRefreshToken],
	}

	if s.AccessToken == "" || s.Email == "" {
		return Session{}, common.ErrAuthMissing
	}
	return s, nil
}

func (m *Manager) Clear(ctx context.Context) error {
	return m.repo.Clear(ctx)
}
