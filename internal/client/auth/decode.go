// Package auth implements the login entry point and the identity-provider
// callback: receiving the redirect, decoding its payload and committing the
// resulting session.
package auth

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/collegecupid/cupid-cli/internal/client/session"
	"github.com/collegecupid/cupid-cli/internal/common"
)

// Payload is the decoded identity record carried in the callback's
// outlookInfo query parameter.
type Payload struct {
	AccessToken         string `json:"accessToken"`
	RefreshToken        string `json:"refreshToken"`
	Email               string `json:"email"`
	DisplayName         string `json:"displayName"`
	RollNumber          string `json:"rollNumber"`
	OutlookAccessToken  string `json:"outlookAccessToken"`
	OutlookRefreshToken string `json:"outlookRefreshToken"`
}

// Session converts the payload into the session value committed to storage.
func (p Payload) Session() session.Session {
	return session.Session{
		AccessToken:         p.AccessToken,
		RefreshToken:        p.RefreshToken,
		Email:               p.Email,
		DisplayName:         p.DisplayName,
		RollNumber:          p.RollNumber,
		OutlookAccessToken:  p.OutlookAccessToken,
		OutlookRefreshToken: p.OutlookRefreshToken,
	}
}

// Normalize undoes the backend's inconsistent double encoding of the payload.
// The string may arrive HTML-entity-escaped and/or wrapped in a literal quote
// pair; both conditions are detected and reversed before JSON parsing.
//
// The entity pass fires only when the string starts with an escaped quote,
// and replaces exactly the five standard entities, in this order. The order
// and the sequential replacement match the original web client byte for byte;
// do not "simplify" this into a generic entity decoder.
func Normalize(raw string) string {
	s := raw

	if strings.HasPrefix(s, "&quot;") {
		s = strings.ReplaceAll(s, "&quot;", `"`)
		s = strings.ReplaceAll(s, "&#39;", "'")
		s = strings.ReplaceAll(s, "&amp;", "&")
		s = strings.ReplaceAll(s, "&lt;", "<")
		s = strings.ReplaceAll(s, "&gt;", ">")
	}

	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
		s = strings.ReplaceAll(s, `\"`, `"`)
	}

	return s
}

// DecodePayload normalizes raw and parses it into a Payload. Malformed input
// at any normalization stage yields common.ErrAuthDecode with the underlying
// parse error attached.
func DecodePayload(raw string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(Normalize(raw)), &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %w", common.ErrAuthDecode, err)
	}
	return p, nil
}
