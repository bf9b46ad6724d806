package auth

import "strings"

// EntryURL returns the backend's login entry point. Opening it in a browser
// starts the Microsoft OAuth redirect dance; the provider eventually lands on
// the redirect URI served by Listener.
func EntryURL(backendURL string) string {
	return strings.TrimSuffix(backendURL, "/") + "/auth/microsoft"
}
