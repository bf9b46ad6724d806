// Package api is the HTTP client for the College Cupid REST backend. Every
// call except the login entry carries a bearer token; a 401 from any endpoint
// maps to common.ErrUnauthorized so callers can treat it as session expiry.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/collegecupid/cupid-cli/internal/client/models"
	"github.com/collegecupid/cupid-cli/internal/common"
)

// TokenFunc supplies the current access token. It should return
// common.ErrAuthMissing when no session is present.
type TokenFunc func(ctx context.Context) (string, error)

// Client is the backend surface consumed by the services layer.
type Client interface {
	// ProfileByEmail fetches the stored profile for email.
	// Returns common.ErrNotFound when no profile exists yet.
	ProfileByEmail(ctx context.Context, email string) (*models.ProfileRecord, error)

	// ProfilePage fetches one feed page. Returns the user summaries and the
	// page's totalCount as reported by the backend.
	ProfilePage(ctx context.Context, page int) ([]models.UserSummary, int, error)

	// SaveProfile writes the full profile in a single call.
	SaveProfile(ctx context.Context, rec models.ProfileRecord) error

	// UploadImage stores one photo and returns its URL.
	UploadImage(ctx context.Context, filename string, content []byte) (string, error)

	// DeleteImage removes a stored photo by its server-assigned id.
	DeleteImage(ctx context.Context, photoID string) error
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      TokenFunc
}

// NewHTTPClient builds a client for baseURL. timeout bounds every request;
// zero means 10 seconds.
func NewHTTPClient(baseURL string, timeout time.Duration, token TokenFunc) *HTTPClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
	}
}

// do sends one authorized request and decodes the JSON body into out.
// Transport failures map to common.ErrNetwork, a 401 to common.ErrUnauthorized
// and any other non-2xx status to common.ErrNetwork with the status attached.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Client-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return common.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s %s: %s", common.ErrNetwork, method, path, resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", common.ErrNetwork, err)
	}
	return nil
}

func (c *HTTPClient) ProfileByEmail(ctx context.Context, email string) (*models.ProfileRecord, error) {
	var out profileResponse
	if err := c.do(ctx, http.MethodGet, "/api/v2/user/profile/email/"+email, nil, "", &out); err != nil {
		return nil, err
	}
	if !out.Success || out.UserProfile == nil {
		return nil, common.ErrNotFound
	}
	return out.UserProfile, nil
}

func (c *HTTPClient) ProfilePage(ctx context.Context, page int) ([]models.UserSummary, int, error) {
	var out pageResponse
	path := fmt.Sprintf("/api/v2/user/profile/page/%d", page)
	if err := c.do(ctx, http.MethodGet, path, nil, "", &out); err != nil {
		return nil, 0, err
	}
	if !out.Success {
		return nil, 0, fmt.Errorf("%w: feed page %d rejected", common.ErrNetwork, page)
	}
	return out.Users, out.TotalCount, nil
}

func (c *HTTPClient) SaveProfile(ctx context.Context, rec models.ProfileRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	var out saveResponse
	if err := c.do(ctx, http.MethodPost, "/api/v2/user/profile", bytes.NewReader(body), "application/json", &out); err != nil {
		return err
	}
	if !out.Success {
		if out.Message != "" {
			return &BackendError{Message: out.Message}
		}
		return fmt.Errorf("%w: profile save rejected", common.ErrNetwork)
	}
	return nil
}

func (c *HTTPClient) UploadImage(ctx context.Context, filename string, content []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("dp", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return "", fmt.Errorf("write form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	var out uploadResponse
	if err := c.do(ctx, http.MethodPost, "/api/v2/uploadImage", &buf, mw.FormDataContentType(), &out); err != nil {
		return "", err
	}
	if !out.Success || out.ImageURL == "" {
		if out.Message != "" {
			return "", &BackendError{Message: out.Message}
		}
		return "", fmt.Errorf("%w: image upload rejected", common.ErrNetwork)
	}
	return out.ImageURL, nil
}

func (c *HTTPClient) DeleteImage(ctx context.Context, photoID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v2/deleteImage/"+photoID, nil, "", nil)
}
