package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegecupid/cupid-cli/internal/client/models"
	"github.com/collegecupid/cupid-cli/internal/common"
)

func staticToken(token string) TokenFunc {
	return func(ctx context.Context) (string, error) { return token, nil }
}

func TestDo_SetsAuthHeaders(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Client-Request-Id")
		json.NewEncoder(w).Encode(profileResponse{Success: true, UserProfile: &models.ProfileRecord{Email: "a@b.edu"}})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, staticToken("tok123"))
	_, err := c.ProfileByEmail(context.Background(), "a@b.edu")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestDo_TokenErrorShortCircuits(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, func(ctx context.Context) (string, error) {
		return "", common.ErrAuthMissing
	})
	_, err := c.ProfileByEmail(context.Background(), "a@b.edu")
	require.ErrorIs(t, err, common.ErrAuthMissing)
	assert.False(t, called)
}

func TestDo_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, staticToken("tok"))
	_, err := c.ProfileByEmail(context.Background(), "a@b.edu")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestDo_ServerErrorMapsToNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, staticToken("tok"))
	_, err := c.ProfileByEmail(context.Background(), "a@b.edu")
	require.ErrorIs(t, err, common.ErrNetwork)
}

func TestProfileByEmail_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/user/profile/email/a@b.edu", r.URL.Path)
		json.NewEncoder(w).Encode(profileResponse{Success: false})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, staticToken("tok"))
	_, err := c.ProfileByEmail(context.Background(), "a@b.edu")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestProfilePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/user/profile/page/3", r.URL.Path)
		json.NewEncoder(w).Encode(pageResponse{
			Success:    true,
			Users:      []models.UserSummary{{Name: "Asha"}, {Name: "Ravi"}},
			TotalCount: 2,
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, staticToken("tok"))
	users, total, err := c.ProfilePage(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 2, total)
}

func TestSaveProfile_BackendMessageSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var rec models.ProfileRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
		assert.Equal(t, "a@b.edu", rec.Email)
		json.NewEncoder(w).Encode(saveResponse{Success: false, Message: "roll number mismatch"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, staticToken("tok"))
	err := c.SaveProfile(context.Background(), models.ProfileRecord{Email: "a@b.edu"})

	var berr *BackendError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "roll number mismatch", berr.Message)
}

func TestUploadImage_MultipartField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("dp")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "me.png", header.Filename)
		json.NewEncoder(w).Encode(uploadResponse{Success: true, ImageURL: "https://cdn.example.com/me.png?id=9"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, staticToken("tok"))
	url, err := c.UploadImage(context.Background(), "me.png", []byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/me.png?id=9", url)
}

func TestDeleteImage(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, staticToken("tok"))
	require.NoError(t, c.DeleteImage(context.Background(), "abc123"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v2/deleteImage/abc123", gotPath)
}
