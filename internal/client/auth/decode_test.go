package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/collegecupid/cupid-cli/internal/common"
)

func TestNormalize_Plain(t *testing.T) {
	in := `{"status":"SUCCESS"}`
	if got := Normalize(in); got != in {
		t.Fatalf("plain input changed: %q", got)
	}
}

func TestNormalize_EntityEscaped(t *testing.T) {
	in := `&quot;{\&quot;email\&quot;:\&quot;a@b.edu\&quot;}&quot;`
	want := `{"email":"a@b.edu"}`
	require.Equal(t, want, Normalize(in))
}

func TestNormalize_QuoteWrapped(t *testing.T) {
	in := `"{\"email\":\"a@b.edu\"}"`
	want := `{"email":"a@b.edu"}`
	require.Equal(t, want, Normalize(in))
}

func TestNormalize_EntityPassOnlyWhenPrefixed(t *testing.T) {
	// Entities mid-string without the &quot; prefix stay untouched.
	in := `{"name":"R&amp;D"}`
	require.Equal(t, in, Normalize(in))
}

func TestDecodePayload_DoubleEncodedEqualsPlain(t *testing.T) {
	plain := `{"accessToken":"at","refreshToken":"rt","email":"a@b.edu","displayName":"A B","rollNumber":"21001","outlookAccessToken":"oat","outlookRefreshToken":"ort"}`
	wrapped := `&quot;{\&quot;accessToken\&quot;:\&quot;at\&quot;,\&quot;refreshToken\&quot;:\&quot;rt\&quot;,\&quot;email\&quot;:\&quot;a@b.edu\&quot;,\&quot;displayName\&quot;:\&quot;A B\&quot;,\&quot;rollNumber\&quot;:\&quot;21001\&quot;,\&quot;outlookAccessToken\&quot;:\&quot;oat\&quot;,\&quot;outlookRefreshToken\&quot;:\&quot;ort\&quot;}&quot;`

	p1, err := DecodePayload(plain)
	require.NoError(t, err)
	p2, err := DecodePayload(wrapped)
	require.NoError(t, err)

	require.Equal(t, p1, p2)
	require.Equal(t, "a@b.edu", p1.Email)
	require.Equal(t, "at", p1.AccessToken)
}

func TestDecodePayload_Idempotent(t *testing.T) {
	in := `"{\"accessToken\":\"at\",\"email\":\"a@b.edu\"}"`
	p1, err := DecodePayload(in)
	require.NoError(t, err)
	p2, err := DecodePayload(in)
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}

func TestDecodePayload_Malformed(t *testing.T) {
	for _, in := range []string{"not json", `&quot;{broken&quot;`, `"{"`} {
		_, err := DecodePayload(in)
		if !errors.Is(err, common.ErrAuthDecode) {
			t.Fatalf("input %q: want ErrAuthDecode, got %v", in, err)
		}
	}
}

func TestPayload_Session(t *testing.T) {
	p := Payload{
		AccessToken:         "at",
		RefreshToken:        "rt",
		Email:               "a@b.edu",
		DisplayName:         "A B",
		RollNumber:          "21001",
		OutlookAccessToken:  "oat",
		OutlookRefreshToken: "ort",
	}
	s := p.Session()
	require.Equal(t, "at", s.AccessToken)
	require.Equal(t, "rt", s.RefreshToken)
	require.Equal(t, "a@b.edu", s.Email)
	require.Equal(t, "A B", s.DisplayName)
	require.Equal(t, "21001", s.RollNumber)
	require.Equal(t, "oat", s.OutlookAccessToken)
	require.Equal(t, "ort", s.OutlookRefreshToken)
}
