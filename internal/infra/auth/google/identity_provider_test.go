package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"snackbasket/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "client-123.apps.googleusercontent.com"

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *IdentityProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := newIdentityProvider(&config.GoogleOAuthConfig{
		ClientID:     testClientID,
		TokenInfoURL: srv.URL + "/tokeninfo",
		Timeout:      time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.now = func() time.Time { return testNow }

	return p
}

func validInfo() map[string]string {
	return map[string]string{
		"iss":            "https://accounts.google.com",
		"sub":            "1234567890",
		"aud":            testClientID,
		"exp":            strconv.FormatInt(testNow.Add(time.Hour).Unix(), 10),
		"email":          "staff@example.com",
		"email_verified": "true",
		"name":           "Staff Member",
	}
}

func respondWith(info map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(info)
	}
}

func TestVerifyIDToken_Success(t *testing.T) {
	var gotToken string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("id_token")
		respondWith(validInfo())(w, r)
	})

	identity, err := p.VerifyIDToken(context.Background(), "id-token-abc")
	require.NoError(t, err)
	assert.Equal(t, "id-token-abc", gotToken)
	assert.Equal(t, "1234567890", identity.Subject)
	assert.Equal(t, "staff@example.com", identity.Email)
	assert.Equal(t, "Staff Member", identity.Name)
	assert.True(t, identity.EmailVerified)
}

func TestVerifyIDToken_ClaimFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]string)
		wantErr string
	}{
		{"issuer", func(m map[string]string) { m["iss"] = "https://evil.example.com" }, "invalid issuer"},
		{"audience", func(m map[string]string) { m["aud"] = "other-client" }, "invalid audience"},
		{"expired", func(m map[string]string) { m["exp"] = strconv.FormatInt(testNow.Add(-time.Minute).Unix(), 10) }, "token expired"},
		{"bad exp", func(m map[string]string) { m["exp"] = "soon" }, "invalid exp claim"},
		{"unverified email", func(m map[string]string) { m["email_verified"] = "false" }, "email not verified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validInfo()
			tt.mutate(info)
			p := newTestProvider(t, respondWith(info))

			_, err := p.VerifyIDToken(context.Background(), "tok")
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestVerifyIDToken_RejectedByGoogle(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_token","error_description":"Invalid Value"}`))
	})

	_, err := p.VerifyIDToken(context.Background(), "forged")
	assert.ErrorContains(t, err, "status 400")
	assert.ErrorContains(t, err, "invalid_token")
}

func TestVerifyIDToken_Unconfigured(t *testing.T) {
	p := newTestProvider(t, respondWith(validInfo()))
	p.clientID = ""

	_, err := p.VerifyIDToken(context.Background(), "tok")
	assert.ErrorContains(t, err, "not configured")
}

func TestVerifyIDToken_EmptyToken(t *testing.T) {
	p := newTestProvider(t, respondWith(validInfo()))

	_, err := p.VerifyIDToken(context.Background(), "")
	assert.Error(t, err)
}
