// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"snackbasket/config"
	deliverycontext "snackbasket/internal/delivery/context"
	"snackbasket/internal/domain/service"
	"snackbasket/internal/errors"

	"github.com/go-resty/resty/v2"
)

var validIssuers = []string{"https://accounts.google.com", "accounts.google.com"}

// tokenInfo is the tokeninfo response. Google encodes numbers and booleans as strings.
type tokenInfo struct {
	Iss           string `json:"iss"`
	Sub           string `json:"sub"`
	Aud           string `json:"aud"`
	Exp           string `json:"exp"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
}

type tokenInfoError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// IdentityProvider checks the token signature through Google's tokeninfo
// endpoint, then the issuer, audience, expiry and email verification.
type IdentityProvider struct {
	clientID     string
	tokenInfoURL string
	client       *resty.Client
	now          func() time.Time
	logger       *slog.Logger
}

// NewIdentityProvider creates the Google identity provider.
func NewIdentityProvider(cfg *config.Config, logger *slog.Logger) service.IdentityProvider {
	return newIdentityProvider(cfg.GoogleOAuth, logger)
}

func newIdentityProvider(cfg *config.GoogleOAuthConfig, logger *slog.Logger) *IdentityProvider {
	return &IdentityProvider{
		clientID:     cfg.ClientID,
		tokenInfoURL: cfg.TokenInfoURL,
		client:       resty.New().SetTimeout(cfg.Timeout),
		now:          time.Now,
		logger:       logger,
	}
}

func (p *IdentityProvider) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	if p.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}
	if idToken == "" {
		return nil, errors.New("id token is empty")
	}

	var info tokenInfo
	var failure tokenInfoError
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("id_token", idToken).
		SetResult(&info).
		SetError(&failure).
		Get(p.tokenInfoURL)
	if err != nil {
		return nil, errors.Wrap(err, "tokeninfo request failed")
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, errors.Errorf("token rejected by google (status %d): %s %s",
			resp.StatusCode(), failure.Error, failure.ErrorDescription)
	}

	if err := p.verifyClaims(&info); err != nil {
		return nil, errors.Wrap(err, "token verification failed")
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Google ID token verified",
		slog.String("subject", info.Sub), slog.String("email", info.Email))

	return &service.Identity{
		Subject:       info.Sub,
		Email:         info.Email,
		Name:          info.Name,
		EmailVerified: true,
	}, nil
}

func (p *IdentityProvider) verifyClaims(info *tokenInfo) error {
	if !slices.Contains(validIssuers, info.Iss) {
		return errors.Errorf("invalid issuer: %s", info.Iss)
	}

	if info.Aud != p.clientID {
		return errors.Errorf("invalid audience: expected %s, got %s", p.clientID, info.Aud)
	}

	exp, err := strconv.ParseInt(info.Exp, 10, 64)
	if err != nil {
		return errors.Wrap(err, "invalid exp claim")
	}
	if now := p.now().Unix(); exp < now {
		return errors.Errorf("token expired: expired at %d, current time %d", exp, now)
	}

	if verified, _ := strconv.ParseBool(info.EmailVerified); !verified {
		return errors.New("email not verified")
	}

	return nil
}
