package google

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/shiftsync/internal/core/domain"
)

// NewTokenSource builds an oauth2.TokenSource from the stored refresh
// token. The source exchanges the refresh token for short-lived access
// tokens on demand and caches them until expiry; no interactive OAuth
// flow is involved at run time.
func NewTokenSource(ctx context.Context, settings *domain.Settings) oauth2.TokenSource {
	conf := &oauth2.Config{
		ClientID:     settings.ClientID,
		ClientSecret: settings.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: settings.TokenURI,
		},
		Scopes: []string{ScopeGmailReadonly, ScopeCalendar},
	}

	token := &oauth2.Token{RefreshToken: settings.RefreshToken}
	return oauth2.ReuseTokenSource(nil, conf.TokenSource(ctx, token))
}
