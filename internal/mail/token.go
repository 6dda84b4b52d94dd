package mail

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
)

// tokenExpiryBuffer is how long before the stated expiry a token is treated
// as expired, so a request never starts with a token about to lapse.
const tokenExpiryBuffer = 5 * time.Minute

// staticTokenSource serves a single injected access token and refuses to
// hand it out once expired. There is no refresh path: obtaining a new token
// is the operator's job, not the server's.
type staticTokenSource struct {
	token *oauth2.Token
}

// NewStaticTokenSource wraps an access token and its expiry as an
// oauth2.TokenSource. A zero expiry means the token does not expire.
func NewStaticTokenSource(accessToken string, expiry time.Time) oauth2.TokenSource {
	return &staticTokenSource{
		token: &oauth2.Token{
			AccessToken: accessToken,
			Expiry:      expiry,
		},
	}
}

func (s *staticTokenSource) Token() (*oauth2.Token, error) {
	if s.token.AccessToken == "" {
		return nil, errors.New("gmail access token not configured")
	}
	if !s.token.Expiry.IsZero() && time.Now().After(s.token.Expiry.Add(-tokenExpiryBuffer)) {
		return nil, fmt.Errorf("gmail access token expired at %v", s.token.Expiry)
	}
	return s.token, nil
}
