package firebase

import (
	"context"
	"fmt"

	"quillpost-api/internal/auth"

	fb "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// tokenVerifier is the part of the Admin SDK auth client the verifier uses
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// Verifier validates Firebase ID tokens with the Admin SDK. The SDK checks the
// RS256 signature against Google's certificates (cached for their max-age),
// audience, issuer, subject and lifetime.
type Verifier struct {
	client tokenVerifier
}

var _ auth.IdentityVerifier = (*Verifier)(nil)

// NewVerifier creates a verifier for tokens minted for projectID. Verifying ID
// tokens needs no service account, so callers usually pass option.WithoutAuthentication.
func NewVerifier(ctx context.Context, projectID string, opts ...option.ClientOption) (*Verifier, error) {
	app, err := fb.NewApp(ctx, &fb.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth: %w", err)
	}
	return &Verifier{client: client}, nil
}

// Verify checks idToken and returns the identity it asserts
func (v *Verifier) Verify(ctx context.Context, idToken string) (*auth.Identity, error) {
	if idToken == "" {
		return nil, fmt.Errorf("%w: missing token", ErrInvalidToken)
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		if fbauth.IsCertificateFetchFailed(err) {
			return nil, fmt.Errorf("%w: %v", ErrCertsUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	email := stringClaim(token.Claims, "email")
	if email == "" {
		return nil, ErrMissingEmail
	}

	verified, _ := token.Claims["email_verified"].(bool)
	return &auth.Identity{
		Subject:       token.UID,
		Email:         email,
		EmailVerified: verified,
		Name:          stringClaim(token.Claims, "name"),
		Picture:       stringClaim(token.Claims, "picture"),
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return s
}
