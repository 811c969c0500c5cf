package firebase

import "errors"

var (
	// ErrInvalidToken indicates the ID token failed signature or claim checks
	ErrInvalidToken = errors.New("invalid identity token")

	// ErrMissingEmail indicates a valid token that carries no email address
	ErrMissingEmail = errors.New("identity token has no email")

	// ErrCertsUnavailable indicates Google's public certificates could not be fetched
	ErrCertsUnavailable = errors.New("identity certificates unavailable")
)
