package utils // package utils provides helper functions for hashing and token creation

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken represents a signed HS256 session token along with its
// expiry.  The token is handed to the client on a successful login and is
// optional everywhere else: presenting it only enriches request identity.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the account's hex identifier and a TTL in minutes.  The
// claims carry subject (sub), expiration (exp) and issued at (iat).
func NewAccessToken(secret, userID string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
