package utils

import (
	"errors"
	"io/ioutil"
	"log"
	"net/http"
	"os"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"
)

const googleJWKSEndpoint = "https://www.googleapis.com/oauth2/v3/certs"

// ErrInvalidGoogleToken is returned for every verification failure mode.
// Callers must not learn whether the token was malformed, expired, or signed
// for someone else.
var ErrInvalidGoogleToken = errors.New("invalid token")

type GoogleIdentity struct {
	Email      string
	GivenName  string
	FamilyName string
	Picture    string
}

type googleIDTokenClaims struct {
	jwt.RegisteredClaims
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// VerifyGoogleIDToken checks the ID token signature against Google's JWKS and
// the audience against GOOGLE_CLIENT_ID. Provider errors are logged and
// collapsed into ErrInvalidGoogleToken.
func VerifyGoogleIDToken(idToken string) (*GoogleIdentity, error) {
	res, httpErr := http.Get(googleJWKSEndpoint)
	if httpErr != nil {
		log.Println("google jwks fetch failed:", httpErr)
		return nil, ErrInvalidGoogleToken
	}
	defer res.Body.Close()

	body, bodyErr := ioutil.ReadAll(res.Body)
	if bodyErr != nil {
		log.Println("google jwks read failed:", bodyErr)
		return nil, ErrInvalidGoogleToken
	}

	jwks, jwksErr := keyfunc.NewJSON(body)
	if jwksErr != nil {
		log.Println("google jwks parse failed:", jwksErr)
		return nil, ErrInvalidGoogleToken
	}

	claims := &googleIDTokenClaims{}
	token, tokenErr := jwt.ParseWithClaims(idToken, claims, jwks.Keyfunc)
	if tokenErr != nil || !token.Valid {
		log.Println("google token verification failed:", tokenErr)
		return nil, ErrInvalidGoogleToken
	}

	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" {
		if !claims.VerifyAudience(clientID, true) {
			log.Println("google token audience mismatch")
			return nil, ErrInvalidGoogleToken
		}
	}

	if claims.Email == "" {
		return nil, ErrInvalidGoogleToken
	}

	return &GoogleIdentity{
		Email:      claims.Email,
		GivenName:  claims.GivenName,
		FamilyName: claims.FamilyName,
		Picture:    claims.Picture,
	}, nil
}
