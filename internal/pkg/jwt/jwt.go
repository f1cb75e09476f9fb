package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service validates the identity tokens the surrounding platform issues.
// Token issuance (login, refresh) is not part of this service; requests
// arrive with an access token carrying employee_id, department and role
// claims.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	// Encode signs a claim set with the shared secret. Used by tooling and
	// tests; the production issuer lives in the identity platform.
	Encode(claims map[string]interface{}) (string, error)
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) Encode(claims map[string]interface{}) (string, error) {
	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, err
}
