package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification failure kinds. All of them map to 401 at the HTTP
// boundary; the distinction exists for logging and tests.
var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token expired")
	ErrSignatureMismatch = errors.New("token signature mismatch")
)

// JWTClaims is the signed payload: subject (user id), role, iat and exp.
type JWTClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTUtil issues and verifies HS256 tokens. The secret and lifetime are
// injected at construction; they are validated at startup, never here.
type JWTUtil struct {
	secretKey       string
	expirationHours int64
}

// NewJWTUtil creates a new JWTUtil.
func NewJWTUtil(secretKey string, expirationHours int64) *JWTUtil {
	return &JWTUtil{secretKey: secretKey, expirationHours: expirationHours}
}

// GenerateToken issues a token for the given user id and role.
func (ju *JWTUtil) GenerateToken(userID uuid.UUID, role string) (string, error) {
	now := time.Now()
	return ju.issueToken(userID, role, now, now.Add(time.Hour*time.Duration(ju.expirationHours)))
}

func (ju *JWTUtil) issueToken(userID uuid.UUID, role string, iat, exp time.Time) (string, error) {
	claims := &JWTClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a token string. Expiry is compared
// against the wall clock with no leeway.
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %v", ErrExpiredToken, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %v", ErrSignatureMismatch, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RefreshToken verifies the presented token and issues a fresh one with
// the same subject and role but a new iat/exp. The new expiry is always
// strictly later than the old one: claims carry whole seconds on the
// wire, so a refresh landing in the issuance second is bumped past the
// old expiry. The old token stays valid until its original expiry: there
// is no revocation store.
func (ju *JWTUtil) RefreshToken(tokenString string) (string, error) {
	claims, err := ju.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("%w: bad subject: %v", ErrInvalidToken, err)
	}

	now := time.Now()
	exp := now.Add(time.Hour * time.Duration(ju.expirationHours))
	if claims.ExpiresAt != nil && !exp.Truncate(time.Second).After(claims.ExpiresAt.Time) {
		exp = claims.ExpiresAt.Time.Add(time.Second)
	}
	return ju.issueToken(userID, claims.Role, now, exp)
}
