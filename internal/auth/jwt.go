package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret []byte
	jwtTTL    = 60 * time.Minute

	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is the JWT payload: user identity plus, for company-side accounts,
// the company the token is scoped to.
type Claims struct {
	UserID    uint   `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID *uint  `json:"company_id,omitempty"`
	jwt.RegisteredClaims
}

// InitJWT configures the signing secret and token lifetime (minutes).
// Must be called once at startup before any token is issued or parsed.
func InitJWT(secret string, ttlMinutes int) error {
	if secret == "" {
		return errors.New("jwt secret is not configured")
	}
	jwtSecret = []byte(secret)
	if ttlMinutes > 0 {
		jwtTTL = time.Duration(ttlMinutes) * time.Minute
	}
	return nil
}

// GenerateToken issues a signed HS256 token for the user.
func GenerateToken(userID uint, email, role string, companyID *uint) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		CompanyID: companyID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
