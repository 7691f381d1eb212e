package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ycelik/clinicore/internal/app/models"
)

// JWT errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid token format")
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey   string
	TokenExp    time.Duration
	TokenIssuer string
	Audience    string
}

// JWTService mints and validates bearer tokens. Tokens are stateless: there
// is no revocation list and nothing is persisted server-side.
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// Claims defines JWT token content
type Claims struct {
	UserName  string `json:"userName"`
	Role      string `json:"role"`
	PatientID *int64 `json:"patientId,omitempty"`
	jwt.RegisteredClaims
}

// SubjectID parses the subject claim as a user id.
func (c *Claims) SubjectID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// GenerateTokenPair creates a signed access token for the user plus an
// opaque refresh token (32 crypto-random bytes, base64). The refresh token
// is returned alongside but not cryptographically bound to the access token.
func (s *JWTService) GenerateTokenPair(user *models.User) (accessToken, refreshToken string, expiresAt time.Time, err error) {
	now := time.Now()
	expiresAt = now.Add(s.config.TokenExp)

	claims := &Claims{
		UserName:  user.UserName,
		Role:      string(user.Role),
		PatientID: user.PatientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Audience:  jwt.ClaimStrings{s.config.Audience},
			Subject:   fmt.Sprintf("%d", user.ID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err = token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, err = generateRefreshToken()
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return accessToken, refreshToken, expiresAt, nil
}

// generateRefreshToken returns 32 cryptographically random bytes, base64.
func generateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// ParseAndValidate verifies signature, issuer, audience, and expiry, and
// returns the claims.
func (s *JWTService) ParseAndValidate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.config.TokenIssuer),
		jwt.WithAudience(s.config.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Validate reports whether the token passes every check. It never returns an
// error: any failure is simply false.
func (s *JWTService) Validate(tokenString string) bool {
	_, err := s.ParseAndValidate(tokenString)
	return err == nil
}

// ParseIgnoringExpiry verifies signature, issuer, and audience but skips the
// lifetime check, so an expired-but-otherwise-valid token can be refreshed.
func (s *JWTService) ParseIgnoringExpiry(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// Issuer and audience still have to match; only expiry is waived.
	if claims.Issuer != s.config.TokenIssuer {
		return nil, ErrInvalidToken
	}
	audienceOK := false
	for _, aud := range claims.Audience {
		if aud == s.config.Audience {
			audienceOK = true
			break
		}
	}
	if !audienceOK {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *JWTService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(s.config.SecretKey), nil
}

// ExtractBearerToken extracts the token from an `Authorization: Bearer`
// header. Any other scheme is rejected.
func ExtractBearerToken(authHeader string) (string, error) {
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return "", ErrInvalidFormat
	}
	return token, nil
}
