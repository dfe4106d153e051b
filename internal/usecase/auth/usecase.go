package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"koperasi-backend/internal/domain/errs"
	"koperasi-backend/internal/domain/member"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims carries the identity the visibility filter keys on: the member name
// and role. Subject doubles as the name for debugging convenience.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Usecase struct {
	secret []byte
	ttl    time.Duration
}

func NewUsecase(secret string, ttl time.Duration) *Usecase {
	return &Usecase{secret: []byte(secret), ttl: ttl}
}

type LoginInput struct {
	Username string
	Password string
	Role     member.Role
}

type LoginOutput struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Login is a stub by design: any non-empty username/password is accepted and
// a fixed profile is assigned per role. Real credential verification is an
// external collaborator.
func (u *Usecase) Login(in LoginInput) (*LoginOutput, error) {
	var bad []string
	if strings.TrimSpace(in.Username) == "" {
		bad = append(bad, "username")
	}
	if strings.TrimSpace(in.Password) == "" {
		bad = append(bad, "password")
	}
	if !member.ValidRole(in.Role) {
		bad = append(bad, "role")
	}
	if len(bad) > 0 {
		return nil, errs.NewValidation(bad...)
	}

	name := "Rina Wijaya"
	if in.Role == member.RoleAdministrator {
		name = "Budi Santoso"
	}

	now := time.Now()
	claims := Claims{
		Name: name,
		Role: string(in.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "koperasi-backend",
			Subject:   name,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{Token: token, Name: name, Role: string(in.Role)}, nil
}

// Validate parses a token minted by Login and returns its claims.
func (u *Usecase) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return u.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
