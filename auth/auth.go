package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/openblogger/blog-backend/database"
	"github.com/openblogger/blog-backend/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is the single failure returned for every way token
// or password verification can go wrong. Callers must not distinguish the
// sub-reasons, so user enumeration through error content is impossible.
var ErrInvalidCredentials = errors.New("could not validate credentials")

// DefaultTokenTTL is the only built-in access-token lifetime.
const DefaultTokenTTL = 15 * time.Minute

// dummyHash is a bcrypt hash of a random string. Authenticate compares
// against it when the username is unknown so both failure paths pay the
// same bcrypt cost.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service issues and verifies bearer tokens and checks passwords.
type Service struct {
	secret   []byte
	tokenTTL time.Duration
	userRepo *database.UserRepo
}

func NewService(secret string, tokenTTL time.Duration, userRepo *database.UserRepo) *Service {
	if tokenTTL == 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Service{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		userRepo: userRepo,
	}
}

// HashPassword returns a salted bcrypt hash of the password. Each call
// produces a distinct hash.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the password matches the stored hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs an HS256 JWT binding the username as subject with an
// absolute expiry tokenTTL from now.
func (s *Service) IssueToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().UTC().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ResolveUser verifies the token's signature and expiry, extracts the
// subject and looks up the user. Every failure mode returns
// ErrInvalidCredentials.
func (s *Service) ResolveUser(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredentials
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	username, err := token.Claims.GetSubject()
	if err != nil || username == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Authenticate checks a username/password pair. It fails closed: an
// unknown username and a wrong password both return (nil, nil), and the
// unknown-username path still runs a bcrypt compare.
func (s *Service) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		VerifyPassword(password, dummyHash)
		return nil, nil
	}
	if !VerifyPassword(password, user.Password) {
		return nil, nil
	}
	return user, nil
}
