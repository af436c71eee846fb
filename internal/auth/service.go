package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/salesdist/sales-dist-backend/internal/config"
)

type Service struct {
	repo      Repository
	secret    []byte
	expiresIn time.Duration
}

func NewService(repo Repository, cfg config.JWTConfig) *Service {
	return &Service{
		repo:      repo,
		secret:    []byte(cfg.Secret),
		expiresIn: cfg.ExpiresIn,
	}
}

// Login verifies the credentials and returns a signed bearer token. Unknown
// email and wrong password fail identically.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	records, err := s.repo.GetUserWithRolesByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", ErrInvalidCredentials
	}

	user := records[0]

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	// one join row per role; collapse to a distinct set, first-seen order
	roles := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.RoleName]; ok {
			continue
		}
		seen[rec.RoleName] = struct{}{}
		roles = append(roles, rec.RoleName)
	}

	claims := jwt.MapClaims{
		"userId":     user.UserID,
		"employeeId": user.EmployeeID,
		"email":      user.Email,
		"roles":      roles,
		"exp":        time.Now().Add(s.expiresIn).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
