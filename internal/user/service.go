package user

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register hashes the password, assigns a generated employee id and stores
// the account. Role assignment is a separate administrative step.
func (s *Service) Register(ctx context.Context, u User, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.EmployeeID = "EMP-" + uuid.NewString()
	u.PasswordHash = string(hashed)

	return s.repo.Create(ctx, u)
}
