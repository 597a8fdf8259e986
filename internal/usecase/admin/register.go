package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
)

const minPasswordLength = 8

type registrarSrv struct {
	genID     port.UUIDGen
	repo      port.AdminRepository
	jwtSecret []byte
}

// compile-time check: *registrarSrv must satisfy port.AdminRegistrar
var _ port.AdminRegistrar = (*registrarSrv)(nil)

func NewAdminRegistrar(genID port.UUIDGen, repo port.AdminRepository, jwtSecret []byte) port.AdminRegistrar {
	return &registrarSrv{genID: genID, repo: repo, jwtSecret: jwtSecret}
}

func (s *registrarSrv) RegisterAdmin(ctx context.Context, in port.RegisterAdminInput) (*port.AuthOutput, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	if !strings.Contains(in.Email, "@") {
		return nil, fmt.Errorf("%w: %q is not a valid email", ErrValidation, in.Email)
	}
	if len(in.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}
	if in.Password != in.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	record := &model.Admin{
		ID:           s.genID(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	token, err := issueToken(s.jwtSecret, record)
	if err != nil {
		return nil, err
	}

	log.Printf("admin account created for %q", record.Email)
	return &port.AuthOutput{Token: token, Admin: *record}, nil
}
