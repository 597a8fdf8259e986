package admin

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/elearnhq/lessons-ms-go/internal/port"
)

type authenticatorSrv struct {
	repo      port.AdminRepository
	jwtSecret []byte
}

// compile-time check: *authenticatorSrv must satisfy port.AdminAuthenticator
var _ port.AdminAuthenticator = (*authenticatorSrv)(nil)

func NewAdminAuthenticator(repo port.AdminRepository, jwtSecret []byte) port.AdminAuthenticator {
	return &authenticatorSrv{repo: repo, jwtSecret: jwtSecret}
}

func (s *authenticatorSrv) LoginAdmin(ctx context.Context, in port.LoginAdminInput) (*port.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, ErrInvalidCredentials
	}

	record, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !record.IsActive {
		return nil, ErrAccountInactive
	}

	if err := s.repo.TouchLastLogin(ctx, record.ID); err != nil {
		log.Printf("could not update last login for admin #%s: %v", record.ID, err)
	}

	token, err := issueToken(s.jwtSecret, record)
	if err != nil {
		return nil, err
	}

	return &port.AuthOutput{Token: token, Admin: *record}, nil
}
