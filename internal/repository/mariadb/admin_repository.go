package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

type AdminRepository struct {
	db *sql.DB
}

// compile-time check: *AdminRepository must satisfy port.AdminRepository
var _ port.AdminRepository = (*AdminRepository)(nil)

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	log.Printf("creating database record for admin %q...", admin.Email)

	const query = `
      INSERT INTO admins
        (id, name, email, password_hash, phone, is_active)
      VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		admin.ID, admin.Name, admin.Email,
		admin.PasswordHash, admin.Phone, admin.IsActive,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	const query = adminSelect + ` WHERE id = ?`
	return scanAdmin(r.db.QueryRowContext(ctx, query, id))
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	const query = adminSelect + ` WHERE email = ?`
	return scanAdmin(r.db.QueryRowContext(ctx, query, email))
}

func (r *AdminRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE admins SET last_login_at = NOW() WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

const adminSelect = `
  SELECT id, name, email, password_hash, phone, is_active, last_login_at, created_at
  FROM admins
`

func scanAdmin(row *sql.Row) (*model.Admin, error) {
	var admin model.Admin
	if err := row.Scan(
		&admin.ID, &admin.Name, &admin.Email,
		&admin.PasswordHash, &admin.Phone, &admin.IsActive,
		&admin.LastLoginAt, &admin.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}
