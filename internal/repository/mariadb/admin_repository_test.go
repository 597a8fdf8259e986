package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	googleuuid "github.com/google/uuid"

	"github.com/elearnhq/lessons-ms-go/internal/model"
)

func TestAdminRepository_Create_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewAdminRepository(sqlDB)

	a := &model.Admin{
		ID:           mustUUID("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"),
		Name:         "Jo Admin",
		Email:        "jo@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		IsActive:     true,
	}

	mock.ExpectExec(regexp.QuoteMeta(`
      INSERT INTO admins
        (id, name, email, password_hash, phone, is_active)
      VALUES (?, ?, ?, ?, ?, ?)
    `)).
		WithArgs(a.ID, a.Name, a.Email, a.PasswordHash, a.Phone, a.IsActive).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), a); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestAdminRepository_GetByEmail(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewAdminRepository(sqlDB)

	id := mustUUID("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	idBytes, _ := googleuuid.UUID(id).MarshalBinary()
	lastLogin := time.Now().Add(-time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "password_hash", "phone", "is_active", "last_login_at", "created_at",
	}).AddRow(idBytes, "Jo Admin", "jo@example.com", "hash", "", true, lastLogin, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM admins").
		WithArgs("jo@example.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "jo@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() returned unexpected error: %v", err)
	}
	if got.Email != "jo@example.com" || !got.IsActive {
		t.Errorf("unexpected admin: %+v", got)
	}
	if got.LastLoginAt == nil {
		t.Error("LastLoginAt = nil; want set")
	}
}

func TestAdminRepository_GetByEmail_NotFound(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewAdminRepository(sqlDB)

	mock.ExpectQuery("SELECT (.+) FROM admins").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("error = %v; want sql.ErrNoRows", err)
	}
}

func TestAdminRepository_TouchLastLogin(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewAdminRepository(sqlDB)

	id := mustUUID("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	mock.ExpectExec("UPDATE admins SET last_login_at").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.TouchLastLogin(context.Background(), id); err != nil {
		t.Errorf("TouchLastLogin() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
