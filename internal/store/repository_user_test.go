package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	db := &DB{
		DB:              conn,
		driver:          "pgx",
		logger:          l,
		errorClassifier: NewPostgresErrorClassifier(),
	}
	return db, mock, conn
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, conn := newTestDB(t)
	repo := &userRepository{db: db, logger: db.logger}
	return repo, mock, conn
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userColumns() []string {
	return []string{"id", "username", "email", "hashed_password", "is_active", "created_at"}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()
	now := time.Now()
	user := models.User{
		Username:       "alice",
		Email:          "a@x.com",
		HashedPassword: "bcrypt-hash",
		IsActive:       true,
		CreatedAt:      now,
	}

	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, user.Username, user.Email, user.HashedPassword, true, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.HashedPassword, true, now).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if !created.IsActive {
		t.Error("expected created user to be active")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, models.User{Username: "alice"})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{Username: "alice"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(7, "bob", "b@x.com", "hash", true, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("bob").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 7 || found.Email != "b@x.com" {
		t.Errorf("unexpected user: %+v", found)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(ctx, "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
