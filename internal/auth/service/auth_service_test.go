package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard-io/taskboard-backend/internal/auth/domain"
	"github.com/taskboard-io/taskboard-backend/internal/auth/repository"
	"github.com/taskboard-io/taskboard-backend/internal/validation"
)

func setupService(t *testing.T) (*AuthService, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewTokenStore(client, 0),
		bcrypt.MinCost,
	)
	return svc, mock, db
}

func userColumns() []string {
	return []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}
}

// unique_violation on users_email_key
var pgUniqueViolation = pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, mock, db := setupService(t)
	defer db.Close()

	t.Run("missing everything", func(t *testing.T) {
		_, _, err := svc.Register(context.Background(), domain.RegisterRequest{})

		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs, "name")
		assert.Contains(t, verrs, "email")
		assert.Contains(t, verrs, "password")
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		_, _, err := svc.Register(context.Background(), domain.RegisterRequest{
			Name:                 "Alex",
			Email:                "alex@example.com",
			Password:             "secret-password",
			PasswordConfirmation: "different-password",
		})

		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs, "password")
	})

	t.Run("short password", func(t *testing.T) {
		_, _, err := svc.Register(context.Background(), domain.RegisterRequest{
			Name:                 "Alex",
			Email:                "alex@example.com",
			Password:             "short",
			PasswordConfirmation: "short",
		})

		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs, "password")
	})

	t.Run("bad email", func(t *testing.T) {
		_, _, err := svc.Register(context.Background(), domain.RegisterRequest{
			Name:                 "Alex",
			Email:                "not-an-email",
			Password:             "secret-password",
			PasswordConfirmation: "secret-password",
		})

		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs, "email")
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, mock, db := setupService(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alex", "alex@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(int64(1), "Alex", "alex@example.com", "hash", now, now))

	user, token, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:                 "Alex",
		Email:                "Alex@Example.com", // normalized before storage
		Password:             "secret-password",
		PasswordConfirmation: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.NotEmpty(t, token)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, mock, db := setupService(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alex", "alex@example.com", sqlmock.AnyArg()).
		WillReturnError(&pgUniqueViolation)

	_, _, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:                 "Alex",
		Email:                "alex@example.com",
		Password:             "secret-password",
		PasswordConfirmation: "secret-password",
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "email")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Login(t *testing.T) {
	svc, mock, db := setupService(t)
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()

	t.Run("wrong password", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, email, password_hash`).
			WithArgs("alex@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(int64(1), "Alex", "alex@example.com", string(hash), now, now))

		_, _, err := svc.Login(context.Background(), domain.LoginRequest{
			Email:    "alex@example.com",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email reported as invalid credentials", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, email, password_hash`).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		_, _, err := svc.Login(context.Background(), domain.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret-password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("valid credentials issue a usable token", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, email, password_hash`).
			WithArgs("alex@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(int64(1), "Alex", "alex@example.com", string(hash), now, now))

		user, token, err := svc.Login(context.Background(), domain.LoginRequest{
			Email:    "alex@example.com",
			Password: "secret-password",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)

		mock.ExpectQuery(`SELECT id, name, email, password_hash`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(int64(1), "Alex", "alex@example.com", string(hash), now, now))

		authed, err := svc.Authenticate(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, authed.ID)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_LogoutInvalidatesToken(t *testing.T) {
	svc, mock, db := setupService(t)
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, name, email, password_hash`).
		WithArgs("alex@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(int64(1), "Alex", "alex@example.com", string(hash), now, now))

	_, token, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "alex@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))

	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	require.NoError(t, mock.ExpectationsWereMet())
}
