package repository

import (
	"database/sql"
	"errors"
	"log/slog"

	"ticketing-service/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *model.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, role, created_at)
		VALUES (:id, :email, :password_hash, :name, :role, :created_at)
	`
	_, err := r.db.NamedExec(query, u)
	if err != nil {
		slog.Error("insert user", "email", u.Email, "error", err)
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var u model.User
	query := "SELECT * FROM users WHERE email = $1"
	err := r.db.Get(&u, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		slog.Error("get user by email", "error", err)
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(id uuid.UUID) (*model.User, error) {
	var u model.User
	query := "SELECT * FROM users WHERE id = $1"
	err := r.db.Get(&u, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		slog.Error("get user", "id", id, "error", err)
		return nil, err
	}
	return &u, nil
}
