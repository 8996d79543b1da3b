package postgresql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/mugiliam/contentsrv/internal/db/dberror"
	"github.com/mugiliam/contentsrv/internal/db/models"
	"github.com/mugiliam/contentsrv/pkg/apperrors"
	"github.com/rs/zerolog/log"
)

const userColumns = "id, username, email, url_identifier, password_hash, status, bio, created, updated"

func (h *contentDb) CreateUser(ctx context.Context, u *models.User) apperrors.Error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	// Treat empty string as NULL
	bio := sql.NullString{String: u.Bio, Valid: u.Bio != ""}

	query := `
		INSERT INTO users (id, username, email, url_identifier, password_hash, status, bio)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created, updated
	`

	err := h.conn().QueryRowContext(ctx, query,
		u.ID,
		u.Username,
		u.Email,
		u.URLIdentifier,
		u.PasswordHash,
		u.Status,
		bio,
	).Scan(&u.Created, &u.Updated)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_username_key":
				return dberror.ErrAlreadyExists.Msg("username already exists")
			case "users_email_key":
				return dberror.ErrAlreadyExists.Msg("email already exists")
			case "users_url_identifier_key":
				return dberror.ErrAlreadyExists.Msg("url identifier already exists")
			}
			return dberror.ErrAlreadyExists.Msg("user already exists")
		}
		log.Ctx(ctx).Error().Err(err).Str("username", u.Username).Msg("failed to insert user")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

func (h *contentDb) GetUser(ctx context.Context, id uuid.UUID) (*models.User, apperrors.Error) {
	return h.getUserBy(ctx, "id = $1", id)
}

func (h *contentDb) GetUserByUsername(ctx context.Context, username string) (*models.User, apperrors.Error) {
	if username == "" {
		return nil, dberror.ErrInvalidInput.Msg("username cannot be empty")
	}
	return h.getUserBy(ctx, "username = $1", username)
}

func (h *contentDb) GetUserByEmail(ctx context.Context, email string) (*models.User, apperrors.Error) {
	if email == "" {
		return nil, dberror.ErrInvalidInput.Msg("email cannot be empty")
	}
	return h.getUserBy(ctx, "email = $1", email)
}

func (h *contentDb) GetUserByURLIdentifier(ctx context.Context, urlIdentifier string) (*models.User, apperrors.Error) {
	if urlIdentifier == "" {
		return nil, dberror.ErrInvalidInput.Msg("url identifier cannot be empty")
	}
	return h.getUserBy(ctx, "url_identifier = $1", urlIdentifier)
}

func (h *contentDb) getUserBy(ctx context.Context, where string, arg any) (*models.User, apperrors.Error) {
	query := "SELECT " + userColumns + " FROM users WHERE " + where

	var u models.User
	var bio sql.NullString
	err := h.conn().QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.URLIdentifier, &u.PasswordHash, &u.Status, &bio, &u.Created, &u.Updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("user not found")
		}
		return nil, dberror.ErrDatabase.Err(err)
	}
	u.Bio = bio.String

	return &u, nil
}

func (h *contentDb) ListUsers(ctx context.Context) ([]*models.User, apperrors.Error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY username ASC"

	rows, err := h.conn().QueryContext(ctx, query)
	if err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		var u models.User
		var bio sql.NullString
		err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.URLIdentifier, &u.PasswordHash, &u.Status, &bio, &u.Created, &u.Updated)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan user row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		u.Bio = bio.String
		result = append(result, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return result, nil
}

func (h *contentDb) UpdateUser(ctx context.Context, u *models.User) apperrors.Error {
	if u.ID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("user id cannot be empty")
	}
	bio := sql.NullString{String: u.Bio, Valid: u.Bio != ""}

	query := `
		UPDATE users
		SET email = $2,
		    bio = $3,
		    status = $4,
		    updated = NOW()
		WHERE id = $1
	`

	result, err := h.conn().ExecContext(ctx, query, u.ID, u.Email, bio, u.Status)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return dberror.ErrAlreadyExists.Msg("email already exists")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update user")
		return dberror.ErrDatabase.Err(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("user not found")
	}

	return nil
}
