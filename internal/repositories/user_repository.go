package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"coderrBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
		INSERT INTO users (username, first_name, last_name, email, password, role, file, location, tel, description, working_hours, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		user.Username, user.FirstName, user.LastName, user.Email, user.Password,
		user.Role, user.File, user.Location, user.Tel, user.Description, user.WorkingHours,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return models.User{}, models.ErrDuplicateEmail
			}
			return models.User{}, models.ErrDuplicateUsername
		}
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, password, role, file, location, tel, description, working_hours, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var u models.User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.Role,
		&u.File, &u.Location, &u.Tel, &u.Description, &u.WorkingHours, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, password, role, file, location, tel, description, working_hours, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	var u models.User
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.Role,
		&u.File, &u.Location, &u.Tel, &u.Description, &u.WorkingHours, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `SELECT id, username, email, role FROM users WHERE email = $1`
	var u models.User
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Username, &u.Email, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// UpdateProfile applies the non-nil fields of the patch and returns the
// updated record.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int, patch models.ProfilePatch) (models.User, error) {
	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.File != nil {
		add("file", *patch.File)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Tel != nil {
		add("tel", *patch.Tel)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.WorkingHours != nil {
		add("working_hours", *patch.WorkingHours)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE users SET %s, updated_at = NOW() WHERE id = $%d", strings.Join(sets, ", "), len(args))
		res, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return models.User{}, models.ErrDuplicateEmail
			}
			return models.User{}, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return models.User{}, err
		}
		if affected == 0 {
			return models.User{}, models.ErrUserNotFound
		}
	}

	return r.GetUserByID(ctx, id)
}

func (r *UserRepository) UpdateUserFile(ctx context.Context, id int, path string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE users SET file = $1, updated_at = NOW() WHERE id = $2`, path, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) GetUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, role, file, location, tel, description, working_hours, created_at
		FROM users
		WHERE role = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.Role,
			&u.File, &u.Location, &u.Tel, &u.Description, &u.WorkingHours, &u.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `
		INSERT INTO sessions (user_id, role, refresh_token, expires_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `
		SELECT user_id, role, refresh_token, expires_at
		FROM sessions
		WHERE refresh_token = $1
	`
	var s models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(&s.UserID, &s.Role, &s.RefreshToken, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return s, nil
}
