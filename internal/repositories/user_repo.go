package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"tasteTribeBack/internal/models"
)

const mysqlDuplicateEntry = 1062

type UserRepository struct {
	DB *sql.DB
}

// CreateUser is the first-sign-in upsert. The existence check is a fast
// path only; the UNIQUE KEY on email is the real guard against concurrent
// first sign-ins, surfaced here as a re-read of the winning row.
func (r *UserRepository) CreateUser(ctx context.Context, u models.User) (models.User, bool, error) {
	u.Email = strings.ToLower(u.Email)

	existing, err := r.GetUserByEmail(ctx, u.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, false, err
	}

	if u.Role == "" {
		u.Role = models.RoleUser
	}
	query := `
		INSERT INTO users (email, name, photo_url, role, last_updated, created_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query, u.Email, u.Name, u.PhotoURL, u.Role)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			existing, err := r.GetUserByEmail(ctx, u.Email)
			return existing, false, err
		}
		return models.User{}, false, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, false, err
	}
	u.ID = int(id)
	now := time.Now()
	u.LastUpdated = now
	u.CreatedAt = &now
	return u, true, nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, email, name, photo_url, role, package, last_updated, created_at
		FROM users
		ORDER BY last_updated DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `
		SELECT id, email, name, photo_url, role, package, last_updated, created_at
		FROM users
		WHERE id = ?
	`
	return r.getOne(ctx, query, id)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `
		SELECT id, email, name, photo_url, role, package, last_updated, created_at
		FROM users
		WHERE email = ?
	`
	return r.getOne(ctx, query, strings.ToLower(email))
}

// GetRoleByEmail backs the role-check policy.
func (r *UserRepository) GetRoleByEmail(ctx context.Context, email string) (string, error) {
	var role string
	err := r.DB.QueryRowContext(ctx, `SELECT role FROM users WHERE email = ?`, strings.ToLower(email)).Scan(&role)
	if err == sql.ErrNoRows {
		return "", models.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

// The UPDATE methods do not inspect affected rows: MySQL reports zero for
// a value-identical update, which must not read as a missing user. The
// service layer establishes existence around each of these calls.
func (r *UserRepository) UpdateProfile(ctx context.Context, email, name, photoURL string) error {
	query := `
		UPDATE users
		SET name = ?, photo_url = ?, last_updated = NOW()
		WHERE email = ?
	`
	_, err := r.DB.ExecContext(ctx, query, name, photoURL, strings.ToLower(email))
	return err
}

func (r *UserRepository) UpdateRole(ctx context.Context, id int, role string) error {
	query := `
		UPDATE users
		SET role = ?, last_updated = NOW()
		WHERE id = ?
	`
	_, err := r.DB.ExecContext(ctx, query, role, id)
	return err
}

// PromoteToPremium records the paid package alongside the role change.
func (r *UserRepository) PromoteToPremium(ctx context.Context, email, packageLabel string) error {
	query := `
		UPDATE users
		SET role = ?, package = ?, last_updated = NOW()
		WHERE email = ?
	`
	_, err := r.DB.ExecContext(ctx, query, models.RolePremium, packageLabel, strings.ToLower(email))
	return err
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(result, models.ErrUserNotFound)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (models.User, error) {
	row := r.DB.QueryRowContext(ctx, query, arg)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	var photoURL, pkg sql.NullString
	var createdAt sql.NullTime
	err := row.Scan(&u.ID, &u.Email, &u.Name, &photoURL, &u.Role, &pkg, &u.LastUpdated, &createdAt)
	if err != nil {
		return models.User{}, err
	}
	u.PhotoURL = photoURL.String
	if pkg.Valid && pkg.String != "" {
		u.Package = &pkg.String
	}
	if createdAt.Valid {
		u.CreatedAt = &createdAt.Time
	}
	return u, nil
}

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
