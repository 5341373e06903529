package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Satvik-Mishra/shop_attendance_system/internal/models"
	"github.com/Satvik-Mishra/shop_attendance_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

// Get returns a user by composite id, or (nil, nil) when absent
func (r *UserRepository) Get(ctx context.Context, shopID, name string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT shop_id, name, device_hash, created_at
		FROM users
		WHERE shop_id = $1 AND name = $2;
	`
	err := r.db.QueryRow(ctx, query, shopID, name).Scan(
		&user.ShopID,
		&user.Name,
		&user.DeviceHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Create registers a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (shop_id, name, device_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		user.ShopID,
		user.Name,
		user.DeviceHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// ListByShop returns a shop's users with pagination
func (r *UserRepository) ListByShop(ctx context.Context, shopID string, page, pageSize int) ([]*models.User, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT shop_id, name, device_hash, created_at
		FROM users
		WHERE shop_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, shopID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// ListAll returns every user, for the CSV projection
func (r *UserRepository) ListAll(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT shop_id, name, device_hash, created_at
		FROM users
		ORDER BY shop_id, name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// UpdateDeviceHash sets the device binding; an empty hash clears it
func (r *UserRepository) UpdateDeviceHash(ctx context.Context, shopID, name, deviceHash string) error {
	query := `
		UPDATE users SET device_hash = $1
		WHERE shop_id = $2 AND name = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, deviceHash, shopID, name)
	if err != nil {
		return fmt.Errorf("failed to update device hash: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s/%s: %w", shopID, name, service.ErrUserNotFound)
	}
	return nil
}

func scanUsers(rows pgx.Rows) ([]*models.User, error) {
	users := make([]*models.User, 0)
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
			&user.ShopID,
			&user.Name,
			&user.DeviceHash,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error in user list iteration: %w", err)
	}
	return users, nil
}
