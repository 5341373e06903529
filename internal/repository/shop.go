package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Satvik-Mishra/shop_attendance_system/internal/models"
	"github.com/Satvik-Mishra/shop_attendance_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const shopCacheTTL = 5 * time.Minute

type ShopRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewShopRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ShopRepository {
	return &ShopRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create inserts a new shop
func (r *ShopRepository) Create(ctx context.Context, shop *models.Shop) error {
	query := `
		INSERT INTO shops (id, name, pin, location, radius_meters, subscription_ends)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7)
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		shop.ID,
		shop.Name,
		shop.PIN,
		shop.Longitude,
		shop.Latitude,
		shop.RadiusMeters,
		shop.SubscriptionEnds,
	).Scan(&shop.CreatedAt, &shop.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}
	return nil
}

// GetByID returns a shop by its identifier
func (r *ShopRepository) GetByID(ctx context.Context, id string) (*models.Shop, error) {
	shop := &models.Shop{}
	query := `
		SELECT
			id,
			name,
			pin,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			radius_meters,
			subscription_ends,
			created_at,
			updated_at
		FROM shops
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&shop.ID,
		&shop.Name,
		&shop.PIN,
		&shop.Latitude,
		&shop.Longitude,
		&shop.RadiusMeters,
		&shop.SubscriptionEnds,
		&shop.CreatedAt,
		&shop.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("shop %s: %w", id, service.ErrShopNotFound)
		}
		return nil, fmt.Errorf("failed to get shop by id: %w", err)
	}
	return shop, nil
}

// Update replaces the shop's mutable fields
func (r *ShopRepository) Update(ctx context.Context, shop *models.Shop) error {
	query := `
		UPDATE shops SET
			name = $1,
			pin = $2,
			location = ST_SetSRID(ST_MakePoint($3, $4), 4326),
			radius_meters = $5,
			subscription_ends = $6,
			updated_at = NOW()
		WHERE id = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		shop.Name,
		shop.PIN,
		shop.Longitude,
		shop.Latitude,
		shop.RadiusMeters,
		shop.SubscriptionEnds,
		shop.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shop: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("shop %s: %w", shop.ID, service.ErrShopNotFound)
	}
	return nil
}

// ListShops returns shops with pagination
func (r *ShopRepository) ListShops(ctx context.Context, page, pageSize int) ([]*models.Shop, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			name,
			pin,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			radius_meters,
			subscription_ends,
			created_at,
			updated_at
		FROM shops
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	defer rows.Close()

	shops := make([]*models.Shop, 0)
	for rows.Next() {
		shop := &models.Shop{}
		err := rows.Scan(
			&shop.ID,
			&shop.Name,
			&shop.PIN,
			&shop.Latitude,
			&shop.Longitude,
			&shop.RadiusMeters,
			&shop.SubscriptionEnds,
			&shop.CreatedAt,
			&shop.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shop row: %w", err)
		}
		shops = append(shops, shop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error in shop list iteration: %w", err)
	}
	return shops, nil
}

// GetShopFromCache tries to load a shop from Redis; a miss returns (nil, nil)
func (r *ShopRepository) GetShopFromCache(ctx context.Context, id string) (*models.Shop, error) {
	key := fmt.Sprintf("shop:%s", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shop from cache: %w", err)
	}

	cached := &cachedShop{}
	if err := json.Unmarshal(val, cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shop from cache: %w", err)
	}
	shop := cached.Shop
	shop.PIN = cached.PIN
	return &shop, nil
}

// cachedShop carries the PIN through the cache; Shop itself never serializes
// its PIN to JSON.
type cachedShop struct {
	models.Shop
	PIN string `json:"pin"`
}

// SetShopCache stores a shop in Redis
func (r *ShopRepository) SetShopCache(ctx context.Context, shop *models.Shop) error {
	key := fmt.Sprintf("shop:%s", shop.ID)
	val, err := json.Marshal(cachedShop{Shop: *shop, PIN: shop.PIN})
	if err != nil {
		return fmt.Errorf("failed to marshal shop for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, shopCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set shop in cache: %w", err)
	}
	return nil
}

// InvalidateShopCache removes a shop from the Redis cache
func (r *ShopRepository) InvalidateShopCache(ctx context.Context, id string) error {
	key := fmt.Sprintf("shop:%s", id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate shop cache: %w", err)
	}
	return nil
}
