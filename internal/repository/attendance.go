package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Satvik-Mishra/shop_attendance_system/internal/models"
	"github.com/Satvik-Mishra/shop_attendance_system/internal/service"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AttendanceRepository struct {
	db *pgxpool.Pool
}

func NewAttendanceRepository(db *pgxpool.Pool) service.AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Insert persists a check-in. A violation of the per-day unique index is
// surfaced as service.ErrAlreadyMarked so concurrent same-day submissions
// cannot both land.
func (r *AttendanceRepository) Insert(ctx context.Context, record *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records
			(shop_id, user_name, recorded_at, location, distance_meters, within_radius, selfie_b64)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, NULLIF($8, ''))
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		record.ShopID,
		record.UserName,
		record.RecordedAt,
		record.Longitude,
		record.Latitude,
		record.DistanceMeters,
		record.WithinRadius,
		record.SelfieB64,
	).Scan(&record.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("attendance for %s/%s: %w", record.ShopID, record.UserName, service.ErrAlreadyMarked)
		}
		return fmt.Errorf("failed to insert attendance record: %w", err)
	}
	return nil
}

// HasRecordOnDay reports whether any record exists for the UTC calendar day
// of the given instant
func (r *AttendanceRepository) HasRecordOnDay(ctx context.Context, shopID, userName string, day time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM attendance_records
			WHERE shop_id = $1
			  AND user_name = $2
			  AND (recorded_at AT TIME ZONE 'utc')::date = $3::date
		);
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, shopID, userName, day.UTC().Format("2006-01-02")).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance for day: %w", err)
	}
	return exists, nil
}

// ListByUser returns a user's records, newest first. Selfie payloads are not
// included in listings.
func (r *AttendanceRepository) ListByUser(ctx context.Context, shopID, userName string, page, pageSize int) ([]*models.AttendanceRecord, error) {
	offset := (page - 1) * pageSize

	query := attendanceSelect + `
		WHERE shop_id = $1 AND user_name = $2
		ORDER BY recorded_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.db.Query(ctx, query, shopID, userName, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by user: %w", err)
	}
	defer rows.Close()

	return scanAttendance(rows)
}

// ListByShop returns a shop's records, newest first
func (r *AttendanceRepository) ListByShop(ctx context.Context, shopID string, page, pageSize int) ([]*models.AttendanceRecord, error) {
	offset := (page - 1) * pageSize

	query := attendanceSelect + `
		WHERE shop_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, shopID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by shop: %w", err)
	}
	defer rows.Close()

	return scanAttendance(rows)
}

// ListAll returns every record, for the CSV projection
func (r *AttendanceRepository) ListAll(ctx context.Context) ([]*models.AttendanceRecord, error) {
	query := attendanceSelect + `
		ORDER BY recorded_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all attendance: %w", err)
	}
	defer rows.Close()

	return scanAttendance(rows)
}

const attendanceSelect = `
	SELECT
		id,
		shop_id,
		user_name,
		recorded_at,
		ST_Y(location::geometry) as latitude,
		ST_X(location::geometry) as longitude,
		distance_meters,
		within_radius
	FROM attendance_records
`

func scanAttendance(rows pgx.Rows) ([]*models.AttendanceRecord, error) {
	records := make([]*models.AttendanceRecord, 0)
	for rows.Next() {
		record := &models.AttendanceRecord{}
		err := rows.Scan(
			&record.ID,
			&record.ShopID,
			&record.UserName,
			&record.RecordedAt,
			&record.Latitude,
			&record.Longitude,
			&record.DistanceMeters,
			&record.WithinRadius,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error in attendance list iteration: %w", err)
	}
	return records, nil
}
