package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Business hours
	CreateHours(ctx context.Context, bh *BusinessHours) error
	ListHours(ctx context.Context) ([]*BusinessHours, error)
	ListHoursByWeekday(ctx context.Context, weekday int) ([]*BusinessHours, error)
	// WeekdaysWithHours returns the set of weekday indexes having at least one entry.
	WeekdaysWithHours(ctx context.Context) (map[int]bool, error)
	DeleteHours(ctx context.Context, id string) error

	// Holidays
	CreateHoliday(ctx context.Context, h *Holiday) error
	ListHolidays(ctx context.Context) ([]*Holiday, error)
	HolidayExists(ctx context.Context, date time.Time) (bool, error)
	// HolidayDatesBetween returns blocked dates in [from, to] as "2006-01-02" strings.
	HolidayDatesBetween(ctx context.Context, from, to time.Time) (map[string]bool, error)
	DeleteHoliday(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateHours(ctx context.Context, bh *BusinessHours) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.business_hours").
		Columns("weekday", "open_time", "close_time").
		Values(bh.Weekday, bh.OpenTime.String(), bh.CloseTime.String()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create business hours query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&bh.ID)
}

func (r *pgxRepository) ListHours(ctx context.Context) ([]*BusinessHours, error) {
	return r.listHours(ctx, squirrel.Sqlizer(nil))
}

func (r *pgxRepository) ListHoursByWeekday(ctx context.Context, weekday int) ([]*BusinessHours, error) {
	return r.listHours(ctx, squirrel.Eq{"weekday": weekday})
}

func (r *pgxRepository) listHours(ctx context.Context, where squirrel.Sqlizer) ([]*BusinessHours, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("id", "weekday", "open_time::text", "close_time::text").
		From("public.business_hours").
		OrderBy("weekday ASC", "open_time ASC")
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list business hours query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list business hours failed: %w", err)
	}
	defer rows.Close()

	var result []*BusinessHours
	for rows.Next() {
		var (
			bh       BusinessHours
			openStr  string
			closeStr string
		)
		if err := rows.Scan(&bh.ID, &bh.Weekday, &openStr, &closeStr); err != nil {
			return nil, fmt.Errorf("scan business hours failed: %w", err)
		}
		if bh.OpenTime, err = ParseTimeOfDay(openStr); err != nil {
			return nil, err
		}
		if bh.CloseTime, err = ParseTimeOfDay(closeStr); err != nil {
			return nil, err
		}
		result = append(result, &bh)
	}

	return result, nil
}

func (r *pgxRepository) WeekdaysWithHours(ctx context.Context) (map[int]bool, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT weekday FROM public.business_hours`)
	if err != nil {
		return nil, fmt.Errorf("list weekdays failed: %w", err)
	}
	defer rows.Close()

	weekdays := make(map[int]bool)
	for rows.Next() {
		var wd int
		if err := rows.Scan(&wd); err != nil {
			return nil, fmt.Errorf("scan weekday failed: %w", err)
		}
		weekdays[wd] = true
	}
	return weekdays, nil
}

func (r *pgxRepository) DeleteHours(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.business_hours WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business hours failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrHoursNotFound
	}
	return nil
}

func (r *pgxRepository) CreateHoliday(ctx context.Context, h *Holiday) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.holidays").
		Columns("name", "date", "created_by").
		Values(h.Name, h.Date.Format("2006-01-02"), h.CreatedByID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create holiday query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&h.ID, &h.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrHolidayExists
		}
		return fmt.Errorf("create holiday failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListHolidays(ctx context.Context) ([]*Holiday, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("h.id", "h.name", "h.date", "h.created_by", "u.email", "h.created_at").
		From("public.holidays h").
		LeftJoin("public.users u ON h.created_by = u.id").
		OrderBy("h.date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list holidays query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list holidays failed: %w", err)
	}
	defer rows.Close()

	var result []*Holiday
	for rows.Next() {
		var h Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.CreatedByID, &h.CreatedByEmail, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan holiday failed: %w", err)
		}
		result = append(result, &h)
	}

	return result, nil
}

func (r *pgxRepository) HolidayExists(ctx context.Context, date time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM public.holidays WHERE date = $1)`,
		date.Format("2006-01-02"),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check holiday failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) HolidayDatesBetween(ctx context.Context, from, to time.Time) (map[string]bool, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT date::text FROM public.holidays WHERE date BETWEEN $1 AND $2`,
		from.Format("2006-01-02"), to.Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("list holiday dates failed: %w", err)
	}
	defer rows.Close()

	dates := make(map[string]bool)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan holiday date failed: %w", err)
		}
		dates[d] = true
	}
	return dates, nil
}

func (r *pgxRepository) DeleteHoliday(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete holiday failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrHolidayNotFound
	}
	return nil
}
