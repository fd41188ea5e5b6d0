package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Allocate atomically claims a free resource among the candidates for
	// the reservation's interval and persists the reservation bound to it.
	// The pick is deterministic (lowest resource id). Returns ErrSlotConflict
	// when every candidate is occupied.
	Allocate(ctx context.Context, rsv *Reservation, candidateIDs []string) error

	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, error)

	// ListOverlapping returns reservations on any of the given resources
	// whose interval overlaps [from, to). Both pending and approved rows
	// are returned.
	ListOverlapping(ctx context.Context, resourceIDs []string, from, to time.Time) ([]*Reservation, error)

	// MarkApproved flips is_approved from false to true. The returned bool
	// reports whether this call performed the transition; a second call on
	// an approved reservation returns false with no error.
	MarkApproved(ctx context.Context, id string) (bool, error)

	Update(ctx context.Context, rsv *Reservation) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Allocate(ctx context.Context, rsv *Reservation, candidateIDs []string) error {
	if len(candidateIDs) == 0 {
		return ErrSlotConflict
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin allocation failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the candidate resource rows to serialize concurrent allocations
	// over the same pool. Competing transactions queue here, so the busy
	// check below always sees committed reservations.
	rows, err := tx.Query(ctx,
		`SELECT id FROM public.resources WHERE id = ANY($1::uuid[]) ORDER BY id FOR UPDATE`,
		candidateIDs)
	if err != nil {
		return fmt.Errorf("lock resources failed: %w", err)
	}
	locked := make([]string, 0, len(candidateIDs))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scan locked resource failed: %w", err)
		}
		locked = append(locked, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("lock resources failed: %w", err)
	}

	// Half-open interval overlap: an existing reservation occupies a
	// candidate when start_time < new end AND end_time > new start.
	busyRows, err := tx.Query(ctx,
		`SELECT DISTINCT resource_id
		 FROM public.reservations
		 WHERE resource_id = ANY($1::uuid[]) AND start_time < $2 AND end_time > $3`,
		candidateIDs, rsv.EndTime, rsv.StartTime)
	if err != nil {
		return fmt.Errorf("busy check failed: %w", err)
	}
	busy := make(map[string]bool)
	for busyRows.Next() {
		var id string
		if err := busyRows.Scan(&id); err != nil {
			busyRows.Close()
			return fmt.Errorf("scan busy resource failed: %w", err)
		}
		busy[id] = true
	}
	busyRows.Close()
	if err := busyRows.Err(); err != nil {
		return fmt.Errorf("busy check failed: %w", err)
	}

	// locked is ordered by id, so the first free entry is the stable pick.
	var chosen string
	for _, id := range locked {
		if !busy[id] {
			chosen = id
			break
		}
	}
	if chosen == "" {
		return ErrSlotConflict
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns("full_name", "phone", "email", "license_plate",
			"service_id", "resource_id", "start_time", "end_time", "is_stored", "is_approved").
		Values(rsv.FullName, rsv.Phone, rsv.Email, rsv.LicensePlate,
			rsv.ServiceID, chosen, rsv.StartTime, rsv.EndTime, rsv.IsStored, false).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert reservation query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&rsv.ID, &rsv.CreatedAt); err != nil {
		// The exclusion constraint on (resource_id, interval) is the safety
		// net for anything that slips past the row locks.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrSlotConflict
		}
		return fmt.Errorf("insert reservation failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit allocation failed: %w", err)
	}

	rsv.ResourceID = chosen
	rsv.IsApproved = false
	return nil
}

const selectReservation = `
	r.id, r.full_name, r.phone, r.email, r.license_plate,
	r.service_id, s.name, r.resource_id, res.name,
	r.start_time, r.end_time, r.is_stored, r.is_approved, r.created_at
`

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectReservation).
		From("public.reservations r").
		Join("public.service_types s ON r.service_id = s.id").
		Join("public.resources res ON r.resource_id = res.id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	rsv, err := scanReservation(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return rsv, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(selectReservation).
		From("public.reservations r").
		Join("public.service_types s ON r.service_id = s.id").
		Join("public.resources res ON r.resource_id = res.id")

	if filter.StartFrom != nil {
		query = query.Where(squirrel.GtOrEq{"r.start_time": *filter.StartFrom})
	}
	if filter.StartBefore != nil {
		query = query.Where(squirrel.Lt{"r.start_time": *filter.StartBefore})
	}
	if filter.PendingOnly {
		query = query.Where(squirrel.Eq{"r.is_approved": false})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"r.full_name": pattern},
			squirrel.ILike{"r.email": pattern},
			squirrel.ILike{"r.phone": pattern},
			squirrel.ILike{"r.license_plate": pattern},
		})
	}

	order := "r.start_time ASC"
	if filter.Descending {
		order = "r.start_time DESC"
	}
	query = query.OrderBy(order)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var result []*Reservation
	for rows.Next() {
		rsv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		result = append(result, rsv)
	}

	return result, nil
}

func (r *pgxRepository) ListOverlapping(ctx context.Context, resourceIDs []string, from, to time.Time) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectReservation).
		From("public.reservations r").
		Join("public.service_types s ON r.service_id = s.id").
		Join("public.resources res ON r.resource_id = res.id").
		Where("r.resource_id = ANY(?::uuid[])", resourceIDs).
		Where(squirrel.Lt{"r.start_time": to}).
		Where(squirrel.Gt{"r.end_time": from}).
		OrderBy("r.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build overlapping reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list overlapping reservations failed: %w", err)
	}
	defer rows.Close()

	var result []*Reservation
	for rows.Next() {
		rsv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		result = append(result, rsv)
	}

	return result, nil
}

func (r *pgxRepository) MarkApproved(ctx context.Context, id string) (bool, error) {
	ct, err := r.pool.Exec(ctx,
		`UPDATE public.reservations SET is_approved = true WHERE id = $1 AND is_approved = false`,
		id)
	if err != nil {
		return false, fmt.Errorf("approve reservation failed: %w", err)
	}
	return ct.RowsAffected() == 1, nil
}

func (r *pgxRepository) Update(ctx context.Context, rsv *Reservation) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("full_name", rsv.FullName).
		Set("phone", rsv.Phone).
		Set("email", rsv.Email).
		Set("license_plate", rsv.LicensePlate).
		Set("is_stored", rsv.IsStored).
		Where(squirrel.Eq{"id": rsv.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update reservation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanReservation(row pgx.Row) (*Reservation, error) {
	var rsv Reservation
	err := row.Scan(
		&rsv.ID, &rsv.FullName, &rsv.Phone, &rsv.Email, &rsv.LicensePlate,
		&rsv.ServiceID, &rsv.ServiceName, &rsv.ResourceID, &rsv.ResourceName,
		&rsv.StartTime, &rsv.EndTime, &rsv.IsStored, &rsv.IsApproved, &rsv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rsv, nil
}
