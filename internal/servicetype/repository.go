package servicetype

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, s *ServiceType) error
	GetByID(ctx context.Context, id string) (*ServiceType, error)
	List(ctx context.Context) ([]*ServiceType, error)
	Update(ctx context.Context, s *ServiceType) error
	Delete(ctx context.Context, id string) error

	// SetResources replaces the compatible-resource set of a service.
	SetResources(ctx context.Context, serviceID string, resourceIDs []string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// resourceIDsExpr aggregates the compatible resource ids of a service row,
// ordered so repeated reads yield the same candidate order.
const resourceIDsExpr = `COALESCE(
	(SELECT array_agg(sr.resource_id::text ORDER BY sr.resource_id)
	 FROM public.service_resources sr
	 WHERE sr.service_id = s.id),
	'{}'
)`

func (r *pgxRepository) Create(ctx context.Context, s *ServiceType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.service_types").
		Columns("name", "duration_minutes").
		Values(s.Name, s.DurationMinutes).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create service query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*ServiceType, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("s.id", "s.name", "s.duration_minutes", resourceIDsExpr, "s.created_at").
		From("public.service_types s").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get service query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var s ServiceType
	if err := row.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.ResourceIDs, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get service failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*ServiceType, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("s.id", "s.name", "s.duration_minutes", resourceIDsExpr, "s.created_at").
		From("public.service_types s").
		OrderBy("s.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list services query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list services failed: %w", err)
	}
	defer rows.Close()

	var result []*ServiceType
	for rows.Next() {
		var s ServiceType
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.ResourceIDs, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service failed: %w", err)
		}
		result = append(result, &s)
	}

	return result, nil
}

func (r *pgxRepository) Update(ctx context.Context, s *ServiceType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.service_types").
		Set("name", s.Name).
		Set("duration_minutes", s.DurationMinutes).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update service query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update service failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.service_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete service query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete service failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SetResources(ctx context.Context, serviceID string, resourceIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin set resources failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM public.service_resources WHERE service_id = $1`, serviceID); err != nil {
		return fmt.Errorf("clear service resources failed: %w", err)
	}

	for _, resourceID := range resourceIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO public.service_resources (service_id, resource_id) VALUES ($1, $2)`,
			serviceID, resourceID); err != nil {
			return fmt.Errorf("add service resource failed: %w", err)
		}
	}

	return tx.Commit(ctx)
}
