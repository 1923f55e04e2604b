package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
	"github.com/bekzod/unilib/internal/pkg/dberrors"
	"github.com/bekzod/unilib/internal/pkg/logger"
)

// AdminRepository handles admin account database operations. Both
// superadmins and the owner live in the admins table, distinguished by
// the role column.
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var adminColumns = []string{"id", "email", "password", "role", "university_id"}

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	a := &models.Admin{}
	if err := row.Scan(&a.ID, &a.Email, &a.Password, &a.Role, &a.UniversityID); err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new admin account and returns its id.
func (r *AdminRepository) Create(ctx context.Context, a *models.Admin) (int64, error) {
	sql, args, err := r.sb.Insert("admins").
		Columns("email", "password", "role", "university_id").
		Values(a.Email, a.Password, a.Role, a.UniversityID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create admin query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admins_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create admin query")
		return 0, fmt.Errorf("error creating admin: %w", err)
	}
	return id, nil
}

// GetByID retrieves an admin by id.
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns...).
		From("admins").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	a, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Int64("adminID", id).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin by ID: %w", err)
	}
	return a, nil
}

// GetByEmail retrieves an admin by email. Used by the login path,
// which checks admins before users.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns...).
		From("admins").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin by email query: %w", err)
	}

	a, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin by email: %w", err)
	}
	return a, nil
}

// GetAll retrieves all admin accounts ordered by id.
func (r *AdminRepository) GetAll(ctx context.Context) ([]*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns...).
		From("admins").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list admins query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list admins query")
		return nil, fmt.Errorf("error querying admins: %w", err)
	}
	defer rows.Close()

	admins := []*models.Admin{}
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning admin row: %w", err)
		}
		admins = append(admins, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admin rows: %w", err)
	}
	return admins, nil
}

// Update persists the full admin record.
func (r *AdminRepository) Update(ctx context.Context, a *models.Admin) error {
	sql, args, err := r.sb.Update("admins").
		SetMap(map[string]interface{}{
			"email":         a.Email,
			"password":      a.Password,
			"university_id": a.UniversityID,
		}).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update admin query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admins_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int64("adminID", a.ID).Msg("Error executing update admin query")
		return fmt.Errorf("error updating admin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}

// Delete removes an admin account.
func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("admins").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete admin query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("adminID", id).Msg("Error executing delete admin query")
		return fmt.Errorf("error deleting admin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}
