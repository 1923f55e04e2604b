package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
	"github.com/bekzod/unilib/internal/pkg/logger"
)

// UniversityRepository handles university database operations
type UniversityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUniversityRepository creates a new UniversityRepository
func NewUniversityRepository(db *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}

var universityColumns = []string{"id", "name", "description", "address", "phone", "email", "location"}

func scanUniversity(row pgx.Row) (*models.University, error) {
	u := &models.University{}
	err := row.Scan(&u.ID, &u.Name, &u.Description, &u.Address, &u.Phone, &u.Email, &u.Location)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new university and returns its id.
func (r *UniversityRepository) Create(ctx context.Context, u *models.University) (int64, error) {
	sql, args, err := r.sb.Insert("universities").
		Columns("name", "description", "address", "phone", "email", "location").
		Values(u.Name, u.Description, u.Address, u.Phone, u.Email, u.Location).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create university query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrUniversityAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create university query")
		return 0, fmt.Errorf("error creating university: %w", err)
	}
	return id, nil
}

// GetByID retrieves a university by id.
func (r *UniversityRepository) GetByID(ctx context.Context, id int64) (*models.University, error) {
	sql, args, err := r.sb.Select(universityColumns...).
		From("universities").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get university query: %w", err)
	}

	u, err := scanUniversity(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUniversityNotFound
		}
		logger.Error().Err(err).Int64("universityID", id).Msg("Error scanning university row")
		return nil, fmt.Errorf("error getting university by ID: %w", err)
	}
	return u, nil
}

// GetAll retrieves all universities ordered by name.
func (r *UniversityRepository) GetAll(ctx context.Context) ([]*models.University, error) {
	sql, args, err := r.sb.Select(universityColumns...).
		From("universities").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list universities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list universities query")
		return nil, fmt.Errorf("error querying universities: %w", err)
	}
	defer rows.Close()

	universities := []*models.University{}
	for rows.Next() {
		u, err := scanUniversity(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning university row: %w", err)
		}
		universities = append(universities, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating university rows: %w", err)
	}
	return universities, nil
}

// Update persists the full university record.
func (r *UniversityRepository) Update(ctx context.Context, u *models.University) error {
	sql, args, err := r.sb.Update("universities").
		SetMap(map[string]interface{}{
			"name":        u.Name,
			"description": u.Description,
			"address":     u.Address,
			"phone":       u.Phone,
			"email":       u.Email,
			"location":    u.Location,
		}).
		Where(squirrel.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update university query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrUniversityAlreadyExists
		}
		logger.Error().Err(err).Int64("universityID", u.ID).Msg("Error executing update university query")
		return fmt.Errorf("error updating university: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}
	return nil
}

// Delete removes a university. Dependent rows go with it through the
// schema-level cascades.
func (r *UniversityRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("universities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete university query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("universityID", id).Msg("Error executing delete university query")
		return fmt.Errorf("error deleting university: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}
	return nil
}

// ExistsByName checks whether a university with the given name exists.
func (r *UniversityRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("universities").
		Where(squirrel.Eq{"name": name}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build university existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("name", name).Msg("Error checking university existence")
		return false, fmt.Errorf("error checking university existence: %w", err)
	}
	return exists, nil
}
