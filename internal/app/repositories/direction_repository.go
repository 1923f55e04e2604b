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
	"github.com/bekzod/unilib/internal/pkg/logger"
)

// DirectionRepository handles study direction database operations
type DirectionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDirectionRepository creates a new DirectionRepository
func NewDirectionRepository(db *pgxpool.Pool) *DirectionRepository {
	return &DirectionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var directionColumns = []string{"id", "number", "name", "course", "student_count", "university_id"}

func scanDirection(row pgx.Row) (*models.Direction, error) {
	d := &models.Direction{}
	err := row.Scan(&d.ID, &d.Number, &d.Name, &d.Course, &d.StudentCount, &d.UniversityID)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Create inserts a new direction and returns its id.
func (r *DirectionRepository) Create(ctx context.Context, d *models.Direction) (int64, error) {
	sql, args, err := r.sb.Insert("directions").
		Columns("number", "name", "course", "student_count", "university_id").
		Values(d.Number, d.Name, d.Course, d.StudentCount, d.UniversityID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create direction query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrDirectionAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create direction query")
		return 0, fmt.Errorf("error creating direction: %w", err)
	}
	return id, nil
}

// GetByID retrieves a direction by id.
func (r *DirectionRepository) GetByID(ctx context.Context, id int64) (*models.Direction, error) {
	sql, args, err := r.sb.Select(directionColumns...).
		From("directions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get direction query: %w", err)
	}

	d, err := scanDirection(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDirectionNotFound
		}
		logger.Error().Err(err).Int64("directionID", id).Msg("Error scanning direction row")
		return nil, fmt.Errorf("error getting direction by ID: %w", err)
	}
	return d, nil
}

// GetAll retrieves directions, optionally filtered to one university,
// ordered by id.
func (r *DirectionRepository) GetAll(ctx context.Context, universityID *int64) ([]*models.Direction, error) {
	q := r.sb.Select(directionColumns...).
		From("directions").
		OrderBy("id ASC")
	if universityID != nil {
		q = q.Where(squirrel.Eq{"university_id": *universityID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list directions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list directions query")
		return nil, fmt.Errorf("error querying directions: %w", err)
	}
	defer rows.Close()

	directions := []*models.Direction{}
	for rows.Next() {
		d, err := scanDirection(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning direction row: %w", err)
		}
		directions = append(directions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating direction rows: %w", err)
	}
	return directions, nil
}

// CountExistingIDs returns how many of the given direction ids exist
// within the given university. Used by the bulk subject create path to
// reject references to foreign or missing directions.
func (r *DirectionRepository) CountExistingIDs(ctx context.Context, ids []int64, universityID int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := r.sb.Select("COUNT(*)").
		From("directions").
		Where(squirrel.Eq{"id": ids, "university_id": universityID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count directions query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting directions by ids")
		return 0, fmt.Errorf("error counting directions: %w", err)
	}
	return count, nil
}

// ExistsByCourse checks for another direction with the same course in
// the same university.
func (r *DirectionRepository) ExistsByCourse(ctx context.Context, course int, universityID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("directions").
		Where(squirrel.Eq{"course": course, "university_id": universityID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build direction existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int("course", course).Msg("Error checking direction existence")
		return false, fmt.Errorf("error checking direction existence: %w", err)
	}
	return exists, nil
}

// Update persists the full direction record.
func (r *DirectionRepository) Update(ctx context.Context, d *models.Direction) error {
	sql, args, err := r.sb.Update("directions").
		SetMap(map[string]interface{}{
			"number":        d.Number,
			"name":          d.Name,
			"course":        d.Course,
			"student_count": d.StudentCount,
		}).
		Where(squirrel.Eq{"id": d.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update direction query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrDirectionAlreadyExists
		}
		logger.Error().Err(err).Int64("directionID", d.ID).Msg("Error executing update direction query")
		return fmt.Errorf("error updating direction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDirectionNotFound
	}
	return nil
}

// Delete removes a direction.
func (r *DirectionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("directions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete direction query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("directionID", id).Msg("Error executing delete direction query")
		return fmt.Errorf("error deleting direction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDirectionNotFound
	}
	return nil
}
