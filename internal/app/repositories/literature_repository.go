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

// LiteratureRepository handles literature database operations
type LiteratureRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLiteratureRepository creates a new LiteratureRepository
func NewLiteratureRepository(db *pgxpool.Pool) *LiteratureRepository {
	return &LiteratureRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var literatureColumns = []string{
	"id", "title", "kind", "author", "publisher", "language", "font_type",
	"year", "printed_count", "condition", "usage_status", "image",
	"file_path", "subject_id", "university_id",
}

func scanLiterature(row pgx.Row) (*models.Literature, error) {
	l := &models.Literature{}
	err := row.Scan(
		&l.ID, &l.Title, &l.Kind, &l.Author, &l.Publisher, &l.Language,
		&l.FontType, &l.Year, &l.PrintedCount, &l.Condition, &l.UsageStatus,
		&l.Image, &l.FilePath, &l.SubjectID, &l.UniversityID,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Create inserts a new literature record and returns its id.
func (r *LiteratureRepository) Create(ctx context.Context, l *models.Literature) (int64, error) {
	sql, args, err := r.sb.Insert("literatures").
		Columns("title", "kind", "author", "publisher", "language",
			"font_type", "year", "printed_count", "condition", "usage_status",
			"image", "file_path", "subject_id", "university_id").
		Values(l.Title, l.Kind, l.Author, l.Publisher, l.Language,
			l.FontType, l.Year, l.PrintedCount, l.Condition, l.UsageStatus,
			l.Image, l.FilePath, l.SubjectID, l.UniversityID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create literature query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create literature query")
		return 0, fmt.Errorf("error creating literature: %w", err)
	}
	return id, nil
}

// GetByID retrieves a literature record by id.
func (r *LiteratureRepository) GetByID(ctx context.Context, id int64) (*models.Literature, error) {
	sql, args, err := r.sb.Select(literatureColumns...).
		From("literatures").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get literature query: %w", err)
	}

	l, err := scanLiterature(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLiteratureNotFound
		}
		logger.Error().Err(err).Int64("literatureID", id).Msg("Error scanning literature row")
		return nil, fmt.Errorf("error getting literature by ID: %w", err)
	}
	return l, nil
}

// GetAll retrieves literature records, optionally filtered to one
// university or subject.
func (r *LiteratureRepository) GetAll(ctx context.Context, universityID, subjectID *int64) ([]*models.Literature, error) {
	q := r.sb.Select(literatureColumns...).
		From("literatures").
		OrderBy("id ASC")
	if universityID != nil {
		q = q.Where(squirrel.Eq{"university_id": *universityID})
	}
	if subjectID != nil {
		q = q.Where(squirrel.Eq{"subject_id": *subjectID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list literatures query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list literatures query")
		return nil, fmt.Errorf("error querying literatures: %w", err)
	}
	defer rows.Close()

	literatures := []*models.Literature{}
	for rows.Next() {
		l, err := scanLiterature(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning literature row: %w", err)
		}
		literatures = append(literatures, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating literature rows: %w", err)
	}
	return literatures, nil
}

// SubjectStudents sums the student counts of every direction attached
// to the given subject. Feeds the availability computation.
func (r *LiteratureRepository) SubjectStudents(ctx context.Context, subjectID int64) (int, error) {
	sql, args, err := r.sb.Select("COALESCE(SUM(d.student_count), 0)").
		From("directions d").
		Join("subject_directions sd ON sd.direction_id = d.id").
		Where(squirrel.Eq{"sd.subject_id": subjectID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build subject students query: %w", err)
	}

	var students int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&students); err != nil {
		logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Error counting subject students")
		return 0, fmt.Errorf("error counting subject students: %w", err)
	}
	return students, nil
}

// Update persists the full literature record.
func (r *LiteratureRepository) Update(ctx context.Context, l *models.Literature) error {
	sql, args, err := r.sb.Update("literatures").
		SetMap(map[string]interface{}{
			"title":         l.Title,
			"kind":          l.Kind,
			"author":        l.Author,
			"publisher":     l.Publisher,
			"language":      l.Language,
			"font_type":     l.FontType,
			"year":          l.Year,
			"printed_count": l.PrintedCount,
			"condition":     l.Condition,
			"usage_status":  l.UsageStatus,
			"image":         l.Image,
			"file_path":     l.FilePath,
			"subject_id":    l.SubjectID,
		}).
		Where(squirrel.Eq{"id": l.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update literature query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("literatureID", l.ID).Msg("Error executing update literature query")
		return fmt.Errorf("error updating literature: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLiteratureNotFound
	}
	return nil
}

// Delete removes a literature record.
func (r *LiteratureRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("literatures").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete literature query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("literatureID", id).Msg("Error executing delete literature query")
		return fmt.Errorf("error deleting literature: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLiteratureNotFound
	}
	return nil
}
