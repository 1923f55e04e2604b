package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/pkg/logger"
)

// StatsRepository handles the aggregate queries behind the statistics
// endpoints and the export workbook.
type StatsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CountUniversities returns the number of universities, optionally
// restricted to one id.
func (r *StatsRepository) CountUniversities(ctx context.Context, universityID *int64) (int64, error) {
	q := r.sb.Select("COUNT(*)").From("universities")
	if universityID != nil {
		q = q.Where(squirrel.Eq{"id": *universityID})
	}
	return r.scalar(ctx, q, "count universities")
}

// CountStudents sums direction student counts in scope.
func (r *StatsRepository) CountStudents(ctx context.Context, universityID *int64) (int64, error) {
	q := r.sb.Select("COALESCE(SUM(student_count), 0)").From("directions")
	if universityID != nil {
		q = q.Where(squirrel.Eq{"university_id": *universityID})
	}
	return r.scalar(ctx, q, "count students")
}

// CountDirections returns the number of directions in scope.
func (r *StatsRepository) CountDirections(ctx context.Context, universityID *int64) (int64, error) {
	q := r.sb.Select("COUNT(*)").From("directions")
	if universityID != nil {
		q = q.Where(squirrel.Eq{"university_id": *universityID})
	}
	return r.scalar(ctx, q, "count directions")
}

func (r *StatsRepository) scalar(ctx context.Context, q squirrel.SelectBuilder, op string) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build %s query: %w", op, err)
	}
	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error executing stats query")
		return 0, fmt.Errorf("error executing %s query: %w", op, err)
	}
	return n, nil
}

// UniversityTotals returns per-university aggregates, optionally
// restricted to one university, ordered by university id.
func (r *StatsRepository) UniversityTotals(ctx context.Context, universityID *int64) ([]*models.UniversityTotals, error) {
	q := r.sb.Select(
		"u.id", "u.name",
		"COALESCE((SELECT SUM(d.student_count) FROM directions d WHERE d.university_id = u.id), 0)",
		"(SELECT COUNT(*) FROM directions d WHERE d.university_id = u.id)",
		"(SELECT COUNT(*) FROM subjects s WHERE s.university_id = u.id)",
		"(SELECT COUNT(*) FROM literatures l WHERE l.university_id = u.id)",
	).
		From("universities u").
		OrderBy("u.id ASC")
	if universityID != nil {
		q = q.Where(squirrel.Eq{"u.id": *universityID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build university totals query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing university totals query")
		return nil, fmt.Errorf("error querying university totals: %w", err)
	}
	defer rows.Close()

	totals := []*models.UniversityTotals{}
	for rows.Next() {
		t := &models.UniversityTotals{}
		if err := rows.Scan(&t.UniversityID, &t.UniversityName, &t.Students, &t.Directions, &t.Subjects, &t.Literatures); err != nil {
			return nil, fmt.Errorf("error scanning university totals row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating university totals rows: %w", err)
	}
	return totals, nil
}

// ExportRows returns the flattened (direction, subject, literature)
// rows of one university in report order. Empty branches simply yield
// no rows.
func (r *StatsRepository) ExportRows(ctx context.Context, universityID int64) ([]*models.ExportRow, error) {
	sql, args, err := r.sb.Select(
		"d.id", "d.number", "d.name", "d.course", "d.student_count",
		"s.id", "s.name",
		"l.id", "l.title", "l.kind", "l.author", "l.publisher",
		"l.language", "l.font_type", "l.year", "l.printed_count", "l.file_path",
	).
		From("directions d").
		Join("subject_directions sd ON sd.direction_id = d.id").
		Join("subjects s ON s.id = sd.subject_id").
		Join("literatures l ON l.subject_id = s.id").
		Where(squirrel.Eq{"d.university_id": universityID}).
		OrderBy("d.id ASC", "s.id ASC", "l.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build export rows query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("universityID", universityID).Msg("Error executing export rows query")
		return nil, fmt.Errorf("error querying export rows: %w", err)
	}
	defer rows.Close()

	exportRows := []*models.ExportRow{}
	for rows.Next() {
		row := &models.ExportRow{}
		err := rows.Scan(
			&row.DirectionID, &row.DirectionNumber, &row.DirectionName, &row.Course, &row.StudentCount,
			&row.SubjectID, &row.SubjectName,
			&row.LiteratureID, &row.LiteratureTitle, &row.Kind, &row.Author, &row.Publisher,
			&row.Language, &row.FontType, &row.Year, &row.PrintedCount, &row.FilePath,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning export row: %w", err)
		}
		exportRows = append(exportRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating export rows: %w", err)
	}
	return exportRows, nil
}
