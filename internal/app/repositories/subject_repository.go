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

// SubjectRepository handles subject database operations, including the
// subject_directions association table.
type SubjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// subjectSelect aggregates the associated direction ids into an array
// so one query returns the whole record.
func (r *SubjectRepository) subjectSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.id", "s.name", "s.kafedra_id", "s.university_id",
		"COALESCE(array_agg(sd.direction_id ORDER BY sd.direction_id) FILTER (WHERE sd.direction_id IS NOT NULL), '{}')",
	).
		From("subjects s").
		LeftJoin("subject_directions sd ON sd.subject_id = s.id").
		GroupBy("s.id")
}

func scanSubject(row pgx.Row) (*models.Subject, error) {
	s := &models.Subject{}
	if err := row.Scan(&s.ID, &s.Name, &s.KafedraID, &s.UniversityID, &s.DirectionIDs); err != nil {
		return nil, err
	}
	return s, nil
}

// CreateTx inserts a subject and its direction associations inside the
// caller's transaction. The bulk create endpoint wraps several of
// these in one transaction so the batch stays all-or-nothing.
func (r *SubjectRepository) CreateTx(ctx context.Context, tx pgx.Tx, s *models.Subject) (int64, error) {
	sql, args, err := r.sb.Insert("subjects").
		Columns("name", "kafedra_id", "university_id").
		Values(s.Name, s.KafedraID, s.UniversityID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create subject query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrSubjectAlreadyExists
		}
		return 0, fmt.Errorf("error creating subject: %w", err)
	}

	if err := r.insertDirectionsTx(ctx, tx, id, s.DirectionIDs); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SubjectRepository) insertDirectionsTx(ctx context.Context, tx pgx.Tx, subjectID int64, directionIDs []int64) error {
	if len(directionIDs) == 0 {
		return nil
	}

	q := r.sb.Insert("subject_directions").Columns("subject_id", "direction_id")
	for _, directionID := range directionIDs {
		q = q.Values(subjectID, directionID)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build subject directions query: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error linking subject directions: %w", err)
	}
	return nil
}

// GetByID retrieves a subject with its direction ids.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	sql, args, err := r.subjectSelect().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subject query: %w", err)
	}

	s, err := scanSubject(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error scanning subject row")
		return nil, fmt.Errorf("error getting subject by ID: %w", err)
	}
	return s, nil
}

// GetAll retrieves subjects, optionally filtered to one university.
func (r *SubjectRepository) GetAll(ctx context.Context, universityID *int64) ([]*models.Subject, error) {
	q := r.subjectSelect().OrderBy("s.id ASC")
	if universityID != nil {
		q = q.Where(squirrel.Eq{"s.university_id": *universityID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list subjects query")
		return nil, fmt.Errorf("error querying subjects: %w", err)
	}
	defer rows.Close()

	subjects := []*models.Subject{}
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}
	return subjects, nil
}

// Update persists the subject record and replaces its direction set in
// one transaction.
func (r *SubjectRepository) Update(ctx context.Context, s *models.Subject) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin subject update transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sql, args, err := r.sb.Update("subjects").
		SetMap(map[string]interface{}{
			"name":       s.Name,
			"kafedra_id": s.KafedraID,
		}).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update subject query: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrSubjectAlreadyExists
		}
		logger.Error().Err(err).Int64("subjectID", s.ID).Msg("Error executing update subject query")
		return fmt.Errorf("error updating subject: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	delSql, delArgs, err := r.sb.Delete("subject_directions").
		Where(squirrel.Eq{"subject_id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build clear subject directions query: %w", err)
	}
	if _, err := tx.Exec(ctx, delSql, delArgs...); err != nil {
		return fmt.Errorf("error clearing subject directions: %w", err)
	}
	if err := r.insertDirectionsTx(ctx, tx, s.ID, s.DirectionIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit subject update: %w", err)
	}
	return nil
}

// Delete removes a subject. Literature and association rows follow via
// the schema cascades.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("subjects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete subject query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error executing delete subject query")
		return fmt.Errorf("error deleting subject: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}
