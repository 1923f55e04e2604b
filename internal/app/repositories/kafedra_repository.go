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

// KafedraRepository handles kafedra database operations
type KafedraRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewKafedraRepository creates a new KafedraRepository
func NewKafedraRepository(db *pgxpool.Pool) *KafedraRepository {
	return &KafedraRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new kafedra and returns its id.
func (r *KafedraRepository) Create(ctx context.Context, k *models.Kafedra) (int64, error) {
	sql, args, err := r.sb.Insert("kafedras").
		Columns("name", "university_id").
		Values(k.Name, k.UniversityID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create kafedra query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.NewDuplicateError("kafedra with this name already exists")
		}
		logger.Error().Err(err).Msg("Error executing create kafedra query")
		return 0, fmt.Errorf("error creating kafedra: %w", err)
	}
	return id, nil
}

// GetByID retrieves a kafedra by id.
func (r *KafedraRepository) GetByID(ctx context.Context, id int64) (*models.Kafedra, error) {
	sql, args, err := r.sb.Select("id", "name", "university_id").
		From("kafedras").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get kafedra query: %w", err)
	}

	k := &models.Kafedra{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&k.ID, &k.Name, &k.UniversityID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrKafedraNotFound
		}
		logger.Error().Err(err).Int64("kafedraID", id).Msg("Error scanning kafedra row")
		return nil, fmt.Errorf("error getting kafedra by ID: %w", err)
	}
	return k, nil
}

// GetAll retrieves kafedras, optionally filtered to one university.
func (r *KafedraRepository) GetAll(ctx context.Context, universityID *int64) ([]*models.Kafedra, error) {
	q := r.sb.Select("id", "name", "university_id").
		From("kafedras").
		OrderBy("id ASC")
	if universityID != nil {
		q = q.Where(squirrel.Eq{"university_id": *universityID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list kafedras query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list kafedras query")
		return nil, fmt.Errorf("error querying kafedras: %w", err)
	}
	defer rows.Close()

	kafedras := []*models.Kafedra{}
	for rows.Next() {
		k := &models.Kafedra{}
		if err := rows.Scan(&k.ID, &k.Name, &k.UniversityID); err != nil {
			return nil, fmt.Errorf("error scanning kafedra row: %w", err)
		}
		kafedras = append(kafedras, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating kafedra rows: %w", err)
	}
	return kafedras, nil
}

// ExistsInUniversity checks that the kafedra belongs to the given
// university. Used before attaching subjects.
func (r *KafedraRepository) ExistsInUniversity(ctx context.Context, id, universityID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("kafedras").
		Where(squirrel.Eq{"id": id, "university_id": universityID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build kafedra existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("kafedraID", id).Msg("Error checking kafedra existence")
		return false, fmt.Errorf("error checking kafedra existence: %w", err)
	}
	return exists, nil
}

// Update persists the full kafedra record.
func (r *KafedraRepository) Update(ctx context.Context, k *models.Kafedra) error {
	sql, args, err := r.sb.Update("kafedras").
		Set("name", k.Name).
		Where(squirrel.Eq{"id": k.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update kafedra query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.NewDuplicateError("kafedra with this name already exists")
		}
		logger.Error().Err(err).Int64("kafedraID", k.ID).Msg("Error executing update kafedra query")
		return fmt.Errorf("error updating kafedra: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrKafedraNotFound
	}
	return nil
}

// Delete removes a kafedra.
func (r *KafedraRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("kafedras").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete kafedra query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("kafedraID", id).Msg("Error executing delete kafedra query")
		return fmt.Errorf("error deleting kafedra: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrKafedraNotFound
	}
	return nil
}
