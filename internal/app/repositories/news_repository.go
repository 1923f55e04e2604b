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

// NewsRepository handles news and tag database operations
type NewsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var newsColumns = []string{"id", "title", "description", "image", "date", "university_id"}

func scanNews(row pgx.Row) (*models.News, error) {
	n := &models.News{}
	if err := row.Scan(&n.ID, &n.Title, &n.Description, &n.Image, &n.Date, &n.UniversityID); err != nil {
		return nil, err
	}
	return n, nil
}

// Create inserts a news record with its tag associations in one
// transaction and returns its id. Tag ids must already exist.
func (r *NewsRepository) Create(ctx context.Context, n *models.News, tagIDs []int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin create news transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sql, args, err := r.sb.Insert("news").
		Columns("title", "description", "image", "date", "university_id").
		Values(n.Title, n.Description, n.Image, n.Date, n.UniversityID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create news query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create news query")
		return 0, fmt.Errorf("error creating news: %w", err)
	}

	if err := r.replaceTagsTx(ctx, tx, id, tagIDs, false); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit create news: %w", err)
	}
	return id, nil
}

func (r *NewsRepository) replaceTagsTx(ctx context.Context, tx pgx.Tx, newsID int64, tagIDs []int64, clear bool) error {
	if clear {
		delSql, delArgs, err := r.sb.Delete("news_tags").
			Where(squirrel.Eq{"news_id": newsID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build clear news tags query: %w", err)
		}
		if _, err := tx.Exec(ctx, delSql, delArgs...); err != nil {
			return fmt.Errorf("error clearing news tags: %w", err)
		}
	}

	if len(tagIDs) == 0 {
		return nil
	}

	q := r.sb.Insert("news_tags").Columns("news_id", "tag_id")
	for _, tagID := range tagIDs {
		q = q.Values(newsID, tagID)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build news tags query: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error linking news tags: %w", err)
	}
	return nil
}

// GetByID retrieves a news record with its tags.
func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	sql, args, err := r.sb.Select(newsColumns...).
		From("news").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get news query: %w", err)
	}

	n, err := scanNews(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNewsNotFound
		}
		logger.Error().Err(err).Int64("newsID", id).Msg("Error scanning news row")
		return nil, fmt.Errorf("error getting news by ID: %w", err)
	}

	tags, err := r.getTags(ctx, n.ID)
	if err != nil {
		return nil, err
	}
	n.Tags = tags
	return n, nil
}

// GetAll retrieves news ordered by publish date descending, optionally
// filtered to a university and/or a normalized tag name.
func (r *NewsRepository) GetAll(ctx context.Context, universityID *int64, tag string) ([]*models.News, error) {
	q := r.sb.Select("n.id", "n.title", "n.description", "n.image", "n.date", "n.university_id").
		From("news n").
		OrderBy("n.date DESC", "n.id DESC")
	if universityID != nil {
		q = q.Where(squirrel.Eq{"n.university_id": *universityID})
	}
	if tag != "" {
		q = q.Join("news_tags nt ON nt.news_id = n.id").
			Join("tags t ON t.id = nt.tag_id").
			Where(squirrel.Eq{"t.name": tag})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list news query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list news query")
		return nil, fmt.Errorf("error querying news: %w", err)
	}
	defer rows.Close()

	items := []*models.News{}
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning news row: %w", err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news rows: %w", err)
	}

	for _, n := range items {
		tags, err := r.getTags(ctx, n.ID)
		if err != nil {
			return nil, err
		}
		n.Tags = tags
	}
	return items, nil
}

func (r *NewsRepository) getTags(ctx context.Context, newsID int64) ([]models.Tag, error) {
	sql, args, err := r.sb.Select("t.id", "t.name").
		From("tags t").
		Join("news_tags nt ON nt.tag_id = t.id").
		Where(squirrel.Eq{"nt.news_id": newsID}).
		OrderBy("t.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build news tags query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying news tags: %w", err)
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("error scanning tag row: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}
	return tags, nil
}

// GetOrCreateTag resolves a normalized tag name to an id, creating the
// tag on first use.
func (r *NewsRepository) GetOrCreateTag(ctx context.Context, name string) (int64, error) {
	sql, args, err := r.sb.Insert("tags").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build upsert tag query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("tag", name).Msg("Error upserting tag")
		return 0, fmt.Errorf("error upserting tag: %w", err)
	}
	return id, nil
}

// Update persists the news record and, when tagIDs is non-nil,
// replaces the tag association set in the same transaction.
func (r *NewsRepository) Update(ctx context.Context, n *models.News, tagIDs []int64, replaceTags bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin update news transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sql, args, err := r.sb.Update("news").
		SetMap(map[string]interface{}{
			"title":       n.Title,
			"description": n.Description,
			"image":       n.Image,
			"date":        n.Date,
		}).
		Where(squirrel.Eq{"id": n.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update news query: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("newsID", n.ID).Msg("Error executing update news query")
		return fmt.Errorf("error updating news: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNewsNotFound
	}

	if replaceTags {
		if err := r.replaceTagsTx(ctx, tx, n.ID, tagIDs, true); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit update news: %w", err)
	}
	return nil
}

// Delete removes a news record; join rows cascade.
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("news").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete news query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("newsID", id).Msg("Error executing delete news query")
		return fmt.Errorf("error deleting news: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNewsNotFound
	}
	return nil
}
