package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	appauth "github.com/bekzod/unilib/internal/app/auth"
	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/repositories"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
	"github.com/bekzod/unilib/internal/pkg/filestorage"
)

const newsUploadDir = "news"

// NewsService defines the interface for news operations
type NewsService interface {
	Create(ctx context.Context, actor appauth.Actor, req *dto.CreateNewsRequest, image *multipart.FileHeader) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.News, error)
	GetAll(ctx context.Context, universityID *int64, tag string) ([]*models.News, error)
	Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateNewsRequest, image *multipart.FileHeader) (*models.News, error)
	Delete(ctx context.Context, actor appauth.Actor, id int64) error
}

type newsServiceImpl struct {
	newsRepo       *repositories.NewsRepository
	universityRepo *repositories.UniversityRepository
	storage        filestorage.FileStorage
}

// NewNewsService creates a new news service instance
func NewNewsService(newsRepo *repositories.NewsRepository, universityRepo *repositories.UniversityRepository, storage filestorage.FileStorage) NewsService {
	return &newsServiceImpl{
		newsRepo:       newsRepo,
		universityRepo: universityRepo,
		storage:        storage,
	}
}

// NormalizeTag lower-cases and trims a tag name. Tags are compared and
// stored in this form only.
func NormalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func normalizeTags(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		n := NormalizeTag(name)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func (s *newsServiceImpl) resolveTagIDs(ctx context.Context, names []string) ([]int64, error) {
	normalized := normalizeTags(names)
	ids := make([]int64, 0, len(normalized))
	for _, name := range normalized {
		id, err := s.newsRepo.GetOrCreateTag(ctx, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Create publishes a news post in the actor's write scope. Tags are
// created on demand by normalized name; the date defaults to today.
func (s *newsServiceImpl) Create(ctx context.Context, actor appauth.Actor, req *dto.CreateNewsRequest, image *multipart.FileHeader) (int64, error) {
	universityID, err := appauth.ResolveWriteScope(actor, req.UniversityID)
	if err != nil {
		return 0, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return 0, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.universityRepo.GetByID(ctx, universityID); err != nil {
		return 0, err
	}

	date := time.Now()
	if req.Date != nil && *req.Date != "" {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return 0, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		date = parsed
	}

	n := &models.News{
		Title:        req.Title,
		Description:  req.Description,
		Date:         date,
		UniversityID: universityID,
	}

	if image != nil {
		path, err := s.storage.SaveFileWithPath(image, newsUploadDir)
		if err != nil {
			return 0, err
		}
		n.Image = &path
	}

	tagIDs, err := s.resolveTagIDs(ctx, req.Tags)
	if err != nil {
		return 0, err
	}

	return s.newsRepo.Create(ctx, n, tagIDs)
}

// GetByID retrieves a news post with its tags. Reads are public.
func (s *newsServiceImpl) GetByID(ctx context.Context, id int64) (*models.News, error) {
	return s.newsRepo.GetByID(ctx, id)
}

// GetAll lists news posts newest first, optionally filtered by
// university and tag.
func (s *newsServiceImpl) GetAll(ctx context.Context, universityID *int64, tag string) ([]*models.News, error) {
	return s.newsRepo.GetAll(ctx, universityID, NormalizeTag(tag))
}

// Update applies a partial update. A provided tag list replaces the
// existing set; an omitted one leaves it alone.
func (s *newsServiceImpl) Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateNewsRequest, image *multipart.FileHeader) (*models.News, error) {
	existing, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := appauth.CanAccessUniversity(actor, existing.UniversityID); err != nil {
		return nil, err
	}

	oldImage := existing.Image
	if err := req.Apply(existing); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}

	if image != nil {
		path, err := s.storage.SaveFileWithPath(image, newsUploadDir)
		if err != nil {
			return nil, err
		}
		existing.Image = &path
	}

	var tagIDs []int64
	replaceTags := req.Tags != nil
	if replaceTags {
		tagIDs, err = s.resolveTagIDs(ctx, *req.Tags)
		if err != nil {
			return nil, err
		}
	}

	if err := s.newsRepo.Update(ctx, existing, tagIDs, replaceTags); err != nil {
		return nil, err
	}

	if image != nil && oldImage != nil {
		_ = s.storage.DeleteFile(*oldImage)
	}

	return s.newsRepo.GetByID(ctx, id)
}

// Delete removes a news post and its stored image.
func (s *newsServiceImpl) Delete(ctx context.Context, actor appauth.Actor, id int64) error {
	existing, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := appauth.CanAccessUniversity(actor, existing.UniversityID); err != nil {
		return err
	}

	if err := s.newsRepo.Delete(ctx, id); err != nil {
		return err
	}
	if existing.Image != nil {
		_ = s.storage.DeleteFile(*existing.Image)
	}
	return nil
}
