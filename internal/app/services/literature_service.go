package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"strings"

	appauth "github.com/bekzod/unilib/internal/app/auth"
	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/repositories"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
	"github.com/bekzod/unilib/internal/pkg/filestorage"
)

const literatureUploadDir = "literatures"

// LiteratureService defines the interface for literature operations
type LiteratureService interface {
	Create(ctx context.Context, actor appauth.Actor, req *dto.CreateLiteratureRequest, file, image *multipart.FileHeader) (int64, error)
	GetByID(ctx context.Context, id int64) (*dto.LiteratureResponse, error)
	GetAll(ctx context.Context, universityID, subjectID *int64) ([]*dto.LiteratureResponse, error)
	Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateLiteratureRequest, file, image *multipart.FileHeader) (*dto.LiteratureResponse, error)
	Delete(ctx context.Context, actor appauth.Actor, id int64) error
	FilePath(ctx context.Context, actor appauth.Actor, id int64) (string, error)
}

type literatureServiceImpl struct {
	literatureRepo *repositories.LiteratureRepository
	subjectRepo    *repositories.SubjectRepository
	storage        filestorage.FileStorage
	copyRatio      int
}

// NewLiteratureService creates a new literature service instance
func NewLiteratureService(
	literatureRepo *repositories.LiteratureRepository,
	subjectRepo *repositories.SubjectRepository,
	storage filestorage.FileStorage,
	copyRatio int,
) LiteratureService {
	return &literatureServiceImpl{
		literatureRepo: literatureRepo,
		subjectRepo:    subjectRepo,
		storage:        storage,
		copyRatio:      copyRatio,
	}
}

func validateLiteratureEnums(l *models.Literature) error {
	if !l.Language.IsValid() {
		return fmt.Errorf("%w: unknown language %q", apperrors.ErrValidationFailed, l.Language)
	}
	if !l.FontType.IsValid() {
		return fmt.Errorf("%w: unknown font type %q", apperrors.ErrValidationFailed, l.FontType)
	}
	if !l.Condition.IsValid() {
		return fmt.Errorf("%w: unknown condition %q", apperrors.ErrValidationFailed, l.Condition)
	}
	if !l.UsageStatus.IsValid() {
		return fmt.Errorf("%w: unknown usage status %q", apperrors.ErrValidationFailed, l.UsageStatus)
	}
	return nil
}

// Create stores the uploaded file and image, then inserts the record.
// The subject decides which university the record belongs to; a
// superadmin may only attach literature to subjects of its own
// university.
func (s *literatureServiceImpl) Create(ctx context.Context, actor appauth.Actor, req *dto.CreateLiteratureRequest, file, image *multipart.FileHeader) (int64, error) {
	subject, err := s.subjectRepo.GetByID(ctx, req.SubjectID)
	if err != nil {
		return 0, err
	}
	if err := appauth.CanAccessUniversity(actor, subject.UniversityID); err != nil {
		return 0, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return 0, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	l := &models.Literature{
		Title:        req.Title,
		Kind:         req.Kind,
		Author:       req.Author,
		Publisher:    req.Publisher,
		Language:     models.Language(req.Language),
		FontType:     models.FontType(req.FontType),
		Year:         req.Year,
		PrintedCount: req.PrintedCount,
		Condition:    models.Condition(req.Condition),
		UsageStatus:  models.UsageStatus(req.UsageStatus),
		SubjectID:    subject.ID,
		UniversityID: subject.UniversityID,
	}
	if err := validateLiteratureEnums(l); err != nil {
		return 0, err
	}

	if file != nil {
		path, err := s.storage.SaveFileWithPath(file, literatureUploadDir)
		if err != nil {
			return 0, err
		}
		l.FilePath = &path
	}
	if image != nil {
		path, err := s.storage.SaveFileWithPath(image, literatureUploadDir)
		if err != nil {
			return 0, err
		}
		l.Image = &path
	}

	return s.literatureRepo.Create(ctx, l)
}

func (s *literatureServiceImpl) toResponse(ctx context.Context, l *models.Literature) (*dto.LiteratureResponse, error) {
	students, err := s.literatureRepo.SubjectStudents(ctx, l.SubjectID)
	if err != nil {
		return nil, err
	}

	printed := 0
	if l.PrintedCount != nil {
		printed = *l.PrintedCount
	}
	return &dto.LiteratureResponse{
		Literature:   *l,
		Availability: Availability(printed, l.HasFile(), students, s.copyRatio),
	}, nil
}

// GetByID retrieves a literature record with its availability.
func (s *literatureServiceImpl) GetByID(ctx context.Context, id int64) (*dto.LiteratureResponse, error) {
	l, err := s.literatureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, l)
}

// GetAll retrieves literature records with availability, optionally
// filtered by university and/or subject.
func (s *literatureServiceImpl) GetAll(ctx context.Context, universityID, subjectID *int64) ([]*dto.LiteratureResponse, error) {
	items, err := s.literatureRepo.GetAll(ctx, universityID, subjectID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.LiteratureResponse, 0, len(items))
	for _, l := range items {
		resp, err := s.toResponse(ctx, l)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Update applies a partial update. A new upload replaces the stored
// file; the old one is removed after the record persists.
func (s *literatureServiceImpl) Update(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateLiteratureRequest, file, image *multipart.FileHeader) (*dto.LiteratureResponse, error) {
	existing, err := s.literatureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := appauth.CanAccessUniversity(actor, existing.UniversityID); err != nil {
		return nil, err
	}

	oldFile := existing.FilePath
	oldImage := existing.Image

	req.Apply(existing)
	if err := validateLiteratureEnums(existing); err != nil {
		return nil, err
	}

	if req.SubjectID != nil {
		subject, err := s.subjectRepo.GetByID(ctx, existing.SubjectID)
		if err != nil {
			return nil, err
		}
		if subject.UniversityID != existing.UniversityID {
			return nil, apperrors.ErrSubjectNotFound
		}
	}

	if file != nil {
		path, err := s.storage.SaveFileWithPath(file, literatureUploadDir)
		if err != nil {
			return nil, err
		}
		existing.FilePath = &path
	}
	if image != nil {
		path, err := s.storage.SaveFileWithPath(image, literatureUploadDir)
		if err != nil {
			return nil, err
		}
		existing.Image = &path
	}

	if err := s.literatureRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if file != nil && oldFile != nil {
		_ = s.storage.DeleteFile(*oldFile)
	}
	if image != nil && oldImage != nil {
		_ = s.storage.DeleteFile(*oldImage)
	}

	return s.toResponse(ctx, existing)
}

// Delete removes a literature record and its stored files.
func (s *literatureServiceImpl) Delete(ctx context.Context, actor appauth.Actor, id int64) error {
	existing, err := s.literatureRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := appauth.CanAccessUniversity(actor, existing.UniversityID); err != nil {
		return err
	}

	if err := s.literatureRepo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.FilePath != nil {
		_ = s.storage.DeleteFile(*existing.FilePath)
	}
	if existing.Image != nil {
		_ = s.storage.DeleteFile(*existing.Image)
	}
	return nil
}

// FilePath resolves the on-disk path of a stored literature file for
// download. Missing record, missing file reference and missing file on
// disk all report not-found.
func (s *literatureServiceImpl) FilePath(ctx context.Context, actor appauth.Actor, id int64) (string, error) {
	existing, err := s.literatureRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := appauth.CanAccessUniversity(actor, existing.UniversityID); err != nil {
		return "", err
	}

	if existing.FilePath == nil || *existing.FilePath == "" {
		return "", apperrors.ErrFileNotFound
	}

	fullPath := s.storage.GetFullPath(*existing.FilePath)
	if fullPath == "" {
		return "", apperrors.ErrFileNotFound
	}
	if _, err := os.Stat(fullPath); err != nil {
		return "", apperrors.ErrFileNotFound
	}
	return fullPath, nil
}
