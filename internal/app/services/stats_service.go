package services

import (
	"context"
	"math"

	appauth "github.com/bekzod/unilib/internal/app/auth"
	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/repositories"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
	"github.com/bekzod/unilib/internal/pkg/xlsxreport"
)

// StatsService defines the interface for the statistics endpoints
type StatsService interface {
	General(ctx context.Context, actor appauth.Actor) (*dto.GeneralStatsResponse, error)
	OwnerUniversities(ctx context.Context, actor appauth.Actor) ([]*dto.UniversityStatsResponse, error)
	Export(ctx context.Context, actor appauth.Actor) ([]byte, error)
}

type statsServiceImpl struct {
	statsRepo *repositories.StatsRepository
	copyRatio int
}

// NewStatsService creates a new stats service instance
func NewStatsService(statsRepo *repositories.StatsRepository, copyRatio int) StatsService {
	return &statsServiceImpl{
		statsRepo: statsRepo,
		copyRatio: copyRatio,
	}
}

// readScope resolves which universities the actor may aggregate over:
// owners see everything, superadmins only their own university.
func readScope(actor appauth.Actor) (*int64, error) {
	switch actor.Role {
	case models.RoleOwner:
		return nil, nil
	case models.RoleSuperAdmin:
		if actor.UniversityID == nil {
			return nil, apperrors.ErrMissingScope
		}
		return actor.UniversityID, nil
	default:
		return nil, apperrors.ErrPermissionDenied
	}
}

// General returns the scope-wide totals.
func (s *statsServiceImpl) General(ctx context.Context, actor appauth.Actor) (*dto.GeneralStatsResponse, error) {
	scope, err := readScope(actor)
	if err != nil {
		return nil, err
	}

	universities, err := s.statsRepo.CountUniversities(ctx, scope)
	if err != nil {
		return nil, err
	}
	students, err := s.statsRepo.CountStudents(ctx, scope)
	if err != nil {
		return nil, err
	}
	directions, err := s.statsRepo.CountDirections(ctx, scope)
	if err != nil {
		return nil, err
	}

	return &dto.GeneralStatsResponse{
		Universities: universities,
		Students:     students,
		Directions:   directions,
	}, nil
}

// percentAccessible estimates how much of the student body the
// literature fund can serve: each stored title is assumed to rotate
// between copyRatio students. Zero students means zero percent, the
// result is capped at 100 and rounded to two decimals.
func percentAccessible(literatures, students int64, copyRatio int) float64 {
	if students == 0 {
		return 0
	}
	pct := float64(literatures) * float64(copyRatio) * 100 / float64(students)
	if pct > 100 {
		pct = 100
	}
	return math.Round(pct*100) / 100
}

// OwnerUniversities returns per-university aggregates in scope.
func (s *statsServiceImpl) OwnerUniversities(ctx context.Context, actor appauth.Actor) ([]*dto.UniversityStatsResponse, error) {
	scope, err := readScope(actor)
	if err != nil {
		return nil, err
	}

	totals, err := s.statsRepo.UniversityTotals(ctx, scope)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.UniversityStatsResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, &dto.UniversityStatsResponse{
			UniversityID:      t.UniversityID,
			UniversityName:    t.UniversityName,
			Students:          t.Students,
			Directions:        t.Directions,
			Subjects:          t.Subjects,
			Literatures:       t.Literatures,
			PercentAccessible: percentAccessible(t.Literatures, t.Students, s.copyRatio),
		})
	}
	return out, nil
}

// Export renders the availability workbook: one sheet per university
// in scope, one row per (direction, subject, literature).
func (s *statsServiceImpl) Export(ctx context.Context, actor appauth.Actor) ([]byte, error) {
	scope, err := readScope(actor)
	if err != nil {
		return nil, err
	}

	totals, err := s.statsRepo.UniversityTotals(ctx, scope)
	if err != nil {
		return nil, err
	}

	sheets := make([]xlsxreport.Sheet, 0, len(totals))
	for _, t := range totals {
		rows, err := s.statsRepo.ExportRows(ctx, t.UniversityID)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, xlsxreport.Sheet{
			Name: t.UniversityName,
			Rows: s.toReportRows(rows),
		})
	}

	return xlsxreport.BuildBytes(sheets)
}

func (s *statsServiceImpl) toReportRows(rows []*models.ExportRow) []xlsxreport.Row {
	out := make([]xlsxreport.Row, 0, len(rows))
	for _, r := range rows {
		author := ""
		if r.Author != nil {
			author = *r.Author
		}
		publisher := ""
		if r.Publisher != nil {
			publisher = *r.Publisher
		}
		printed := 0
		if r.PrintedCount != nil {
			printed = *r.PrintedCount
		}
		hasFile := r.FilePath != nil && *r.FilePath != ""

		out = append(out, xlsxreport.Row{
			DirectionNumber: r.DirectionNumber,
			DirectionName:   r.DirectionName,
			Course:          r.Course,
			StudentCount:    r.StudentCount,
			SubjectName:     r.SubjectName,
			LiteratureTitle: r.LiteratureTitle,
			Kind:            r.Kind,
			Author:          author,
			Publisher:       publisher,
			Language:        string(r.Language),
			FontType:        string(r.FontType),
			Year:            r.Year,
			PrintedCount:    printed,
			Electron:        hasFile,
			Availability:    Availability(printed, hasFile, r.StudentCount, s.copyRatio),
		})
	}
	return out
}
