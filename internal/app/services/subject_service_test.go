package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	appauth "github.com/bekzod/unilib/internal/app/auth"
	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/pkg/apperrors"
)

func int64Ptr(v int64) *int64 { return &v }

func batchOf(n int) []dto.SubjectItem {
	items := make([]dto.SubjectItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, dto.SubjectItem{
			Name:         fmt.Sprintf("Subject %d", i+1),
			KafedraID:    1,
			DirectionIDs: []int64{1},
		})
	}
	return items
}

// The batch guards run before any repository access, so a service with
// nil dependencies exercises them directly.
func TestBulkCreateBatchGuards(t *testing.T) {
	svc := NewSubjectService(nil, nil, nil, nil, nil)
	owner := appauth.Actor{ID: 1, Role: models.RoleOwner}

	tests := []struct {
		name    string
		actor   appauth.Actor
		req     *dto.BulkCreateSubjectsRequest
		wantErr error
	}{
		{
			name:    "eleven items rejected",
			actor:   owner,
			req:     &dto.BulkCreateSubjectsRequest{Subjects: batchOf(11), UniversityID: int64Ptr(1)},
			wantErr: apperrors.ErrBatchTooLarge,
		},
		{
			name:    "empty batch rejected",
			actor:   owner,
			req:     &dto.BulkCreateSubjectsRequest{Subjects: nil, UniversityID: int64Ptr(1)},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "owner without university rejected",
			actor:   owner,
			req:     &dto.BulkCreateSubjectsRequest{Subjects: batchOf(1)},
			wantErr: apperrors.ErrMissingScope,
		},
		{
			name:    "plain user rejected",
			actor:   appauth.Actor{ID: 2, Role: models.RoleUser},
			req:     &dto.BulkCreateSubjectsRequest{Subjects: batchOf(1), UniversityID: int64Ptr(1)},
			wantErr: apperrors.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.BulkCreate(context.Background(), tt.actor, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("BulkCreate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDedupeIDs(t *testing.T) {
	tests := []struct {
		name string
		in   []int64
		want []int64
	}{
		{name: "no duplicates", in: []int64{1, 2, 3}, want: []int64{1, 2, 3}},
		{name: "duplicates collapsed keeping order", in: []int64{3, 1, 3, 2, 1}, want: []int64{3, 1, 2}},
		{name: "empty", in: nil, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedupeIDs(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dedupeIDs(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
