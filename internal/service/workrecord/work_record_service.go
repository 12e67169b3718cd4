package workrecord

import (
	"context"
	"time"

	"sitelog/internal/http/api"
	"sitelog/internal/lib/access"
	"sitelog/internal/models"
	"sitelog/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=WorkRecordProvider
type WorkRecordProvider interface {
	Create(ctx context.Context, rec *models.WorkRecord) error
	GetByID(ctx context.Context, recordID string) (*models.WorkRecord, error)
	List(ctx context.Context, filter models.RecordFilter) ([]*models.WorkRecord, error)
	Update(ctx context.Context, rec *models.WorkRecord) error
	Delete(ctx context.Context, recordID string) error
}

type CreateInput struct {
	WorkerID   string
	WorkerName string
	SiteName   string
	WorkDate   models.Date
	WorkHours  float64
	Notes      *string
	TeamID     string
}

// UpdateInput carries a partial update; nil fields keep their stored value.
type UpdateInput struct {
	WorkerID   *string
	WorkerName *string
	SiteName   *string
	WorkHours  *float64
	Notes      *string
}

type WorkRecordService struct {
	trm      service.TransactionManager
	provider WorkRecordProvider
}

func NewWorkRecordService(trm service.TransactionManager, provider WorkRecordProvider) *WorkRecordService {
	return &WorkRecordService{
		trm:      trm,
		provider: provider,
	}
}

func (s *WorkRecordService) List(
	ctx context.Context,
	actor access.Actor,
	requestedTeamID string,
	workDate *models.Date,
) ([]api.WorkRecordSchema, error) {
	scope, err := access.ReadScope(actor, requestedTeamID)
	if err != nil {
		return nil, err
	}
	if scope.Empty {
		return []api.WorkRecordSchema{}, nil
	}

	records, err := s.provider.List(ctx, models.RecordFilter{
		TeamID:   scope.TeamFilter(),
		WorkDate: workDate,
	})
	if err != nil {
		return nil, err
	}

	resp := make([]api.WorkRecordSchema, 0, len(records))
	for _, rec := range records {
		resp = append(resp, api.NewWorkRecordSchema(rec))
	}

	return resp, nil
}

func (s *WorkRecordService) Create(ctx context.Context, actor access.Actor, in CreateInput) (*api.WorkRecordSchema, error) {
	teamID, err := access.ResolveWriteTeam(actor, in.TeamID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := &models.WorkRecord{
		ID:         uuid.NewString(),
		WorkerID:   in.WorkerID,
		WorkerName: in.WorkerName,
		SiteName:   in.SiteName,
		WorkDate:   in.WorkDate,
		WorkHours:  in.WorkHours,
		Notes:      in.Notes,
		TeamID:     teamID,
		CreatedBy:  actor.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.provider.Create(ctx, rec); err != nil {
		return nil, err
	}

	resp := api.NewWorkRecordSchema(rec)
	return &resp, nil
}

func (s *WorkRecordService) Get(ctx context.Context, actor access.Actor, recordID string) (*api.WorkRecordSchema, error) {
	rec, err := s.provider.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if err := access.CheckOwnership(actor, rec.TeamID); err != nil {
		return nil, err
	}

	resp := api.NewWorkRecordSchema(rec)
	return &resp, nil
}

// Update merges the non-nil fields of in into the stored record. Team, date
// and authorship never change.
func (s *WorkRecordService) Update(
	ctx context.Context,
	actor access.Actor,
	recordID string,
	in UpdateInput,
) (*api.WorkRecordSchema, error) {
	var resp api.WorkRecordSchema

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		rec, err := s.provider.GetByID(ctx, recordID)
		if err != nil {
			return err
		}

		if err := access.CheckOwnership(actor, rec.TeamID); err != nil {
			return err
		}

		applyUpdate(rec, in)
		rec.UpdatedAt = time.Now().UTC()

		if err := s.provider.Update(ctx, rec); err != nil {
			return err
		}

		resp = api.NewWorkRecordSchema(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *WorkRecordService) Delete(ctx context.Context, actor access.Actor, recordID string) error {
	return s.trm.Do(ctx, func(ctx context.Context) error {
		rec, err := s.provider.GetByID(ctx, recordID)
		if err != nil {
			return err
		}

		if err := access.CheckOwnership(actor, rec.TeamID); err != nil {
			return err
		}

		return s.provider.Delete(ctx, recordID)
	})
}

func applyUpdate(rec *models.WorkRecord, in UpdateInput) {
	if in.WorkerID != nil {
		rec.WorkerID = *in.WorkerID
	}
	if in.WorkerName != nil {
		rec.WorkerName = *in.WorkerName
	}
	if in.SiteName != nil {
		rec.SiteName = *in.SiteName
	}
	if in.WorkHours != nil {
		rec.WorkHours = *in.WorkHours
	}
	if in.Notes != nil {
		rec.Notes = in.Notes
	}
}
