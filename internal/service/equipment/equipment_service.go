package equipment

import (
	"context"
	"strings"
	"time"

	"sitelog/internal/http/api"
	"sitelog/internal/lib/access"
	"sitelog/internal/models"
	"sitelog/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EquipmentRecordProvider
type EquipmentRecordProvider interface {
	Accumulate(ctx context.Context, rec *models.EquipmentRecord) (*models.EquipmentRecord, error)
	GetByID(ctx context.Context, recordID string) (*models.EquipmentRecord, error)
	List(ctx context.Context, filter models.RecordFilter) ([]*models.EquipmentRecord, error)
	Update(ctx context.Context, rec *models.EquipmentRecord) error
	Delete(ctx context.Context, recordID string) error
}

// MergeCounter counts creates that were folded into an existing record.
type MergeCounter interface {
	Inc()
}

type CreateInput struct {
	WorkDate      models.Date
	EquipmentType string
	Quantity      int
	TeamID        string
}

// UpdateInput carries a partial update; nil fields keep their stored value.
type UpdateInput struct {
	WorkDate      *models.Date
	EquipmentType *string
	Quantity      *int
}

type EquipmentService struct {
	trm      service.TransactionManager
	provider EquipmentRecordProvider
	merges   MergeCounter
}

func NewEquipmentService(trm service.TransactionManager, provider EquipmentRecordProvider, merges MergeCounter) *EquipmentService {
	return &EquipmentService{
		trm:      trm,
		provider: provider,
		merges:   merges,
	}
}

func (s *EquipmentService) List(
	ctx context.Context,
	actor access.Actor,
	requestedTeamID string,
	workDate *models.Date,
) ([]api.EquipmentRecordSchema, error) {
	scope, err := access.ReadScope(actor, requestedTeamID)
	if err != nil {
		return nil, err
	}
	if scope.Empty {
		return []api.EquipmentRecordSchema{}, nil
	}

	records, err := s.provider.List(ctx, models.RecordFilter{
		TeamID:   scope.TeamFilter(),
		WorkDate: workDate,
	})
	if err != nil {
		return nil, err
	}

	resp := make([]api.EquipmentRecordSchema, 0, len(records))
	for _, rec := range records {
		resp = append(resp, api.NewEquipmentRecordSchema(rec))
	}

	return resp, nil
}

// Create records equipment usage. When a record for the same date, type and
// team exists the quantity is added to it and created is false.
func (s *EquipmentService) Create(
	ctx context.Context,
	actor access.Actor,
	in CreateInput,
) (resp *api.EquipmentRecordSchema, created bool, err error) {
	teamID, err := access.ResolveWriteTeam(actor, in.TeamID)
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	rec := &models.EquipmentRecord{
		ID:            uuid.NewString(),
		WorkDate:      in.WorkDate,
		EquipmentType: strings.TrimSpace(in.EquipmentType),
		Quantity:      in.Quantity,
		TeamID:        teamID,
		CreatedBy:     actor.Email,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	stored, err := s.provider.Accumulate(ctx, rec)
	if err != nil {
		return nil, false, err
	}

	created = stored.ID == rec.ID
	if !created && s.merges != nil {
		s.merges.Inc()
	}

	schema := api.NewEquipmentRecordSchema(stored)
	return &schema, created, nil
}

func (s *EquipmentService) Get(ctx context.Context, actor access.Actor, recordID string) (*api.EquipmentRecordSchema, error) {
	rec, err := s.provider.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if err := access.CheckOwnership(actor, rec.TeamID); err != nil {
		return nil, err
	}

	resp := api.NewEquipmentRecordSchema(rec)
	return &resp, nil
}

func (s *EquipmentService) Update(
	ctx context.Context,
	actor access.Actor,
	recordID string,
	in UpdateInput,
) (*api.EquipmentRecordSchema, error) {
	var resp api.EquipmentRecordSchema

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		rec, err := s.provider.GetByID(ctx, recordID)
		if err != nil {
			return err
		}

		if err := access.CheckOwnership(actor, rec.TeamID); err != nil {
			return err
		}

		if in.WorkDate != nil {
			rec.WorkDate = *in.WorkDate
		}
		if in.EquipmentType != nil {
			rec.EquipmentType = strings.TrimSpace(*in.EquipmentType)
		}
		if in.Quantity != nil {
			rec.Quantity = *in.Quantity
		}
		rec.UpdatedAt = time.Now().UTC()

		if err := s.provider.Update(ctx, rec); err != nil {
			return err
		}

		resp = api.NewEquipmentRecordSchema(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *EquipmentService) Delete(ctx context.Context, actor access.Actor, recordID string) error {
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
