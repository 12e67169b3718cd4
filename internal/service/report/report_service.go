package report

import (
	"context"

	"sitelog/internal/http/api"
	"sitelog/internal/lib/access"
	"sitelog/internal/models"
	"sitelog/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ReportProvider
type ReportProvider interface {
	SiteHours(ctx context.Context, from, to models.Date, teamID *string) ([]*models.SiteHours, error)
	EquipmentTotals(ctx context.Context, from, to models.Date, teamID *string) ([]*models.EquipmentTotal, error)
}

type ReportService struct {
	reportProvider ReportProvider
	trm            service.TransactionManager
}

func NewReportService(trm service.TransactionManager, reportProvider ReportProvider) *ReportService {
	return &ReportService{
		trm:            trm,
		reportProvider: reportProvider,
	}
}

// Monthly aggregates work hours per site and equipment per type for the month
// given as YYYY-MM. Visibility follows the same rules as record listing.
func (s *ReportService) Monthly(
	ctx context.Context,
	actor access.Actor,
	month string,
	requestedTeamID string,
) (*api.MonthlyReportResponse, error) {
	from, to, err := models.MonthRange(month)
	if err != nil {
		return nil, err
	}

	scope, err := access.ReadScope(actor, requestedTeamID)
	if err != nil {
		return nil, err
	}

	resp := &api.MonthlyReportResponse{
		Month:     month,
		TeamID:    scope.TeamFilter(),
		Sites:     []api.SiteHoursSchema{},
		Equipment: []api.EquipmentTotalSchema{},
	}
	if scope.Empty {
		return resp, nil
	}

	err = s.trm.Do(ctx, func(ctx context.Context) error {
		sites, err := s.reportProvider.SiteHours(ctx, from, to, scope.TeamFilter())
		if err != nil {
			return err
		}
		totals, err := s.reportProvider.EquipmentTotals(ctx, from, to, scope.TeamFilter())
		if err != nil {
			return err
		}

		for _, site := range sites {
			resp.Sites = append(resp.Sites, api.SiteHoursSchema(*site))
		}
		for _, total := range totals {
			resp.Equipment = append(resp.Equipment, api.EquipmentTotalSchema(*total))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
