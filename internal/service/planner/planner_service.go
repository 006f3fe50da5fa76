package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rangeland-tools/grazeplan/internal/domain/models"
	"github.com/rangeland-tools/grazeplan/internal/grazing"
	"github.com/rangeland-tools/grazeplan/internal/repository/mongodb"
	"github.com/rangeland-tools/grazeplan/internal/repository/sheets"
)

// ErrWrongFarm indicates the paddock or herd belongs to a different farm than
// the one addressed by the request.
var ErrWrongFarm = errors.New("paddock or herd does not belong to farm")

const (
	planLogRange = "GrazingPlans!A:J"
	dateLayout   = "2006-01-02"
)

// Service computes grazing recommendations against stored farms and keeps the
// plan history.
type Service struct {
	store   mongodb.Repository
	planLog sheets.Repository
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires a new planner service instance. planLog may be nil when the
// spreadsheet exporter is not configured.
func NewService(store mongodb.Repository, planLog sheets.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:   store,
		planLog: planLog,
		logger:  logger,
		now:     time.Now,
	}
}

// GeneratePlan loads the addressed paddock and herd, classifies the farm's
// climate, computes a recommendation for the current season, and records it.
func (s *Service) GeneratePlan(ctx context.Context, farmID string, req models.StoredPlanRequest) (models.PlanRecord, error) {
	farm, err := s.store.GetFarm(ctx, farmID)
	if err != nil {
		return models.PlanRecord{}, err
	}

	paddock, err := s.store.GetPaddock(ctx, req.PaddockID)
	if err != nil {
		return models.PlanRecord{}, err
	}
	herd, err := s.store.GetHerd(ctx, req.HerdID)
	if err != nil {
		return models.PlanRecord{}, err
	}
	if paddock.FarmID != farm.ID || herd.FarmID != farm.ID {
		return models.PlanRecord{}, ErrWrongFarm
	}

	climate := climateForFarm(farm)
	season := grazing.SeasonAt(s.now())

	plan := grazing.ComputeGrazingPlan(herd.Herd, paddock.Pasture, paddock.Acres, climate, season)

	record, err := s.store.SavePlanRecord(ctx, models.PlanRecord{
		FarmID:    farm.ID,
		PaddockID: paddock.ID,
		HerdID:    herd.ID,
		Climate:   climate,
		Season:    season,
		Plan:      plan,
	})
	if err != nil {
		return models.PlanRecord{}, err
	}

	s.exportPlanRow(ctx, farm, paddock, herd, record)

	s.logger.Info("grazing plan generated",
		zap.String("farm_id", farm.ID),
		zap.String("paddock_id", paddock.ID),
		zap.Float64("recommended_days", plan.RecommendedDays))

	return record, nil
}

// History returns the farm's most recent plan records.
func (s *Service) History(ctx context.Context, farmID string, limit int64) ([]models.PlanRecord, error) {
	if _, err := s.store.GetFarm(ctx, farmID); err != nil {
		return nil, err
	}
	return s.store.ListPlanRecords(ctx, farmID, limit)
}

// ReviewRotations recomputes a plan for every stored paddock against its
// farm's first herd and returns a human-readable rotation summary. Farms
// without herds or paddocks are skipped.
func (s *Service) ReviewRotations(ctx context.Context) (string, error) {
	farms, err := s.store.ListFarms(ctx)
	if err != nil {
		return "", fmt.Errorf("load farms: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Rotation review %s\n", s.now().Format(dateLayout))

	reviewed := 0
	for _, farm := range farms {
		herds, err := s.store.ListHerds(ctx, farm.ID)
		if err != nil {
			s.logger.Warn("skipping farm, herds unavailable", zap.String("farm_id", farm.ID), zap.Error(err))
			continue
		}
		paddocks, err := s.store.ListPaddocks(ctx, farm.ID)
		if err != nil {
			s.logger.Warn("skipping farm, paddocks unavailable", zap.String("farm_id", farm.ID), zap.Error(err))
			continue
		}
		if len(herds) == 0 || len(paddocks) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n%s:\n", farm.Name)
		for _, paddock := range paddocks {
			record, err := s.GeneratePlan(ctx, farm.ID, models.StoredPlanRequest{
				PaddockID: paddock.ID,
				HerdID:    herds[0].ID,
			})
			if err != nil {
				s.logger.Warn("rotation review plan failed",
					zap.String("farm_id", farm.ID),
					zap.String("paddock_id", paddock.ID),
					zap.Error(err))
				continue
			}
			fmt.Fprintf(&b, "- %s: graze %.1f days, rest %d days\n",
				paddock.Name, record.Plan.RecommendedDays, record.Plan.Metrics.RestPeriodDays)
			reviewed++
		}
	}

	if reviewed == 0 {
		return "", nil
	}
	return b.String(), nil
}

// exportPlanRow appends the plan to the spreadsheet log. Export failures are
// logged and swallowed; the stored record is the source of truth.
func (s *Service) exportPlanRow(ctx context.Context, farm models.Farm, paddock models.Paddock, herd models.Herd, record models.PlanRecord) {
	if s.planLog == nil {
		return
	}

	row := []interface{}{
		record.CreatedAt.Format(dateLayout),
		farm.Name,
		paddock.Name,
		herd.Name,
		string(record.Climate),
		string(record.Season),
		record.Plan.RecommendedDays,
		record.Plan.Metrics.RestPeriodDays,
		record.Plan.Metrics.DailyDmRequiredLbs,
		record.Plan.Metrics.UtilizableDmLbs,
	}

	if err := s.planLog.WriteRow(ctx, planLogRange, row); err != nil {
		s.logger.Warn("failed exporting plan row", zap.String("farm_id", farm.ID), zap.Error(err))
	}
}

// climateForFarm prefers the free-text region over the zip code; a farm with
// neither is treated as temperate.
func climateForFarm(farm models.Farm) models.ClimateLabel {
	if farm.Region != "" {
		return grazing.ClimateFromRegion(farm.Region)
	}
	if farm.Zip != "" {
		return grazing.ClimateFromZip(farm.Zip)
	}
	return models.ClimateTemperate
}
