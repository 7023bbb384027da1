package production

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/machinery"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/production"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/user"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/validator"
	"github.com/fabtrack/shopfloor-backend-go/internal/repository/postgresql"
)

type productionServiceImpl struct {
	db              *database.DB
	logRepo         production.LogRepository
	timingRepo      shift.ShiftTimingRepository
	moldMachineRepo machinery.MoldMachineRepository
	userRepo        user.UserRepository

	// now is swappable so the shift-ended gate can be tested.
	now func() time.Time
}

func NewProductionService(
	db *database.DB,
	logRepo production.LogRepository,
	timingRepo shift.ShiftTimingRepository,
	moldMachineRepo machinery.MoldMachineRepository,
	userRepo user.UserRepository,
) production.ProductionService {
	return &productionServiceImpl{
		db:              db,
		logRepo:         logRepo,
		timingRepo:      timingRepo,
		moldMachineRepo: moldMachineRepo,
		userRepo:        userRepo,
		now:             time.Now,
	}
}

func claimTenant(ctx context.Context) (tenantID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return "", "", fmt.Errorf("tenant_id not found in token")
	}
	userID, _ = claims["user_id"].(string)
	return tenantID, userID, nil
}

// CreateLog implements production.ProductionService. The caller is the
// operator. The future-date gate runs first; the shift timing and
// mold-machine mapping are then resolved under the tenant and the guard
// gates on shift end and the duplicate key. Line items are only persisted
// when efficiency falls below the threshold, deduplicated by downtime and
// defect.
func (s *productionServiceImpl) CreateLog(ctx context.Context, req production.CreateLogRequest) (production.CreateLogResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return production.CreateLogResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return production.CreateLogResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	// The future-date gate precedes every lookup so a future-dated payload
	// never reports a resolution failure instead.
	if production.IsFutureDate(date, s.now()) {
		return production.CreateLogResponse{}, production.ErrFutureDate
	}

	operator, err := s.userRepo.GetByID(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return production.CreateLogResponse{}, production.ErrOperatorNotFound
		}
		return production.CreateLogResponse{}, err
	}
	if !operator.CanRecordProduction() {
		return production.CreateLogResponse{}, production.ErrOperatorNotFound
	}

	timing, err := s.timingRepo.GetByID(ctx, req.ShiftTimingID, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return production.CreateLogResponse{}, production.ErrShiftTimingNotFound
		}
		return production.CreateLogResponse{}, err
	}
	if _, err := s.moldMachineRepo.GetByID(ctx, req.MoldMachineID, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return production.CreateLogResponse{}, production.ErrMoldMachineNotFound
		}
		return production.CreateLogResponse{}, err
	}

	dup, err := s.logRepo.Exists(ctx, tenantID, req.ShiftTimingID, req.MoldMachineID, date)
	if err != nil {
		return production.CreateLogResponse{}, fmt.Errorf("failed to check existing logs: %w", err)
	}

	guard := production.Guard{
		Date:         date,
		Window:       timing.Window,
		Now:          s.now(),
		HasDuplicate: dup,
	}
	if err := guard.Check(); err != nil {
		return production.CreateLogResponse{}, err
	}

	efficiency := production.Efficiency(req.Actual, req.Target)

	resp := production.CreateLogResponse{
		Efficiency:       efficiency,
		DowntimeEntries:  []production.DowntimeEntryResponse{},
		RejectionEntries: []production.RejectionEntryResponse{},
	}
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err := s.logRepo.Create(txCtx, production.Log{
			TenantID:      tenantID,
			OperatorID:    operator.ID,
			ShiftTimingID: req.ShiftTimingID,
			MoldMachineID: req.MoldMachineID,
			Date:          date,
			Actual:        req.Actual,
			Target:        req.Target,
			CreatedBy:     userID,
			UpdatedBy:     userID,
		})
		if err != nil {
			return err
		}
		resp.ProductionLogID = created.ID

		if efficiency >= production.EfficiencyThreshold {
			return nil
		}

		downtimes := dedupeDowntimes(req.DowntimeEntries)
		for i := range downtimes {
			downtimes[i].ProductionLogID = created.ID
			resp.DowntimeEntries = append(resp.DowntimeEntries, production.DowntimeEntryResponse{
				DowntimeID:  downtimes[i].DowntimeID,
				DurationMin: downtimes[i].DurationMin,
			})
		}
		if err := s.logRepo.CreateDowntimeEntries(txCtx, downtimes); err != nil {
			return err
		}

		rejections := dedupeRejections(req.RejectionEntries)
		for i := range rejections {
			rejections[i].ProductionLogID = created.ID
			resp.RejectionEntries = append(resp.RejectionEntries, production.RejectionEntryResponse{
				DefectID: rejections[i].DefectID,
				Quantity: rejections[i].Quantity,
			})
		}
		return s.logRepo.CreateRejectionEntries(txCtx, rejections)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return production.CreateLogResponse{}, production.ErrDuplicateLog
			}
		}
		return production.CreateLogResponse{}, err
	}

	return resp, nil
}

// dedupeDowntimes keeps the first entry per downtime, preserving order.
func dedupeDowntimes(entries []production.DowntimeInput) []production.DowntimeEntry {
	seen := make(map[string]bool, len(entries))
	out := make([]production.DowntimeEntry, 0, len(entries))
	for _, e := range entries {
		if seen[e.DowntimeID] {
			continue
		}
		seen[e.DowntimeID] = true
		out = append(out, production.DowntimeEntry{
			DowntimeID:  e.DowntimeID,
			DurationMin: e.DurationMin,
		})
	}
	return out
}

// dedupeRejections keeps the first entry per defect, preserving order.
func dedupeRejections(entries []production.RejectionInput) []production.RejectionEntry {
	seen := make(map[string]bool, len(entries))
	out := make([]production.RejectionEntry, 0, len(entries))
	for _, e := range entries {
		if seen[e.DefectID] {
			continue
		}
		seen[e.DefectID] = true
		out = append(out, production.RejectionEntry{
			DefectID: e.DefectID,
			Quantity: e.Quantity,
		})
	}
	return out
}

// GetLog implements production.ProductionService.
func (s *productionServiceImpl) GetLog(ctx context.Context, logID string) (production.LogResponse, error) {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return production.LogResponse{}, err
	}

	log, err := s.logRepo.GetByID(ctx, logID, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return production.LogResponse{}, production.ErrLogNotFound
		}
		return production.LogResponse{}, err
	}
	return toLogResponse(log), nil
}

// ListLogs implements production.ProductionService.
func (s *productionServiceImpl) ListLogs(ctx context.Context, limit, offset int) ([]production.LogResponse, error) {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := s.logRepo.GetByTenantID(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]production.LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, toLogResponse(l))
	}
	return responses, nil
}

func toLogResponse(l production.Log) production.LogResponse {
	return production.LogResponse{
		ID:            l.ID,
		OperatorID:    l.OperatorID,
		ShiftTimingID: l.ShiftTimingID,
		MoldMachineID: l.MoldMachineID,
		Date:          l.Date.Format("2006-01-02"),
		Actual:        l.Actual,
		Target:        l.Target,
		Efficiency:    production.Efficiency(l.Actual, l.Target),
		CreatedAt:     l.CreatedAt.Format(time.RFC3339),
	}
}
