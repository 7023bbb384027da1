package inspection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/inspection"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/product"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/user"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/validator"
)

type inspectionServiceImpl struct {
	resultRepo     inspection.ResultRepository
	inspectionRepo product.InspectionRepository
	timingRepo     shift.ShiftTimingRepository
	userRepo       user.UserRepository
}

func NewInspectionService(
	resultRepo inspection.ResultRepository,
	inspectionRepo product.InspectionRepository,
	timingRepo shift.ShiftTimingRepository,
	userRepo user.UserRepository,
) inspection.InspectionService {
	return &inspectionServiceImpl{
		resultRepo:     resultRepo,
		inspectionRepo: inspectionRepo,
		timingRepo:     timingRepo,
		userRepo:       userRepo,
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

// RecordResult implements inspection.InspectionService. Resolution order:
// inspector, inspection definition, shift timing. Admission then gates on
// window membership, shift capacity and the duplicate triple before the row
// is written; the unique constraint stays authoritative under concurrency.
func (s *inspectionServiceImpl) RecordResult(ctx context.Context, req inspection.RecordResultRequest) (inspection.ResultResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return inspection.ResultResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return inspection.ResultResponse{}, err
	}
	date, _ := validator.IsValidDate(req.InspectionDate)

	inspector, err := s.userRepo.GetByID(ctx, req.InspectorID, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inspection.ResultResponse{}, inspection.ErrInspectorNotFound
		}
		return inspection.ResultResponse{}, err
	}
	if !inspector.CanRecordInspections() {
		return inspection.ResultResponse{}, inspection.ErrInspectorNotFound
	}
	if _, err := s.inspectionRepo.GetByID(ctx, req.InspectionID, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inspection.ResultResponse{}, inspection.ErrInspectionNotFound
		}
		return inspection.ResultResponse{}, err
	}
	timing, err := s.timingRepo.GetByID(ctx, req.ShiftTimingID, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inspection.ResultResponse{}, inspection.ErrShiftTimingNotFound
		}
		return inspection.ResultResponse{}, err
	}

	count, err := s.resultRepo.CountForShiftInstance(ctx, timing.ID, date)
	if err != nil {
		return inspection.ResultResponse{}, fmt.Errorf("failed to count shift results: %w", err)
	}
	dup, err := s.resultRepo.ExistsTriple(ctx, req.InspectionID, date, req.InspectionHour, "")
	if err != nil {
		return inspection.ResultResponse{}, fmt.Errorf("failed to check duplicates: %w", err)
	}

	admission := inspection.Admission{
		Window:        timing.Window,
		Hour:          req.InspectionHour,
		ExistingCount: count,
		HasDuplicate:  dup,
	}
	if err := admission.Check(); err != nil {
		return inspection.ResultResponse{}, err
	}

	created, err := s.resultRepo.Create(ctx, inspection.Result{
		InspectionID:   req.InspectionID,
		InspectorID:    req.InspectorID,
		ShiftTimingID:  req.ShiftTimingID,
		MeasuredValue:  req.MeasuredValue,
		GoNoGo:         req.GoNoGo,
		InspectionDate: date,
		InspectionHour: req.InspectionHour,
		CreatedBy:      userID,
		UpdatedBy:      userID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return inspection.ResultResponse{}, inspection.ErrDuplicateResult
			}
		}
		return inspection.ResultResponse{}, fmt.Errorf("failed to record result: %w", err)
	}

	return toResultResponse(created), nil
}

// UpdateResult implements inspection.InspectionService. Window membership
// and the duplicate triple are re-validated against the possibly-changed
// hour, excluding the row being updated.
func (s *inspectionServiceImpl) UpdateResult(ctx context.Context, resultID string, req inspection.UpdateResultRequest) (inspection.ResultResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return inspection.ResultResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return inspection.ResultResponse{}, err
	}

	current, err := s.resultRepo.GetByID(ctx, resultID, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inspection.ResultResponse{}, inspection.ErrResultNotFound
		}
		return inspection.ResultResponse{}, err
	}

	if req.MeasuredValue != nil {
		current.MeasuredValue = req.MeasuredValue
	}
	if req.GoNoGo != nil {
		current.GoNoGo = req.GoNoGo
	}
	if req.InspectionHour != nil {
		current.InspectionHour = *req.InspectionHour
	}

	timing, err := s.timingRepo.GetByID(ctx, current.ShiftTimingID, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inspection.ResultResponse{}, inspection.ErrShiftTimingNotFound
		}
		return inspection.ResultResponse{}, err
	}

	if !timing.Window.Contains(shift.ClockOf(current.InspectionHour, 0)) {
		return inspection.ResultResponse{}, &inspection.OutsideWindowError{
			Hour:   current.InspectionHour,
			Window: timing.Window,
		}
	}
	dup, err := s.resultRepo.ExistsTriple(ctx, current.InspectionID, current.InspectionDate, current.InspectionHour, current.ID)
	if err != nil {
		return inspection.ResultResponse{}, fmt.Errorf("failed to check duplicates: %w", err)
	}
	if dup {
		return inspection.ResultResponse{}, inspection.ErrDuplicateResult
	}

	current.UpdatedBy = userID
	if err := s.resultRepo.Update(ctx, current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inspection.ResultResponse{}, inspection.ErrResultNotFound
		}
		return inspection.ResultResponse{}, err
	}

	current.UpdatedAt = time.Now()
	return toResultResponse(current), nil
}

// GetResult implements inspection.InspectionService.
func (s *inspectionServiceImpl) GetResult(ctx context.Context, resultID string) (inspection.ResultResponse, error) {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return inspection.ResultResponse{}, err
	}

	res, err := s.resultRepo.GetByID(ctx, resultID, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inspection.ResultResponse{}, inspection.ErrResultNotFound
		}
		return inspection.ResultResponse{}, err
	}
	return toResultResponse(res), nil
}

// ListResults implements inspection.InspectionService.
func (s *inspectionServiceImpl) ListResults(ctx context.Context, limit, offset int) ([]inspection.ResultResponse, error) {
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

	results, err := s.resultRepo.GetByTenantID(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]inspection.ResultResponse, 0, len(results))
	for _, res := range results {
		responses = append(responses, toResultResponse(res))
	}
	return responses, nil
}

// DeleteResult implements inspection.InspectionService.
func (s *inspectionServiceImpl) DeleteResult(ctx context.Context, resultID string) error {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return err
	}

	if err := s.resultRepo.Delete(ctx, resultID, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inspection.ErrResultNotFound
		}
		return err
	}
	return nil
}

func toResultResponse(res inspection.Result) inspection.ResultResponse {
	return inspection.ResultResponse{
		ID:             res.ID,
		InspectionID:   res.InspectionID,
		InspectorID:    res.InspectorID,
		ShiftTimingID:  res.ShiftTimingID,
		MeasuredValue:  res.MeasuredValue,
		GoNoGo:         res.GoNoGo,
		InspectionDate: res.InspectionDate.Format("2006-01-02"),
		InspectionHour: res.InspectionHour,
		CreatedAt:      res.CreatedAt.Format(time.RFC3339),
	}
}
