package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/fabtrack/shopfloor-backend-go/internal/repository/postgresql"
)

type shiftServiceImpl struct {
	shiftRepo  shift.TenantShiftRepository
	timingRepo shift.ShiftTimingRepository

	// withTx is swappable so the commit path can be tested without a pool.
	withTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewShiftService(db *database.DB, shiftRepo shift.TenantShiftRepository, timingRepo shift.ShiftTimingRepository) shift.ShiftService {
	return &shiftServiceImpl{
		shiftRepo:  shiftRepo,
		timingRepo: timingRepo,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// CreateShifts implements shift.ShiftService. Shifts are processed in input
// order. A name collision skips that shift and the batch continues; overlap
// within a shift or a budget violation fails the whole request. Each
// accepted shift's timings join the running set later budget checks count.
func (s *shiftServiceImpl) CreateShifts(ctx context.Context, req shift.CreateShiftsRequest) (shift.CreateShiftsResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return shift.CreateShiftsResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return shift.CreateShiftsResponse{}, fmt.Errorf("tenant_id not found in token")
	}
	callerID, _ := claims["user_id"].(string)

	if err := req.Validate(); err != nil {
		return shift.CreateShiftsResponse{}, err
	}

	// Committed timings across all of the tenant's shifts. Accepted shifts
	// from this batch accumulate into the same set.
	existing, err := s.timingRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return shift.CreateShiftsResponse{}, fmt.Errorf("failed to load existing timings: %w", err)
	}

	resp := shift.CreateShiftsResponse{
		Created: []string{},
		Skipped: []string{},
	}

	for _, in := range req.Shifts {
		if _, err := s.shiftRepo.GetByName(ctx, tenantID, in.ShiftName); err == nil {
			resp.Skipped = append(resp.Skipped, in.ShiftName)
			continue
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return shift.CreateShiftsResponse{}, fmt.Errorf("failed to check shift name: %w", err)
		}

		if len(in.Timings) == 0 {
			return shift.CreateShiftsResponse{}, shift.ErrNoTimings
		}

		candidate, err := buildTimings(in)
		if err != nil {
			return shift.CreateShiftsResponse{}, err
		}

		// Overlap is scoped to the shift's own timings; sharing weekday
		// time with other shifts is constrained only by the daily budget.
		if err := shift.CheckOverlap(candidate); err != nil {
			return shift.CreateShiftsResponse{}, err
		}
		if err := shift.CheckBudget(existing, candidate); err != nil {
			return shift.CreateShiftsResponse{}, err
		}

		skippedByRace := false
		err = s.withTx(ctx, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			created, err := s.shiftRepo.Create(txCtx, shift.TenantShift{
				TenantID:  tenantID,
				ShiftName: in.ShiftName,
				CreatedBy: callerID,
				UpdatedBy: callerID,
			})
			if err != nil {
				return err
			}

			for i := range candidate {
				candidate[i].TenantShiftID = created.ID
				candidate[i].CreatedBy = callerID
				candidate[i].UpdatedBy = callerID
				persisted, err := s.timingRepo.Create(txCtx, candidate[i])
				if err != nil {
					return err
				}
				candidate[i] = persisted
			}
			return nil
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
				// A concurrent writer took the name between the check and
				// the insert; treat it like the optimistic check firing.
				resp.Skipped = append(resp.Skipped, in.ShiftName)
				skippedByRace = true
			} else {
				return shift.CreateShiftsResponse{}, err
			}
		}
		if skippedByRace {
			continue
		}

		existing = append(existing, candidate...)
		resp.Created = append(resp.Created, in.ShiftName)
	}

	return resp, nil
}

// buildTimings converts the inputs of one shift into timing entities.
// Missing weekdays are auto-assigned cycling Monday..Sunday in input order;
// an explicit weekday appearing twice in the same shift is rejected.
func buildTimings(in shift.ShiftInput) ([]shift.ShiftTiming, error) {
	seen := make(map[int]bool, len(in.Timings))
	timings := make([]shift.ShiftTiming, 0, len(in.Timings))

	for idx, t := range in.Timings {
		weekday := (idx % 7) + 1
		if t.Weekday != nil {
			weekday = *t.Weekday
		}
		if seen[weekday] {
			return nil, &shift.DuplicateWeekdayError{ShiftName: in.ShiftName, Weekday: weekday}
		}
		seen[weekday] = true

		start, err := shift.ParseClock(t.ShiftStart)
		if err != nil {
			return nil, err
		}
		end, err := shift.ParseClock(t.ShiftEnd)
		if err != nil {
			return nil, err
		}

		timings = append(timings, shift.ShiftTiming{
			Weekday: weekday,
			Window:  shift.TimeWindow{Start: start, End: end},
		})
	}
	return timings, nil
}

// ListShifts implements shift.ShiftService.
func (s *shiftServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return nil, fmt.Errorf("tenant_id not found in token")
	}

	shifts, err := s.shiftRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		timings, err := s.timingRepo.GetByShiftID(ctx, sh.ID)
		if err != nil {
			return nil, err
		}

		tr := make([]shift.TimingResponse, 0, len(timings))
		for _, t := range timings {
			tr = append(tr, shift.TimingResponse{
				ID:         t.ID,
				Weekday:    t.Weekday,
				ShiftStart: t.Window.Start.String(),
				ShiftEnd:   t.Window.End.String(),
			})
		}

		responses = append(responses, shift.ShiftResponse{
			ID:        sh.ID,
			TenantID:  sh.TenantID,
			ShiftName: sh.ShiftName,
			Timings:   tr,
			CreatedAt: sh.CreatedAt.Format(time.RFC3339),
			UpdatedAt: sh.UpdatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

// DeleteShift implements shift.ShiftService.
func (s *shiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}
	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return fmt.Errorf("tenant_id not found in token")
	}

	if err := s.shiftRepo.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return err
	}
	return nil
}
