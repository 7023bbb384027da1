package machinery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/machinery"
)

type machineryServiceImpl struct {
	machineRepo     machinery.MachineRepository
	moldRepo        machinery.MoldRepository
	moldMachineRepo machinery.MoldMachineRepository
}

func NewMachineryService(machineRepo machinery.MachineRepository, moldRepo machinery.MoldRepository, moldMachineRepo machinery.MoldMachineRepository) machinery.MachineryService {
	return &machineryServiceImpl{
		machineRepo:     machineRepo,
		moldRepo:        moldRepo,
		moldMachineRepo: moldMachineRepo,
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

// CreateMachine implements machinery.MachineryService.
func (s *machineryServiceImpl) CreateMachine(ctx context.Context, req machinery.CreateMachineRequest) (machinery.MachineResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return machinery.MachineResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return machinery.MachineResponse{}, err
	}

	created, err := s.machineRepo.Create(ctx, machinery.Machine{
		TenantID:    tenantID,
		MachineNo:   req.MachineNo,
		Description: req.Description,
		CreatedBy:   userID,
		UpdatedBy:   userID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return machinery.MachineResponse{}, machinery.ErrMachineNoExists
			}
		}
		return machinery.MachineResponse{}, fmt.Errorf("failed to create machine: %w", err)
	}

	return machinery.MachineResponse{
		ID:          created.ID,
		TenantID:    created.TenantID,
		MachineNo:   created.MachineNo,
		Description: created.Description,
		CreatedAt:   created.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ListMachines implements machinery.MachineryService.
func (s *machineryServiceImpl) ListMachines(ctx context.Context) ([]machinery.MachineResponse, error) {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return nil, err
	}

	machines, err := s.machineRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]machinery.MachineResponse, 0, len(machines))
	for _, m := range machines {
		responses = append(responses, machinery.MachineResponse{
			ID:          m.ID,
			TenantID:    m.TenantID,
			MachineNo:   m.MachineNo,
			Description: m.Description,
			CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

// DeleteMachine implements machinery.MachineryService.
func (s *machineryServiceImpl) DeleteMachine(ctx context.Context, id string) error {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return err
	}

	if err := s.machineRepo.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return machinery.ErrMachineNotFound
		}
		return err
	}
	return nil
}

// CreateMold implements machinery.MachineryService.
func (s *machineryServiceImpl) CreateMold(ctx context.Context, req machinery.CreateMoldRequest) (machinery.MoldResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return machinery.MoldResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return machinery.MoldResponse{}, err
	}

	created, err := s.moldRepo.Create(ctx, machinery.Mold{
		TenantID:    tenantID,
		MoldNo:      req.MoldNo,
		Description: req.Description,
		Cavities:    req.Cavities,
		CreatedBy:   userID,
		UpdatedBy:   userID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return machinery.MoldResponse{}, machinery.ErrMoldNoExists
			}
		}
		return machinery.MoldResponse{}, fmt.Errorf("failed to create mold: %w", err)
	}

	return machinery.MoldResponse{
		ID:          created.ID,
		TenantID:    created.TenantID,
		MoldNo:      created.MoldNo,
		Description: created.Description,
		Cavities:    created.Cavities,
		CreatedAt:   created.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ListMolds implements machinery.MachineryService.
func (s *machineryServiceImpl) ListMolds(ctx context.Context) ([]machinery.MoldResponse, error) {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return nil, err
	}

	molds, err := s.moldRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]machinery.MoldResponse, 0, len(molds))
	for _, m := range molds {
		responses = append(responses, machinery.MoldResponse{
			ID:          m.ID,
			TenantID:    m.TenantID,
			MoldNo:      m.MoldNo,
			Description: m.Description,
			Cavities:    m.Cavities,
			CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

// DeleteMold implements machinery.MachineryService.
func (s *machineryServiceImpl) DeleteMold(ctx context.Context, id string) error {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return err
	}

	if err := s.moldRepo.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return machinery.ErrMoldNotFound
		}
		return err
	}
	return nil
}

// CreateMoldMachine implements machinery.MachineryService. Both sides of
// the mapping must resolve under the caller's tenant.
func (s *machineryServiceImpl) CreateMoldMachine(ctx context.Context, req machinery.CreateMoldMachineRequest) (machinery.MoldMachineResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return machinery.MoldMachineResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return machinery.MoldMachineResponse{}, err
	}

	if _, err := s.moldRepo.GetByID(ctx, req.MoldID, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return machinery.MoldMachineResponse{}, machinery.ErrMoldNotFound
		}
		return machinery.MoldMachineResponse{}, err
	}
	if _, err := s.machineRepo.GetByID(ctx, req.MachineID, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return machinery.MoldMachineResponse{}, machinery.ErrMachineNotFound
		}
		return machinery.MoldMachineResponse{}, err
	}

	created, err := s.moldMachineRepo.Create(ctx, machinery.MoldMachine{
		MoldID:    req.MoldID,
		MachineID: req.MachineID,
		CreatedBy: userID,
		UpdatedBy: userID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return machinery.MoldMachineResponse{}, machinery.ErrMoldMachineExists
			}
		}
		return machinery.MoldMachineResponse{}, fmt.Errorf("failed to create mold-machine mapping: %w", err)
	}

	return machinery.MoldMachineResponse{
		ID:        created.ID,
		MoldID:    created.MoldID,
		MachineID: created.MachineID,
	}, nil
}

// ListMoldMachines implements machinery.MachineryService.
func (s *machineryServiceImpl) ListMoldMachines(ctx context.Context) ([]machinery.MoldMachineResponse, error) {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return nil, err
	}

	mappings, err := s.moldMachineRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]machinery.MoldMachineResponse, 0, len(mappings))
	for _, mm := range mappings {
		responses = append(responses, machinery.MoldMachineResponse{
			ID:        mm.ID,
			MoldID:    mm.MoldID,
			MachineID: mm.MachineID,
		})
	}
	return responses, nil
}

// DeleteMoldMachine implements machinery.MachineryService.
func (s *machineryServiceImpl) DeleteMoldMachine(ctx context.Context, id string) error {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return err
	}

	if err := s.moldMachineRepo.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return machinery.ErrMoldMachineNotFound
		}
		return err
	}
	return nil
}
