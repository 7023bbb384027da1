package master

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/master"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/fabtrack/shopfloor-backend-go/internal/repository/postgresql"
)

type masterServiceImpl struct {
	db             *database.DB
	departmentRepo master.DepartmentRepository
	operationRepo  master.OperationRepository
	defectRepo     master.DefectRepository
	downtimeRepo   master.DowntimeRepository
}

func NewMasterService(
	db *database.DB,
	departmentRepo master.DepartmentRepository,
	operationRepo master.OperationRepository,
	defectRepo master.DefectRepository,
	downtimeRepo master.DowntimeRepository,
) master.MasterService {
	return &masterServiceImpl{
		db:             db,
		departmentRepo: departmentRepo,
		operationRepo:  operationRepo,
		defectRepo:     defectRepo,
		downtimeRepo:   downtimeRepo,
	}
}

// claimTenant pulls the tenant and caller out of the request token. Every
// catalog operation is tenant scoped.
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

// newNames drops every candidate already present in existing. Both sides
// are normalized, so plain set membership suffices.
func newNames(candidates, existing []string) []string {
	present := make(map[string]struct{}, len(existing))
	for _, n := range existing {
		present[n] = struct{}{}
	}
	var out []string
	for _, n := range candidates {
		if _, ok := present[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}

// CreateDepartments implements master.MasterService.
func (s *masterServiceImpl) CreateDepartments(ctx context.Context, req master.BulkNamesRequest) (master.BulkNamesResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return master.BulkNamesResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return master.BulkNamesResponse{}, err
	}

	existing, err := s.departmentRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return master.BulkNamesResponse{}, err
	}
	existingNames := make([]string, 0, len(existing))
	for _, d := range existing {
		existingNames = append(existingNames, d.DepartmentName)
	}

	toInsert := newNames(master.NormalizeNames(req.Names), existingNames)
	if len(toInsert) == 0 {
		return master.BulkNamesResponse{}, master.ErrNothingNew
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		_, err := s.departmentRepo.BulkCreate(txCtx, tenantID, userID, toInsert)
		return err
	})
	if err != nil {
		return master.BulkNamesResponse{}, fmt.Errorf("failed to create departments: %w", err)
	}

	return master.BulkNamesResponse{Inserted: toInsert}, nil
}

// CreateOperations implements master.MasterService.
func (s *masterServiceImpl) CreateOperations(ctx context.Context, req master.BulkNamesRequest) (master.BulkNamesResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return master.BulkNamesResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return master.BulkNamesResponse{}, err
	}

	existing, err := s.operationRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return master.BulkNamesResponse{}, err
	}
	existingNames := make([]string, 0, len(existing))
	for _, o := range existing {
		existingNames = append(existingNames, o.OperationName)
	}

	toInsert := newNames(master.NormalizeNames(req.Names), existingNames)
	if len(toInsert) == 0 {
		return master.BulkNamesResponse{}, master.ErrNothingNew
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		_, err := s.operationRepo.BulkCreate(txCtx, tenantID, userID, toInsert)
		return err
	})
	if err != nil {
		return master.BulkNamesResponse{}, fmt.Errorf("failed to create operations: %w", err)
	}

	return master.BulkNamesResponse{Inserted: toInsert}, nil
}

// CreateDefects implements master.MasterService.
func (s *masterServiceImpl) CreateDefects(ctx context.Context, req master.BulkNamesRequest) (master.BulkNamesResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return master.BulkNamesResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return master.BulkNamesResponse{}, err
	}

	existing, err := s.defectRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return master.BulkNamesResponse{}, err
	}
	existingNames := make([]string, 0, len(existing))
	for _, d := range existing {
		existingNames = append(existingNames, d.DefectName)
	}

	toInsert := newNames(master.NormalizeNames(req.Names), existingNames)
	if len(toInsert) == 0 {
		return master.BulkNamesResponse{}, master.ErrNothingNew
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		_, err := s.defectRepo.BulkCreate(txCtx, tenantID, userID, toInsert)
		return err
	})
	if err != nil {
		return master.BulkNamesResponse{}, fmt.Errorf("failed to create defects: %w", err)
	}

	return master.BulkNamesResponse{Inserted: toInsert}, nil
}

// CreateDowntimes implements master.MasterService.
func (s *masterServiceImpl) CreateDowntimes(ctx context.Context, req master.BulkNamesRequest) (master.BulkNamesResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return master.BulkNamesResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return master.BulkNamesResponse{}, err
	}

	existing, err := s.downtimeRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return master.BulkNamesResponse{}, err
	}
	existingNames := make([]string, 0, len(existing))
	for _, d := range existing {
		existingNames = append(existingNames, d.DowntimeName)
	}

	toInsert := newNames(master.NormalizeNames(req.Names), existingNames)
	if len(toInsert) == 0 {
		return master.BulkNamesResponse{}, master.ErrNothingNew
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		_, err := s.downtimeRepo.BulkCreate(txCtx, tenantID, userID, toInsert)
		return err
	})
	if err != nil {
		return master.BulkNamesResponse{}, fmt.Errorf("failed to create downtimes: %w", err)
	}

	return master.BulkNamesResponse{Inserted: toInsert}, nil
}

// departmentIDs resolves normalized department names to IDs, failing when
// any department is missing. Departments are never auto-created by link
// requests.
func (s *masterServiceImpl) departmentIDs(ctx context.Context, tenantID string, names []string) (map[string]string, error) {
	departments, err := s.departmentRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]string, len(departments))
	for _, d := range departments {
		byName[d.DepartmentName] = d.ID
	}
	for _, n := range names {
		if _, ok := byName[n]; !ok {
			return nil, master.ErrDepartmentNotFound
		}
	}
	return byName, nil
}

// LinkOperationDepartments implements master.MasterService. Unknown
// operation names are created on the fly; already-present pairs are dropped.
func (s *masterServiceImpl) LinkOperationDepartments(ctx context.Context, req master.LinkRequest) (master.LinkResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return master.LinkResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return master.LinkResponse{}, err
	}

	names := master.NormalizeNames(req.Names)
	departmentNames := master.NormalizeNames(req.DepartmentNames)

	deptIDs, err := s.departmentIDs(ctx, tenantID, departmentNames)
	if err != nil {
		return master.LinkResponse{}, err
	}

	operations, err := s.operationRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return master.LinkResponse{}, err
	}
	opIDs := make(map[string]string, len(operations))
	for _, o := range operations {
		opIDs[o.OperationName] = o.ID
	}

	existingLinks, err := s.operationRepo.GetDepartmentLinks(ctx, tenantID)
	if err != nil {
		return master.LinkResponse{}, err
	}
	linked := make(map[[2]string]struct{}, len(existingLinks))
	for _, l := range existingLinks {
		linked[[2]string{l.OperationID, l.DepartmentID}] = struct{}{}
	}

	var resp master.LinkResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		missing := newNames(names, keys(opIDs))
		if len(missing) > 0 {
			created, err := s.operationRepo.BulkCreate(txCtx, tenantID, userID, missing)
			if err != nil {
				return err
			}
			for _, o := range created {
				opIDs[o.OperationName] = o.ID
			}
		}

		var toLink []master.OperationDepartment
		for _, p := range master.ExplodePairs(names, departmentNames) {
			key := [2]string{opIDs[p.Name], deptIDs[p.DepartmentName]}
			if _, ok := linked[key]; ok {
				continue
			}
			toLink = append(toLink, master.OperationDepartment{
				OperationID:  key[0],
				DepartmentID: key[1],
			})
			resp.Inserted = append(resp.Inserted, master.LinkedPair{
				Name:           p.Name,
				DepartmentName: p.DepartmentName,
			})
		}
		if len(toLink) == 0 {
			return master.ErrNoLinksRemaining
		}
		return s.operationRepo.LinkDepartments(txCtx, tenantID, userID, toLink)
	})
	if err != nil {
		return master.LinkResponse{}, err
	}

	return resp, nil
}

// LinkDefectDepartments implements master.MasterService.
func (s *masterServiceImpl) LinkDefectDepartments(ctx context.Context, req master.LinkRequest) (master.LinkResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return master.LinkResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return master.LinkResponse{}, err
	}

	names := master.NormalizeNames(req.Names)
	departmentNames := master.NormalizeNames(req.DepartmentNames)

	deptIDs, err := s.departmentIDs(ctx, tenantID, departmentNames)
	if err != nil {
		return master.LinkResponse{}, err
	}

	defects, err := s.defectRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return master.LinkResponse{}, err
	}
	defectIDs := make(map[string]string, len(defects))
	for _, d := range defects {
		defectIDs[d.DefectName] = d.ID
	}

	existingLinks, err := s.defectRepo.GetDepartmentLinks(ctx, tenantID)
	if err != nil {
		return master.LinkResponse{}, err
	}
	linked := make(map[[2]string]struct{}, len(existingLinks))
	for _, l := range existingLinks {
		linked[[2]string{l.DefectID, l.DepartmentID}] = struct{}{}
	}

	var resp master.LinkResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		missing := newNames(names, keys(defectIDs))
		if len(missing) > 0 {
			created, err := s.defectRepo.BulkCreate(txCtx, tenantID, userID, missing)
			if err != nil {
				return err
			}
			for _, d := range created {
				defectIDs[d.DefectName] = d.ID
			}
		}

		var toLink []master.DefectDepartment
		for _, p := range master.ExplodePairs(names, departmentNames) {
			key := [2]string{defectIDs[p.Name], deptIDs[p.DepartmentName]}
			if _, ok := linked[key]; ok {
				continue
			}
			toLink = append(toLink, master.DefectDepartment{
				DefectID:     key[0],
				DepartmentID: key[1],
			})
			resp.Inserted = append(resp.Inserted, master.LinkedPair{
				Name:           p.Name,
				DepartmentName: p.DepartmentName,
			})
		}
		if len(toLink) == 0 {
			return master.ErrNoLinksRemaining
		}
		return s.defectRepo.LinkDepartments(txCtx, tenantID, userID, toLink)
	})
	if err != nil {
		return master.LinkResponse{}, err
	}

	return resp, nil
}

// LinkDowntimeDepartments implements master.MasterService.
func (s *masterServiceImpl) LinkDowntimeDepartments(ctx context.Context, req master.LinkRequest) (master.LinkResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return master.LinkResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return master.LinkResponse{}, err
	}

	names := master.NormalizeNames(req.Names)
	departmentNames := master.NormalizeNames(req.DepartmentNames)

	deptIDs, err := s.departmentIDs(ctx, tenantID, departmentNames)
	if err != nil {
		return master.LinkResponse{}, err
	}

	downtimes, err := s.downtimeRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return master.LinkResponse{}, err
	}
	downtimeIDs := make(map[string]string, len(downtimes))
	for _, d := range downtimes {
		downtimeIDs[d.DowntimeName] = d.ID
	}

	existingLinks, err := s.downtimeRepo.GetDepartmentLinks(ctx, tenantID)
	if err != nil {
		return master.LinkResponse{}, err
	}
	linked := make(map[[2]string]struct{}, len(existingLinks))
	for _, l := range existingLinks {
		linked[[2]string{l.DowntimeID, l.DepartmentID}] = struct{}{}
	}

	var resp master.LinkResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		missing := newNames(names, keys(downtimeIDs))
		if len(missing) > 0 {
			created, err := s.downtimeRepo.BulkCreate(txCtx, tenantID, userID, missing)
			if err != nil {
				return err
			}
			for _, d := range created {
				downtimeIDs[d.DowntimeName] = d.ID
			}
		}

		var toLink []master.DowntimeDepartment
		for _, p := range master.ExplodePairs(names, departmentNames) {
			key := [2]string{downtimeIDs[p.Name], deptIDs[p.DepartmentName]}
			if _, ok := linked[key]; ok {
				continue
			}
			toLink = append(toLink, master.DowntimeDepartment{
				DowntimeID:   key[0],
				DepartmentID: key[1],
			})
			resp.Inserted = append(resp.Inserted, master.LinkedPair{
				Name:           p.Name,
				DepartmentName: p.DepartmentName,
			})
		}
		if len(toLink) == 0 {
			return master.ErrNoLinksRemaining
		}
		return s.downtimeRepo.LinkDepartments(txCtx, tenantID, userID, toLink)
	})
	if err != nil {
		return master.LinkResponse{}, err
	}

	return resp, nil
}

// ListDepartments implements master.MasterService.
func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]string, error) {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.departmentRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(departments))
	for _, d := range departments {
		names = append(names, d.DepartmentName)
	}
	return names, nil
}

// ListOperations implements master.MasterService.
func (s *masterServiceImpl) ListOperations(ctx context.Context) ([]string, error) {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return nil, err
	}
	operations, err := s.operationRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(operations))
	for _, o := range operations {
		names = append(names, o.OperationName)
	}
	return names, nil
}

// ListDefects implements master.MasterService.
func (s *masterServiceImpl) ListDefects(ctx context.Context) ([]string, error) {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return nil, err
	}
	defects, err := s.defectRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(defects))
	for _, d := range defects {
		names = append(names, d.DefectName)
	}
	return names, nil
}

// ListDowntimes implements master.MasterService.
func (s *masterServiceImpl) ListDowntimes(ctx context.Context) ([]string, error) {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return nil, err
	}
	downtimes, err := s.downtimeRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(downtimes))
	for _, d := range downtimes {
		names = append(names, d.DowntimeName)
	}
	return names, nil
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
