package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/product"
)

type productServiceImpl struct {
	productRepo    product.ProductRepository
	drawingRepo    product.DrawingRepository
	inspectionRepo product.InspectionRepository
}

func NewProductService(productRepo product.ProductRepository, drawingRepo product.DrawingRepository, inspectionRepo product.InspectionRepository) product.ProductService {
	return &productServiceImpl{
		productRepo:    productRepo,
		drawingRepo:    drawingRepo,
		inspectionRepo: inspectionRepo,
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

// CreateProduct implements product.ProductService.
func (s *productServiceImpl) CreateProduct(ctx context.Context, req product.CreateProductRequest) (product.ProductResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return product.ProductResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	created, err := s.productRepo.Create(ctx, product.Product{
		TenantID:    tenantID,
		ProductName: req.ProductName,
		ProductNo:   req.ProductNo,
		CreatedBy:   userID,
		UpdatedBy:   userID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return product.ProductResponse{}, product.ErrProductNoExists
			}
		}
		return product.ProductResponse{}, fmt.Errorf("failed to create product: %w", err)
	}

	return toProductResponse(created, nil), nil
}

// GetProduct implements product.ProductService.
func (s *productServiceImpl) GetProduct(ctx context.Context, id string) (product.ProductResponse, error) {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return product.ProductResponse{}, err
	}

	p, err := s.productRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.ProductResponse{}, product.ErrProductNotFound
		}
		return product.ProductResponse{}, err
	}

	drawings, err := s.drawingRepo.GetByProductID(ctx, p.ID, tenantID)
	if err != nil {
		return product.ProductResponse{}, err
	}

	return toProductResponse(p, drawings), nil
}

// ListProducts implements product.ProductService.
func (s *productServiceImpl) ListProducts(ctx context.Context) ([]product.ProductResponse, error) {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]product.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p, nil))
	}
	return responses, nil
}

// DeleteProduct implements product.ProductService.
func (s *productServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.ErrProductNotFound
		}
		return err
	}
	return nil
}

// CreateDrawing implements product.ProductService.
func (s *productServiceImpl) CreateDrawing(ctx context.Context, req product.CreateDrawingRequest) (product.DrawingResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return product.DrawingResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return product.DrawingResponse{}, err
	}

	created, err := s.drawingRepo.Create(ctx, product.Drawing{
		ProductID: req.ProductID,
		DrawingNo: req.DrawingNo,
		CreatedBy: userID,
		UpdatedBy: userID,
	}, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The guarded insert found no product under this tenant.
			return product.DrawingResponse{}, product.ErrProductNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return product.DrawingResponse{}, product.ErrDrawingNoExists
			}
		}
		return product.DrawingResponse{}, fmt.Errorf("failed to create drawing: %w", err)
	}

	return product.DrawingResponse{
		ID:        created.ID,
		ProductID: created.ProductID,
		DrawingNo: created.DrawingNo,
	}, nil
}

// CreateInspection implements product.ProductService.
func (s *productServiceImpl) CreateInspection(ctx context.Context, req product.CreateInspectionRequest) (product.InspectionResponse, error) {
	tenantID, userID, err := claimTenant(ctx)
	if err != nil {
		return product.InspectionResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return product.InspectionResponse{}, err
	}

	created, err := s.inspectionRepo.Create(ctx, product.Inspection{
		DrawingID:     req.DrawingID,
		DimensionName: req.DimensionName,
		Type:          product.InspectionType(req.Type),
		LowerLimit:    req.LowerLimit,
		UpperLimit:    req.UpperLimit,
		Unit:          req.Unit,
		GaugeName:     req.GaugeName,
		CreatedBy:     userID,
		UpdatedBy:     userID,
	}, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.InspectionResponse{}, product.ErrDrawingNotFound
		}
		return product.InspectionResponse{}, fmt.Errorf("failed to create inspection: %w", err)
	}

	return toInspectionResponse(created), nil
}

// ListInspections implements product.ProductService.
func (s *productServiceImpl) ListInspections(ctx context.Context, drawingID string) ([]product.InspectionResponse, error) {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return nil, err
	}

	inspections, err := s.inspectionRepo.GetByDrawingID(ctx, drawingID, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]product.InspectionResponse, 0, len(inspections))
	for _, i := range inspections {
		responses = append(responses, toInspectionResponse(i))
	}
	return responses, nil
}

// DeleteInspection implements product.ProductService.
func (s *productServiceImpl) DeleteInspection(ctx context.Context, id string) error {
	tenantID, _, err := claimTenant(ctx)
	if err != nil {
		return err
	}

	if err := s.inspectionRepo.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.ErrInspectionNotFound
		}
		return err
	}
	return nil
}

func toProductResponse(p product.Product, drawings []product.Drawing) product.ProductResponse {
	resp := product.ProductResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		ProductName: p.ProductName,
		ProductNo:   p.ProductNo,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
	for _, d := range drawings {
		resp.Drawings = append(resp.Drawings, product.DrawingResponse{
			ID:        d.ID,
			ProductID: d.ProductID,
			DrawingNo: d.DrawingNo,
		})
	}
	return resp
}

func toInspectionResponse(i product.Inspection) product.InspectionResponse {
	return product.InspectionResponse{
		ID:            i.ID,
		DrawingID:     i.DrawingID,
		DimensionName: i.DimensionName,
		Type:          string(i.Type),
		LowerLimit:    i.LowerLimit,
		UpperLimit:    i.UpperLimit,
		Unit:          i.Unit,
		GaugeName:     i.GaugeName,
	}
}
