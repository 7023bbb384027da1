package product

import "context"

type ProductRepository interface {
	Create(ctx context.Context, p Product) (Product, error)
	GetByID(ctx context.Context, id, tenantID string) (Product, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]Product, error)
	Delete(ctx context.Context, id, tenantID string) error
}

type DrawingRepository interface {
	Create(ctx context.Context, d Drawing, tenantID string) (Drawing, error)
	GetByID(ctx context.Context, id, tenantID string) (Drawing, error)
	GetByProductID(ctx context.Context, productID, tenantID string) ([]Drawing, error)
}

type InspectionRepository interface {
	Create(ctx context.Context, i Inspection, tenantID string) (Inspection, error)
	GetByID(ctx context.Context, id, tenantID string) (Inspection, error)
	GetByDrawingID(ctx context.Context, drawingID, tenantID string) ([]Inspection, error)
	Delete(ctx context.Context, id, tenantID string) error
}
