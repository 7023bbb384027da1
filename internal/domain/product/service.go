package product

import "context"

type ProductService interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	GetProduct(ctx context.Context, id string) (ProductResponse, error)
	ListProducts(ctx context.Context) ([]ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error

	CreateDrawing(ctx context.Context, req CreateDrawingRequest) (DrawingResponse, error)

	CreateInspection(ctx context.Context, req CreateInspectionRequest) (InspectionResponse, error)
	ListInspections(ctx context.Context, drawingID string) ([]InspectionResponse, error)
	DeleteInspection(ctx context.Context, id string) error
}
