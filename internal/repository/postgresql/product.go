package postgresql

import (
	"context"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/product"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type productRepositoryImpl struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) product.ProductRepository {
	return &productRepositoryImpl{db: db}
}

const productColumns = `id, tenant_id, product_name, product_no, created_by, updated_by, created_at, updated_at`

func scanProduct(row pgx.Row) (product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID,
		&p.TenantID,
		&p.ProductName,
		&p.ProductNo,
		&p.CreatedBy,
		&p.UpdatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create implements product.ProductRepository.
func (r *productRepositoryImpl) Create(ctx context.Context, p product.Product) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO products (tenant_id, product_name, product_no, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns

	return scanProduct(q.QueryRow(ctx, query, p.TenantID, p.ProductName, p.ProductNo, p.CreatedBy, p.UpdatedBy))
}

// GetByID implements product.ProductRepository.
func (r *productRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND tenant_id = $2`
	return scanProduct(q.QueryRow(ctx, query, id, tenantID))
}

// GetByTenantID implements product.ProductRepository.
func (r *productRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + productColumns + ` FROM products WHERE tenant_id = $1 ORDER BY product_no`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Delete implements product.ProductRepository.
func (r *productRepositoryImpl) Delete(ctx context.Context, id, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM products WHERE id = $1 AND tenant_id = $2`
	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type drawingRepositoryImpl struct {
	db *database.DB
}

func NewDrawingRepository(db *database.DB) product.DrawingRepository {
	return &drawingRepositoryImpl{db: db}
}

func scanDrawing(row pgx.Row) (product.Drawing, error) {
	var d product.Drawing
	err := row.Scan(
		&d.ID,
		&d.ProductID,
		&d.DrawingNo,
		&d.CreatedBy,
		&d.UpdatedBy,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

// Create implements product.DrawingRepository. Tenant scope is enforced via
// the owning product; inserting against a foreign product yields no row.
func (r *drawingRepositoryImpl) Create(ctx context.Context, d product.Drawing, tenantID string) (product.Drawing, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO product_drawings (product_id, drawing_no, created_by, updated_by)
		SELECT p.id, $2, $3, $4
		FROM products p
		WHERE p.id = $1 AND p.tenant_id = $5
		RETURNING id, product_id, drawing_no, created_by, updated_by, created_at, updated_at
	`
	return scanDrawing(q.QueryRow(ctx, query, d.ProductID, d.DrawingNo, d.CreatedBy, d.UpdatedBy, tenantID))
}

// GetByID implements product.DrawingRepository.
func (r *drawingRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (product.Drawing, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.product_id, d.drawing_no, d.created_by, d.updated_by, d.created_at, d.updated_at
		FROM product_drawings d
		JOIN products p ON p.id = d.product_id
		WHERE d.id = $1 AND p.tenant_id = $2
	`
	return scanDrawing(q.QueryRow(ctx, query, id, tenantID))
}

// GetByProductID implements product.DrawingRepository.
func (r *drawingRepositoryImpl) GetByProductID(ctx context.Context, productID, tenantID string) ([]product.Drawing, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.product_id, d.drawing_no, d.created_by, d.updated_by, d.created_at, d.updated_at
		FROM product_drawings d
		JOIN products p ON p.id = d.product_id
		WHERE d.product_id = $1 AND p.tenant_id = $2
		ORDER BY d.drawing_no
	`
	rows, err := q.Query(ctx, query, productID, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drawings []product.Drawing
	for rows.Next() {
		d, err := scanDrawing(rows)
		if err != nil {
			return nil, err
		}
		drawings = append(drawings, d)
	}
	return drawings, rows.Err()
}

type inspectionRepositoryImpl struct {
	db *database.DB
}

func NewInspectionRepository(db *database.DB) product.InspectionRepository {
	return &inspectionRepositoryImpl{db: db}
}

const inspectionColumns = `id, drawing_id, dimension_name, inspection_type,
	lower_limit, upper_limit, unit, gauge_name, created_by, updated_by, created_at, updated_at`

func scanInspection(row pgx.Row) (product.Inspection, error) {
	var i product.Inspection
	err := row.Scan(
		&i.ID,
		&i.DrawingID,
		&i.DimensionName,
		&i.Type,
		&i.LowerLimit,
		&i.UpperLimit,
		&i.Unit,
		&i.GaugeName,
		&i.CreatedBy,
		&i.UpdatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// Create implements product.InspectionRepository. Tenant scope is enforced
// through the drawing's product.
func (r *inspectionRepositoryImpl) Create(ctx context.Context, i product.Inspection, tenantID string) (product.Inspection, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO product_inspections (drawing_id, dimension_name, inspection_type,
			lower_limit, upper_limit, unit, gauge_name, created_by, updated_by)
		SELECT d.id, $2, $3, $4, $5, $6, $7, $8, $9
		FROM product_drawings d
		JOIN products p ON p.id = d.product_id
		WHERE d.id = $1 AND p.tenant_id = $10
		RETURNING ` + inspectionColumns

	return scanInspection(q.QueryRow(ctx, query,
		i.DrawingID,
		i.DimensionName,
		i.Type,
		i.LowerLimit,
		i.UpperLimit,
		i.Unit,
		i.GaugeName,
		i.CreatedBy,
		i.UpdatedBy,
		tenantID,
	))
}

// GetByID implements product.InspectionRepository.
func (r *inspectionRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (product.Inspection, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.drawing_id, i.dimension_name, i.inspection_type,
			i.lower_limit, i.upper_limit, i.unit, i.gauge_name,
			i.created_by, i.updated_by, i.created_at, i.updated_at
		FROM product_inspections i
		JOIN product_drawings d ON d.id = i.drawing_id
		JOIN products p ON p.id = d.product_id
		WHERE i.id = $1 AND p.tenant_id = $2
	`
	return scanInspection(q.QueryRow(ctx, query, id, tenantID))
}

// GetByDrawingID implements product.InspectionRepository.
func (r *inspectionRepositoryImpl) GetByDrawingID(ctx context.Context, drawingID, tenantID string) ([]product.Inspection, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.drawing_id, i.dimension_name, i.inspection_type,
			i.lower_limit, i.upper_limit, i.unit, i.gauge_name,
			i.created_by, i.updated_by, i.created_at, i.updated_at
		FROM product_inspections i
		JOIN product_drawings d ON d.id = i.drawing_id
		JOIN products p ON p.id = d.product_id
		WHERE i.drawing_id = $1 AND p.tenant_id = $2
		ORDER BY i.dimension_name
	`
	rows, err := q.Query(ctx, query, drawingID, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inspections []product.Inspection
	for rows.Next() {
		i, err := scanInspection(rows)
		if err != nil {
			return nil, err
		}
		inspections = append(inspections, i)
	}
	return inspections, rows.Err()
}

// Delete implements product.InspectionRepository.
func (r *inspectionRepositoryImpl) Delete(ctx context.Context, id, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM product_inspections i
		USING product_drawings d, products p
		WHERE i.id = $1 AND d.id = i.drawing_id AND p.id = d.product_id AND p.tenant_id = $2
	`
	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
