package product

import "time"

type Product struct {
	ID          string
	TenantID    string
	ProductName string
	ProductNo   string
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Drawings []Drawing
}

type Drawing struct {
	ID        string
	ProductID string
	DrawingNo string
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type InspectionType string

const (
	InspectionTypeDimensional InspectionType = "dimensional"
	InspectionTypeGauge       InspectionType = "gauge"
)

var InspectionTypeValues = []string{
	string(InspectionTypeDimensional),
	string(InspectionTypeGauge),
}

// Inspection is one measurable characteristic on a drawing: either a
// dimensional check with numeric limits or a go/no-go gauge check.
type Inspection struct {
	ID            string
	DrawingID     string
	DimensionName string
	Type          InspectionType
	LowerLimit    *float64
	UpperLimit    *float64
	Unit          *string
	GaugeName     *string
	CreatedBy     string
	UpdatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
