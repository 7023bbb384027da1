package inspection

import "context"

type InspectionService interface {
	RecordResult(ctx context.Context, req RecordResultRequest) (ResultResponse, error)
	UpdateResult(ctx context.Context, resultID string, req UpdateResultRequest) (ResultResponse, error)
	GetResult(ctx context.Context, resultID string) (ResultResponse, error)
	ListResults(ctx context.Context, limit, offset int) ([]ResultResponse, error)
	DeleteResult(ctx context.Context, resultID string) error
}
