package production

import "context"

type ProductionService interface {
	CreateLog(ctx context.Context, req CreateLogRequest) (CreateLogResponse, error)
	GetLog(ctx context.Context, logID string) (LogResponse, error)
	ListLogs(ctx context.Context, limit, offset int) ([]LogResponse, error)
}
