package master

import "context"

type MasterService interface {
	CreateDepartments(ctx context.Context, req BulkNamesRequest) (BulkNamesResponse, error)
	CreateOperations(ctx context.Context, req BulkNamesRequest) (BulkNamesResponse, error)
	CreateDefects(ctx context.Context, req BulkNamesRequest) (BulkNamesResponse, error)
	CreateDowntimes(ctx context.Context, req BulkNamesRequest) (BulkNamesResponse, error)

	LinkOperationDepartments(ctx context.Context, req LinkRequest) (LinkResponse, error)
	LinkDefectDepartments(ctx context.Context, req LinkRequest) (LinkResponse, error)
	LinkDowntimeDepartments(ctx context.Context, req LinkRequest) (LinkResponse, error)

	ListDepartments(ctx context.Context) ([]string, error)
	ListOperations(ctx context.Context) ([]string, error)
	ListDefects(ctx context.Context) ([]string, error)
	ListDowntimes(ctx context.Context) ([]string, error)
}
