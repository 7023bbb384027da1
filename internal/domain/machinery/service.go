package machinery

import "context"

type MachineryService interface {
	CreateMachine(ctx context.Context, req CreateMachineRequest) (MachineResponse, error)
	ListMachines(ctx context.Context) ([]MachineResponse, error)
	DeleteMachine(ctx context.Context, id string) error

	CreateMold(ctx context.Context, req CreateMoldRequest) (MoldResponse, error)
	ListMolds(ctx context.Context) ([]MoldResponse, error)
	DeleteMold(ctx context.Context, id string) error

	CreateMoldMachine(ctx context.Context, req CreateMoldMachineRequest) (MoldMachineResponse, error)
	ListMoldMachines(ctx context.Context) ([]MoldMachineResponse, error)
	DeleteMoldMachine(ctx context.Context, id string) error
}
