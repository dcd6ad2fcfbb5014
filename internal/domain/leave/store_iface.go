package leave

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, record Leave) (int64, error)
	Update(ctx context.Context, record Leave) error
	ByID(ctx context.Context, id int64) (*Leave, error)
	ByEmployee(ctx context.Context, employeeID int64) ([]Leave, error)
	ListAll(ctx context.Context) ([]Leave, error)
}
