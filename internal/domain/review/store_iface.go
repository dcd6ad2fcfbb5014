package review

import "context"

type StoreAPI interface {
	// InsertBatch persists every review or none of them.
	InsertBatch(ctx context.Context, records []Review) error
	Update(ctx context.Context, record Review) error
	ByID(ctx context.Context, id int64) (*Review, error)
	ByEmployee(ctx context.Context, employeeID int64) ([]Review, error)
	LatestByEmployee(ctx context.Context, employeeID int64) (*Review, error)
	ListAll(ctx context.Context) ([]Review, error)
}
