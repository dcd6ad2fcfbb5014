package directory

import "context"

// StoreAPI is the keyed-record store backing the directory. Lookups that miss
// return ErrNotFound.
type StoreAPI interface {
	Insert(ctx context.Context, emp Employee) (int64, error)
	Update(ctx context.Context, emp Employee) error
	ByID(ctx context.Context, id int64) (*Employee, error)
	ByEmail(ctx context.Context, emailID string) (*Employee, error)
	ByOfficialEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Subordinates(ctx context.Context, managerID int64) ([]Employee, error)
}
