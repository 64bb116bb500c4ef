package person

import "context"

type Repository interface {
	List(ctx context.Context) []Person
	GetByName(ctx context.Context, firstName, lastName string) (*Person, error)
	Create(ctx context.Context, p *Person) error
	Update(ctx context.Context, firstName, lastName string, p *Person) error
	Delete(ctx context.Context, firstName, lastName string) error
}
