package crud

import "context"

// Store is the uniform persistence surface for one relational entity.
// Implementations report failures through the error taxonomy in this package:
// ValidationError, ConstraintError, NotFoundError, InvalidFieldError.
type Store[T any] interface {
	// Create inserts a new record and returns it including generated fields.
	Create(ctx context.Context, data map[string]any) (*T, error)
	// FindByID returns (nil, nil) when the id has no record; absence is not
	// an error at this level.
	FindByID(ctx context.Context, id uint) (*T, error)
	// FindAll returns one page when limit > 0, the full set otherwise.
	FindAll(ctx context.Context, limit, offset int) ([]T, error)
	CountAll(ctx context.Context) (int64, error)
	// Update merges data into the existing record and returns the result.
	Update(ctx context.Context, id uint, data map[string]any) (*T, error)
	Delete(ctx context.Context, id uint) (bool, error)
	// UpdateField is the single-field variant of Update.
	UpdateField(ctx context.Context, id uint, field string, value any) (*T, error)
	// FindByField is an equality lookup on one descriptor field.
	FindByField(ctx context.Context, field string, value any) ([]T, error)
}
