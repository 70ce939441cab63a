package provider

import (
	"context"
	"errors"
	"fmt"

	"catalogapi/internal/model"
)

// CategoryProvider defines data access for categories. No business logic here,
// strictly storage/retrieval operations. Implementations live in subpackages
// (e.g., postgres) inside this directory.
//
// Get, Update, and Delete must signal a missing category with *NotFoundError
// so that callers can tell "does not exist" apart from every other failure.
type CategoryProvider interface {
	// List returns categories ordered by ID. pageSize <= 0 means no explicit
	// page size; startAfter == "" means start from the beginning, otherwise
	// only categories with an ID greater than startAfter are returned.
	List(ctx context.Context, pageSize int, startAfter string) ([]model.Category, error)

	// Get returns a category by its ID.
	Get(ctx context.Context, id string) (*model.Category, error)

	// Create stores a new category and returns it with the assigned ID.
	// description and iconRef may be empty.
	Create(ctx context.Context, name, description, iconRef string) (*model.Category, error)

	// Update replaces the stored fields of the category identified by c.ID.
	Update(ctx context.Context, c *model.Category) (*model.Category, error)

	// Delete removes a category by ID.
	Delete(ctx context.Context, id string) error
}

// NotFoundError reports that no category exists for the given ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("category %q not found", e.ID)
}

// IsNotFound reports whether err is (or wraps) a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
