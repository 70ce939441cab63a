package repository

import (
	"context"

	"catalogapi/internal/model"
	"catalogapi/internal/provider"
)

// ListQuery holds cursor pagination parameters for List.
// Zero values mean "not supplied".
type ListQuery struct {
	// PageSize is the maximum number of items requested. 0 means no
	// explicit page size.
	PageSize int
	// StartAfter is the ID of the last item of the previous page. ""
	// means start from the beginning.
	StartAfter string
}

// Page is one page of categories returned by List. It is built fresh per
// call and not mutated afterwards.
type Page struct {
	Items []model.Category `json:"data"`
	// Cursor is the ID of the last item, or "" when the page is empty.
	// Pass it as ListQuery.StartAfter to resume listing.
	Cursor string `json:"cursor,omitempty"`
	// HasMore is true when the page was filled to the requested size.
	// A full page is taken to mean more data may follow; a short page or
	// an unbounded request is taken to be complete. The heuristic reports
	// a false positive when the total happens to be an exact multiple of
	// the page size.
	HasMore bool `json:"has_more"`
}

// CategoryRepository exposes category CRUD over an injected provider.
// Each operation performs exactly one provider call with the caller's
// arguments passed through unmodified, and translates provider failures
// into the operation-specific *Error kind. Provider not-found failures on
// Get, Update, and Delete propagate unchanged so callers can match them
// with provider.IsNotFound.
type CategoryRepository interface {
	// List returns one page of categories and the cursor to resume from.
	List(ctx context.Context, q ListQuery) (*Page, error)

	// Get returns a single category by its ID.
	Get(ctx context.Context, id string) (*model.Category, error)

	// Create stores a new category; description and iconRef may be empty.
	Create(ctx context.Context, name, description, iconRef string) (*model.Category, error)

	// Update replaces the stored fields of the category identified by c.ID.
	Update(ctx context.Context, c *model.Category) (*model.Category, error)

	// Delete removes a category by ID.
	Delete(ctx context.Context, id string) error
}

// categoryRepository is a concrete implementation of CategoryRepository.
// It holds no mutable state and is safe for concurrent use.
type categoryRepository struct {
	provider provider.CategoryProvider
}

// NewCategoryRepository constructs a CategoryRepository over the given provider.
func NewCategoryRepository(p provider.CategoryProvider) CategoryRepository {
	return &categoryRepository{provider: p}
}

func (r *categoryRepository) List(ctx context.Context, q ListQuery) (*Page, error) {
	items, err := r.provider.List(ctx, q.PageSize, q.StartAfter)
	if err != nil {
		return nil, &Error{Kind: KindList, Err: err}
	}

	p := &Page{
		Items:   items,
		HasMore: q.PageSize > 0 && len(items) == q.PageSize,
	}
	if len(items) > 0 {
		p.Cursor = items[len(items)-1].ID
	}
	return p, nil
}

func (r *categoryRepository) Get(ctx context.Context, id string) (*model.Category, error) {
	c, err := r.provider.Get(ctx, id)
	if err != nil {
		if provider.IsNotFound(err) {
			return nil, err
		}
		return nil, &Error{Kind: KindGet, Err: err}
	}
	return c, nil
}

func (r *categoryRepository) Create(ctx context.Context, name, description, iconRef string) (*model.Category, error) {
	c, err := r.provider.Create(ctx, name, description, iconRef)
	if err != nil {
		return nil, &Error{Kind: KindCreate, Err: err}
	}
	return c, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *model.Category) (*model.Category, error) {
	updated, err := r.provider.Update(ctx, c)
	if err != nil {
		if provider.IsNotFound(err) {
			return nil, err
		}
		return nil, &Error{Kind: KindUpdate, Err: err}
	}
	return updated, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	if err := r.provider.Delete(ctx, id); err != nil {
		if provider.IsNotFound(err) {
			return err
		}
		return &Error{Kind: KindDelete, Err: err}
	}
	return nil
}
