package handler

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catalogapi/internal/model"
	"catalogapi/internal/provider"
	"catalogapi/internal/repository"
	"catalogapi/internal/storage"
)

var validate = validator.New()

// validationMessage turns the first field error into a client-facing
// message. Falls back to a generic one for anything unexpected.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	field := strings.ToLower(verrs[0].Field())
	switch verrs[0].Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " is too long"
	}
	return field + " is invalid"
}

// categoryRequest is the JSON body for create and update. Only name is
// required; description and icon_ref may be omitted.
type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"max=1000"`
	IconRef     string `json:"icon_ref"`
}

// HealthCheck reports whether the database dependency is reachable.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a plain liveness check with no dependencies.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListCategories returns one page of categories. limit and after are both
// optional; an omitted limit requests an unbounded page.
func ListCategories(repo repository.CategoryRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q repository.ListQuery
		if limitStr := c.Query("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit <= 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive integer")
			}
			q.PageSize = limit
		}
		q.StartAfter = c.Query("after")

		page, err := repo.List(c.UserContext(), q)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(page)
	}
}

// GetCategory returns a single category by ID.
func GetCategory(repo repository.CategoryRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		cat, err := repo.Get(c.UserContext(), id)
		if err != nil {
			if provider.IsNotFound(err) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "category not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(cat)
	}
}

// CreateCategory stores a new category from a JSON body.
func CreateCategory(repo repository.CategoryRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req categoryRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		if err := validate.Struct(req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", validationMessage(err))
		}

		cat, err := repo.Create(c.UserContext(), req.Name, req.Description, req.IconRef)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(cat)
	}
}

// UpdateCategory replaces the stored fields of the category in the path.
func UpdateCategory(repo repository.CategoryRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req categoryRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		if err := validate.Struct(req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", validationMessage(err))
		}

		cat, err := repo.Update(c.UserContext(), &model.Category{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			IconRef:     req.IconRef,
		})
		if err != nil {
			if provider.IsNotFound(err) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "category not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(cat)
	}
}

// DeleteCategory removes a category by ID, then cleans up its icon object.
func DeleteCategory(repo repository.CategoryRepository, store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		// Fetch first to learn the icon_ref; the category row is the
		// only place it is recorded.
		cat, err := repo.Get(c.UserContext(), id)
		if err != nil {
			if provider.IsNotFound(err) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "category not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		if err := repo.Delete(c.UserContext(), id); err != nil {
			if provider.IsNotFound(err) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "category not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		// Best-effort: the row is already gone, so a failed object delete
		// only leaves an orphaned icon behind.
		if cat.IconRef != "" {
			_ = store.Delete(c.UserContext(), cat.IconRef)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
