package handler

import (
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catalogapi/internal/storage"
)

// presignExpiry bounds how long generated icon download URLs stay valid.
const presignExpiry = 15 * time.Minute

// UploadIcon stores an icon image (multipart field: icon) in object storage
// and returns the icon_ref to attach to a category.
func UploadIcon(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("icon")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "ICON_REQUIRED", "icon file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "ICON_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		// Stored name is UUID + original extension; the original filename
		// survives only as metadata.
		key := filepath.ToSlash(filepath.Join("icons", uuid.NewString()+filepath.Ext(fh.Filename)))

		info, err := store.Put(c.UserContext(), key, f, storage.PutOptions{
			Size:        fh.Size,
			ContentType: ct,
			Metadata: map[string]string{
				"original-filename": fh.Filename,
			},
		})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"icon_ref": info.Key})
	}
}

// IconURL returns a time-limited download URL for the icon_ref given in
// the ref query parameter.
func IconURL(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ref := c.Query("ref")
		if ref == "" {
			return writeError(c, fiber.StatusBadRequest, "REF_REQUIRED", "ref query parameter is required")
		}

		u, err := store.PresignGet(c.UserContext(), ref, presignExpiry)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"url": u})
	}
}
