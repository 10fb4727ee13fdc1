package constancias

import (
	"errors"
	"fmt"

	"constancias-backend/internal/pkg/response"
	"constancias-backend/internal/pkg/validation"
	"constancias-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles the constancia endpoints with the service.
type Handlers struct {
	Service *Service
	// PublicBaseURL is the base of the public verification site embedded in
	// QR codes. Falls back to the request base URL when unset.
	PublicBaseURL string
}

// CreateConstancia POST /api/v1/constancias/create-constancia
func (h *Handlers) CreateConstancia(c *fiber.Ctx) error {
	var req NuevaConstancia
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	if errs := validation.CheckConstancia(req.FullName, req.Course, req.DurationHours, req.Date); len(errs) > 0 {
		return response.Error(c, "Validation failed", fiber.StatusBadRequest, errs)
	}

	rec, err := h.Service.Create(c.Context(), req, h.baseURL(c))
	if err != nil {
		return h.createError(c, err)
	}
	return response.Created(c, "Constancia created successfully", rec)
}

type bulkRequest struct {
	Rows []NuevaConstancia `json:"rows"`
}

// BulkCreate POST /api/v1/constancias/bulk-create
// Rows arrive pre-validated by the spreadsheet importer; the contract is
// re-checked here and a violating request is rejected whole, before any
// issuance starts.
func (h *Handlers) BulkCreate(c *fiber.Ctx) error {
	var req bulkRequest
	if err := c.BodyParser(&req); err != nil || len(req.Rows) == 0 {
		return response.Error(c, "rows are required", fiber.StatusBadRequest, nil)
	}

	var rowErrs []string
	for i, row := range req.Rows {
		for _, msg := range validation.CheckConstancia(row.FullName, row.Course, row.DurationHours, row.Date) {
			rowErrs = append(rowErrs, fmt.Sprintf("Fila %d: %s", i+2, msg))
		}
	}
	if len(rowErrs) > 0 {
		return response.Error(c, "Validation failed", fiber.StatusBadRequest, rowErrs)
	}

	result := h.Service.CreateBulk(c.Context(), req.Rows, h.baseURL(c))
	return response.OK(c, "Bulk issuance finished", result)
}

// ListConstancias GET /api/v1/constancias/list-constancias
func (h *Handlers) ListConstancias(c *fiber.Ctx) error {
	list, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.OK(c, "Constancias fetched successfully", list)
}

// Validar GET /api/v1/constancias/public/validar/:folio — public, no auth.
func (h *Handlers) Validar(c *fiber.Ctx) error {
	f := c.Params("folio")
	if f == "" {
		return response.Error(c, "folio is required", fiber.StatusBadRequest, nil)
	}
	rec, err := h.Service.GetByFolio(c.Context(), f)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Error(c, "Constancia not found", fiber.StatusNotFound, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.OK(c, "Constancia fetched successfully", rec)
}

func (h *Handlers) baseURL(c *fiber.Ctx) string {
	if h.PublicBaseURL != "" {
		return h.PublicBaseURL
	}
	return c.BaseURL()
}

func (h *Handlers) createError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, storage.ErrBucketMissing):
		// Configuration problem; return the actionable message as-is.
		return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
	case errors.Is(err, ErrDuplicateFolio):
		return response.Error(c, ErrDuplicateFolio.Error(), fiber.StatusConflict, nil)
	default:
		return response.Error(c, "Failed to create constancia", fiber.StatusInternalServerError, nil)
	}
}
