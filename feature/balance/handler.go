package balance

import (
	"errors"
	"io"
	"mime/multipart"

	"objmask-workaround/core/logger"
	"objmask-workaround/core/reconcile"
	"objmask-workaround/core/utils"
	"objmask-workaround/feature/balance/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	formBalance = "balance"
	formRules   = "rules"

	defaultRunsLimit = 20
	maxRunsLimit     = 500
)

// Handler handles HTTP requests for balance tables.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the balance routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/balance")
	group.Post("/fix", h.HandleFix)
	group.Post("/diff", h.HandleDiff)
	group.Get("/categories", h.HandleCategories)
	group.Get("/runs", h.HandleRuns)
}

// CategoryView is one category code in API responses.
type CategoryView struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DiffResponse is the body of a diff request.
type DiffResponse struct {
	Plan     *reconcile.Plan  `json:"plan"`
	Warnings []models.Warning `json:"warnings"`
}

// HandleFix rebuilds an uploaded balance table.
// @Summary Rebuild Balance Table
// @Description Rebuild balance.xml so every unit pair carries its composed modifier. Without a rules upload the server's unitrules.xml is used.
// @Tags balance
// @Accept multipart/form-data
// @Produce xml
// @Param balance formData file true "balance.xml"
// @Param rules formData file false "unitrules.xml"
// @Param publish query bool false "Upload the result to object storage"
// @Success 200 {string} string "Rebuilt balance.xml"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Malformed Source"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /balance/fix [post]
func (h *Handler) HandleFix(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	res, err := h.rebuild(c)
	if err != nil {
		return h.fail(c, l, "Balance rebuild failed", err)
	}

	data, err := h.service.Render(res, c.Path())
	if err != nil {
		return h.fail(c, l, "Balance render failed", err)
	}

	var published string
	if utils.ToBool(c.Query("publish")) {
		published, err = h.service.Publish(c.Context(), data)
		if err != nil {
			return h.fail(c, l, "Balance publish failed", err)
		}
		c.Set("X-Published-Object", published)
	}

	if _, err := h.service.Record(c.Context(), res, data, published); err != nil {
		l.Warn("Failed to record run", zap.Error(err))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+h.service.cfg.OutputFile+`"`)
	return c.Send(data)
}

// HandleDiff compares an uploaded balance table with its rebuilt form.
// @Summary Diff Balance Table
// @Description Compare the shipped balance.xml with the table the rebuild would produce.
// @Tags balance
// @Accept multipart/form-data
// @Produce json
// @Param balance formData file true "balance.xml"
// @Param rules formData file false "unitrules.xml"
// @Success 200 {object} DiffResponse "Comparison"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Malformed Source"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /balance/diff [post]
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	res, err := h.rebuild(c)
	if err != nil {
		return h.fail(c, l, "Balance diff failed", err)
	}

	return c.JSON(DiffResponse{
		Plan:     h.service.Diff(res),
		Warnings: res.Diagnostics.Warnings,
	})
}

// HandleCategories lists the category codes.
// @Summary List Categories
// @Description List the OBJ_MASK category codes and the attribute names they map to.
// @Tags balance
// @Produce json
// @Success 200 {array} CategoryView "Categories"
// @Router /balance/categories [get]
func (h *Handler) HandleCategories(c *fiber.Ctx) error {
	cats := h.service.Categories()
	views := make([]CategoryView, 0, len(cats))
	for _, cat := range cats {
		views = append(views, CategoryView{Code: string(cat.Code), Name: cat.Name})
	}
	return c.JSON(views)
}

// HandleRuns lists recent rebuilds.
// @Summary List Runs
// @Description List the most recent rebuilds, newest first.
// @Tags balance
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} history.Run "Runs"
// @Failure 503 {object} map[string]string "History Disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /balance/runs [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	limit := utils.Clamp(utils.ToInt(c.Query("limit"), defaultRunsLimit), 1, maxRunsLimit)

	runs, err := h.service.Runs(c.Context(), limit)
	if err != nil {
		return h.fail(c, l, "Listing runs failed", err)
	}
	return c.JSON(runs)
}

// rebuild runs the pipeline over the request's uploads.
func (h *Handler) rebuild(c *fiber.Ctx) (*Result, error) {
	balanceHeader, err := c.FormFile(formBalance)
	if err != nil {
		return nil, errMissingUpload
	}
	balanceFile, err := balanceHeader.Open()
	if err != nil {
		return nil, err
	}
	defer balanceFile.Close()

	var (
		rulesR    io.Reader
		rulesName string
	)
	if rulesHeader, err := c.FormFile(formRules); err == nil {
		var rulesFile multipart.File
		rulesFile, err = rulesHeader.Open()
		if err != nil {
			return nil, err
		}
		defer rulesFile.Close()
		rulesR, rulesName = rulesFile, rulesHeader.Filename
	}

	return h.service.FixUpload(c.Context(), balanceFile, balanceHeader.Filename, rulesR, rulesName)
}

var errMissingUpload = errors.New("multipart field '" + formBalance + "' is required")

// fail logs err and writes the matching status.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errMissingUpload):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrMalformedSource),
		errors.Is(err, models.ErrMissingName),
		errors.Is(err, models.ErrInvalidModifier):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrHistoryDisabled), errors.Is(err, ErrPublishDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
