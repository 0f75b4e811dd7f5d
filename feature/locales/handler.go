package locales

import (
	"context"
	"time"

	"locale-manager/core/logger"
	"locale-manager/core/reconcile"
	"locale-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for locale trees.
type Handler struct {
	service *Service
	timeout time.Duration
}

// NewHandler creates a new HTTP handler. A zero timeout leaves requests unbounded.
func NewHandler(service *Service, timeout time.Duration) *Handler {
	return &Handler{service: service, timeout: timeout}
}

// RegisterRoutes registers the locale routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/locales")
	group.Get("/:locale/keys", h.HandleKeys)
	group.Post("/:locale/reconcile", h.HandleReconcile)
}

// ReconcileResponse is the body returned by the reconcile endpoint.
type ReconcileResponse struct {
	Recipe  reconcile.Recipe      `json:"recipe"`
	Locale  string                `json:"locale"`
	Summary reconcile.PlanSummary `json:"summary"`
	Dropped []string              `json:"dropped"`
	Missing []string              `json:"missing"`
	DryRun  bool                  `json:"dry_run"`
	Written bool                  `json:"written"`
}

func (h *Handler) context(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleKeys returns the flattened current tree of a locale.
// @Summary Get Locale Keys
// @Description Returns every dotted key of the current translation tree with its value.
// @Tags locales
// @Produce json
// @Param locale path string true "Locale (e.g. en, pt-BR)"
// @Param prefix query string false "Only keys below this dotted prefix"
// @Success 200 {object} map[string]interface{} "Locale keys"
// @Failure 400 {object} map[string]string "Invalid locale or malformed tree"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /locales/{locale}/keys [get]
func (h *Handler) HandleKeys(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	locale := c.Params("locale")

	ctx, cancel := h.context(c)
	defer cancel()

	flat, err := h.service.Keys(ctx, locale, c.Query("prefix"))
	if err != nil {
		return h.fail(c, l, "Failed to load locale keys", err)
	}

	return c.JSON(fiber.Map{
		"locale": locale,
		"count":  len(flat),
		"keys":   flat,
	})
}

// HandleReconcile runs a recipe for a locale.
// @Summary Reconcile Locale
// @Description Runs a reconciliation recipe (unused, subtract-base, maintain, prune-deleted, export) and writes the result unless dry_run is set.
// @Tags locales
// @Accept json
// @Produce json
// @Param locale path string true "Locale (e.g. en, pt-BR)"
// @Param dry_run query boolean false "Plan only, overrides the body flag when true"
// @Param request body Request true "Recipe and file names"
// @Success 200 {object} ReconcileResponse "Reconcile Report"
// @Failure 400 {object} map[string]string "Invalid request or structural conflict"
// @Failure 404 {object} map[string]string "Missing source file"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /locales/{locale}/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	locale := c.Params("locale")

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if utils.ToBool(c.Query("dry_run")) {
		req.DryRun = true
	}

	ctx, cancel := h.context(c)
	defer cancel()

	// An API call is an explicit request, so it counts as confirmed.
	plan, written, err := h.service.Reconcile(ctx, locale, req, true)
	if err != nil {
		return h.fail(c, l.With(zap.String("recipe", string(req.Recipe))), "Reconcile failed", err)
	}

	return c.JSON(ReconcileResponse{
		Recipe:  plan.Recipe,
		Locale:  plan.Locale,
		Summary: plan.Summary,
		Dropped: plan.Dropped,
		Missing: plan.Missing,
		DryRun:  req.DryRun,
		Written: written,
	})
}
