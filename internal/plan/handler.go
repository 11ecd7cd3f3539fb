package plan

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"planhub/internal/api"
	"planhub/internal/metrics"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      List public plans
// @Description  Active plans, optionally filtered by title substring and tag
// @Tags         plans
// @Produce      json
// @Param        q   query string false "Case-insensitive title substring"
// @Param        tag query string false "Exact tag match"
// @Success      200 {array} plan.Plan
// @Router       /plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	plans := h.service.ListPublic(c.Request.Context(), c.Query("q"), c.Query("tag"))
	c.JSON(http.StatusOK, plans)
}

// @Summary      Get a plan by slug
// @Description  Lookup is by slug regardless of activity
// @Tags         plans
// @Produce      json
// @Param        slug path string true "Plan slug"
// @Success      200 {object} plan.Plan
// @Failure      404 {object} api.ErrorResponse
// @Router       /plans/{slug} [get]
func (h *Handler) GetPlanBySlug(c *gin.Context) {
	p, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      List all plans
// @Description  Admin-only: includes inactive plans
// @Tags         admin,plans
// @Produce      json
// @Security     AdminToken
// @Success      200 {array} plan.Plan
// @Failure      401 {object} api.ErrorResponse
// @Router       /admin/plans [get]
func (h *Handler) ListAllPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListAll(c.Request.Context()))
}

// @Summary      Create a plan
// @Tags         admin,plans
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Param        request body plan.CreatePlanRequest true "Plan payload"
// @Success      201 {object} plan.Plan
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/plans [post]
func (h *Handler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindingError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create plan"})
		return
	}

	metrics.RecordPlanCreated()
	c.JSON(http.StatusCreated, created)
}

// @Summary      Update a plan
// @Description  Partial update: absent fields keep their prior values
// @Tags         admin,plans
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Param        id path string true "Plan ID"
// @Param        request body plan.UpdatePlanRequest true "Partial plan payload"
// @Success      200 {object} plan.Plan
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/plans/{id} [patch]
func (h *Handler) UpdatePlan(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindingError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update plan"})
		return
	}

	metrics.RecordPlanUpdated()
	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a plan
// @Description  Does not cascade to an existing subscription
// @Tags         admin,plans
// @Produce      json
// @Security     AdminToken
// @Param        id path string true "Plan ID"
// @Success      200 {object} api.MessageResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/plans/{id} [delete]
func (h *Handler) DeletePlan(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan not found"})
		return
	}

	metrics.RecordPlanDeleted()
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Plan deleted successfully"})
}
