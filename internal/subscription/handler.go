package subscription

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"planhub/internal/api"
	"planhub/internal/metrics"
	"planhub/internal/plan"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// MeResponse pairs the subscription with its plan. An empty object means
// the user never subscribed.
type MeResponse struct {
	Subscription *Subscription `json:"subscription,omitempty"`
	Plan         *plan.Plan    `json:"plan,omitempty"`
}

// @Summary      Current subscription
// @Description  Returns the subscription and its plan, or {} if none
// @Tags         subscriptions
// @Produce      json
// @Success      200 {object} subscription.MeResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	sub, p, err := h.service.GetMe(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrOrphanedSubscription) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Subscribed plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load subscription"})
		return
	}
	if sub == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, MeResponse{Subscription: sub, Plan: p})
}

// @Summary      Subscribe to a plan
// @Description  Replaces any existing subscription; at most one is kept
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        request body subscription.SubscribeRequest true "Plan reference"
// @Success      200 {object} subscription.Subscription
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindingError(c, err)
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), req.PlanID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to subscribe"})
		return
	}

	metrics.RecordSubscriptionCreated()
	c.JSON(http.StatusOK, sub)
}

// @Summary      Update module progress
// @Description  Toggles the completed flag of one progress entry
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        request body subscription.ProgressRequest true "Progress update"
// @Success      200 {object} api.SuccessResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /progress [patch]
func (h *Handler) UpdateProgress(c *gin.Context) {
	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindingError(c, err)
		return
	}

	if err := h.service.UpdateProgress(c.Request.Context(), req.ModuleID, *req.Completed); err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Failed to update progress. Subscription or module not found."})
		return
	}

	metrics.RecordProgressUpdate(*req.Completed)
	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}
