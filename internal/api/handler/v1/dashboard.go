package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhu-travel/backoffice-api/internal/domain"
)

type DashboardService interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
}

type DashboardHandler struct {
	svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
	}
}

// HandleStats godoc
// @Summary      Dashboard figures
// @Description  Totals, revenue of the last six months and the five most booked packages.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.DashboardStats
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /dashboard/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) HandleStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleStats -> h.svc.Stats", err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
