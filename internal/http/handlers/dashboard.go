package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"comercialsoares.com/app/internal/modules/orders"
	"comercialsoares.com/app/internal/modules/reports"
	"comercialsoares.com/app/pkg/view"
)

type DashboardHandler struct {
	svc *orders.Service
}

func NewDashboardHandler(svc *orders.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary aggregates finalized orders for the requested period.
// ?filter=today|7days|month|all|custom, custom takes ?start= and ?end=
// as ISO dates. Unknown filters fall back to all-time.
func (h *DashboardHandler) Summary(c *gin.Context) {
	period := reports.Resolve(
		reports.Preset(c.DefaultQuery("filter", string(reports.PresetAll))),
		c.Query("start"),
		c.Query("end"),
		time.Now(),
	)
	sum := reports.Summarize(h.svc.ListFinalized(), period)
	c.JSON(http.StatusOK, view.NewDashboard(sum))
}
