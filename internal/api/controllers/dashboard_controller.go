package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fotopanel/internal/services"
	"fotopanel/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get dashboard stats
// @Description Per-studio snapshot for one month: counts, 6-month revenue trend, calendar, today's schedule, upcoming shoots and active albums
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param month query int    false "Month 1-12 (default: current month)"
// @Param year  query int    false "Year (default: current year)"
// @Param tz    query string false "IANA timezone for month boundaries (default: DASHBOARD_TIMEZONE)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/dashboard/stats [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var (
		q   services.DashboardQuery
		err error
	)

	if s := c.Query("month"); s != "" {
		if q.Month, err = strconv.Atoi(s); err != nil {
			utils.RespondBindError(c, err, "Ay 1 ile 12 arasında bir sayı olmalıdır")
			return
		}
	}
	if s := c.Query("year"); s != "" {
		if q.Year, err = strconv.Atoi(s); err != nil {
			utils.RespondBindError(c, err, "Yıl bir sayı olmalıdır")
			return
		}
	}
	if tz := c.Query("tz"); tz != "" {
		if q.Location, err = utils.LoadLocation(tz); err != nil {
			utils.RespondBindError(c, err, "Geçersiz saat dilimi (örn. Europe/Istanbul)")
			return
		}
	}

	report, svcErr := p.dashboardService.BuildDashboard(c.Request.Context(), actor, q)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, report, "Panel verileri getirildi")
}
