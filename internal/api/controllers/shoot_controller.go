package controllers

import (
	"github.com/gin-gonic/gin"

	"fotopanel/internal/models/request_models"
	"fotopanel/internal/services"
	"fotopanel/pkg/utils"
)

type ShootController struct {
	shootService services.ShootServiceInterface
}

func NewShootController(shootService services.ShootServiceInterface) *ShootController {
	return &ShootController{shootService: shootService}
}

// ListShoots godoc
// @Summary List shoots
// @Description Shoots in the caller's scope, ordered by date. Couples only see their own.
// @Tags Shoots
// @Produce json
// @Param start query string false "RFC3339 lower bound"
// @Param end query string false "RFC3339 upper bound"
// @Param customerId query string false "Customer ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shoots [get]
func (sc *ShootController) ListShoots(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var q request_models.ListShootsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondBindError(c, err, "start ve end RFC3339 tarih, customerId UUID olmalıdır")
		return
	}

	shoots, err := sc.shootService.ListShoots(c.Request.Context(), actor, q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, shoots, "Çekimler listelendi")
}

// CreateShoot godoc
// @Summary Create shoot
// @Description Schedules a shoot and notifies the photographer
// @Tags Shoots
// @Accept json
// @Produce json
// @Param request body request_models.CreateShootRequest true "Shoot"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shoots [post]
func (sc *ShootController) CreateShoot(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req request_models.CreateShootRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err, "Geçersiz istek")
		return
	}

	shoot, err := sc.shootService.CreateShoot(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, shoot, "Çekim oluşturuldu")
}

// GetShoot godoc
// @Summary Get shoot
// @Tags Shoots
// @Produce json
// @Param id path string true "Shoot ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shoots/{id} [get]
func (sc *ShootController) GetShoot(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	shoot, err := sc.shootService.GetShoot(c.Request.Context(), actor, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, shoot, "Çekim getirildi")
}

// UpdateShoot godoc
// @Summary Update shoot
// @Description Partial update. `customerData` is applied to the linked customer first.
// @Tags Shoots
// @Accept json
// @Produce json
// @Param id path string true "Shoot ID"
// @Param request body request_models.UpdateShootRequest true "Changed fields"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shoots/{id} [put]
func (sc *ShootController) UpdateShoot(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req request_models.UpdateShootRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err, "Geçersiz istek")
		return
	}

	shoot, err := sc.shootService.UpdateShoot(c.Request.Context(), actor, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, shoot, "Çekim güncellendi")
}

// DeleteShoot godoc
// @Summary Delete shoot
// @Tags Shoots
// @Produce json
// @Param id path string true "Shoot ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /shoots/{id} [delete]
func (sc *ShootController) DeleteShoot(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := sc.shootService.DeleteShoot(c.Request.Context(), actor, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Çekim silindi")
}
