package controllers

import (
	"github.com/gin-gonic/gin"

	"fotopanel/internal/models/request_models"
	"fotopanel/internal/services"
	"fotopanel/pkg/utils"
)

type CommunicationController struct {
	communicationService services.CommunicationServiceInterface
}

func NewCommunicationController(communicationService services.CommunicationServiceInterface) *CommunicationController {
	return &CommunicationController{communicationService: communicationService}
}

// ListPhotographers godoc
// @Summary List photographers
// @Description Every photographer account, newest first
// @Tags Superadmin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /superadmin/photographers [get]
func (cc *CommunicationController) ListPhotographers(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	photographers, err := cc.communicationService.ListPhotographers(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, photographers, "Fotoğrafçılar listelendi")
}

// SendBulkEmail godoc
// @Summary Send bulk email
// @Description Mails every photographer matching the filter (all, active, inactive or a package id) and records the outcome
// @Tags Superadmin
// @Accept json
// @Produce json
// @Param request body request_models.BulkEmailRequest true "Message"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /superadmin/communications/email [post]
func (cc *CommunicationController) SendBulkEmail(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req request_models.BulkEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err, "Konu ve mesaj zorunludur")
		return
	}

	result, err := cc.communicationService.SendBulkEmail(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "E-postalar gönderildi")
}

// History godoc
// @Summary Communication history
// @Description The latest 50 bulk messages, newest first
// @Tags Superadmin
// @Produce json
// @Param type query string false "Message type, e.g. email"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /superadmin/communications/history [get]
func (cc *CommunicationController) History(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var q request_models.CommunicationHistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondBindError(c, err, "Geçersiz istek")
		return
	}

	logs, err := cc.communicationService.History(c.Request.Context(), actor, q.Type)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, logs, "Gönderim geçmişi listelendi")
}
