package controllers

import (
	"github.com/gin-gonic/gin"

	"fotopanel/internal/services"
	"fotopanel/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// ListNotifications godoc
// @Summary List notifications
// @Description Latest notifications of the caller, newest first
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications [get]
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	items, err := nc.notificationService.List(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Bildirimler listelendi")
}

// UnreadCount godoc
// @Summary Unread notification count
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (nc *NotificationController) UnreadCount(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	count, err := nc.notificationService.UnreadCount(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, count, "")
}

// MarkRead godoc
// @Summary Mark notification read
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/{id} [patch]
func (nc *NotificationController) MarkRead(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := nc.notificationService.MarkRead(c.Request.Context(), actor, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Bildirim okundu olarak işaretlendi")
}

// MarkAllRead godoc
// @Summary Mark all notifications read
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/mark-all-read [patch]
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	res, err := nc.notificationService.MarkAllRead(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, "Tüm bildirimler okundu olarak işaretlendi")
}
