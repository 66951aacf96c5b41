package controllers

import (
	"github.com/gin-gonic/gin"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/request_models"
	"fotopanel/internal/services"
	"fotopanel/pkg/utils"
)

type EmailTemplateController struct {
	templateService services.EmailTemplateServiceInterface
}

func NewEmailTemplateController(templateService services.EmailTemplateServiceInterface) *EmailTemplateController {
	return &EmailTemplateController{templateService: templateService}
}

func templateType(c *gin.Context) db_models.EmailTemplateType {
	return db_models.EmailTemplateType(c.Param("type"))
}

// ListTemplates godoc
// @Summary List email templates
// @Description Effective customization of every template type and where it comes from
// @Tags EmailTemplates
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/email-templates [get]
func (ec *EmailTemplateController) ListTemplates(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	views, err := ec.templateService.List(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, views, "Şablonlar listelendi")
}

// GetTemplate godoc
// @Summary Get email template
// @Tags EmailTemplates
// @Produce json
// @Param type path string true "VERIFY_EMAIL | WELCOME_PHOTOGRAPHER | CUSTOMER_STATUS_UPDATE | PLAN_UPDATED"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/email-templates/{type} [get]
func (ec *EmailTemplateController) GetTemplate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	view, err := ec.templateService.Get(c.Request.Context(), actor, templateType(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Şablon getirildi")
}

// SaveTemplate godoc
// @Summary Save email template
// @Description Stores an override. Empty fields fall back to the default text.
// @Tags EmailTemplates
// @Accept json
// @Produce json
// @Param type path string true "Template type"
// @Param request body db_models.TemplateCustomization true "Customization"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/email-templates/{type} [put]
func (ec *EmailTemplateController) SaveTemplate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var body db_models.TemplateCustomization
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBindError(c, err, "Geçersiz istek")
		return
	}

	view, err := ec.templateService.Save(c.Request.Context(), actor, templateType(c), body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Şablon kaydedildi")
}

// ResetTemplate godoc
// @Summary Reset email template
// @Description Removes the override and returns the customization now in effect
// @Tags EmailTemplates
// @Produce json
// @Param type path string true "Template type"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/email-templates/{type} [delete]
func (ec *EmailTemplateController) ResetTemplate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	view, err := ec.templateService.Reset(c.Request.Context(), actor, templateType(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Şablon varsayılana döndü")
}

// PreviewTemplate godoc
// @Summary Preview email template
// @Description Renders the template with sample values. An unsaved customization may be sent in the body.
// @Tags EmailTemplates
// @Accept json
// @Produce json
// @Param type path string true "Template type"
// @Param request body request_models.PreviewTemplateRequest false "Draft customization and variables"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/email-templates/{type}/preview [post]
func (ec *EmailTemplateController) PreviewTemplate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req request_models.PreviewTemplateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondBindError(c, err, "Geçersiz istek")
			return
		}
	}

	rendered, err := ec.templateService.Preview(c.Request.Context(), actor, templateType(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rendered, "Önizleme oluşturuldu")
}

// SendTestEmail godoc
// @Summary Send a test email
// @Description Renders the template like preview and mails it to the caller's own address with a [TEST] subject prefix
// @Tags EmailTemplates
// @Accept json
// @Produce json
// @Param type path string true "Template type"
// @Param request body request_models.PreviewTemplateRequest false "Draft customization and variables"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/email-templates/{type}/test [post]
func (ec *EmailTemplateController) SendTestEmail(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req request_models.PreviewTemplateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondBindError(c, err, "Geçersiz istek")
			return
		}
	}

	result, err := ec.templateService.SendTest(c.Request.Context(), actor, templateType(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Test maili gönderildi")
}
