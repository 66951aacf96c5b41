package request_models

import "fotopanel/internal/models/db_models"

type PreviewTemplateRequest struct {
	Customization *db_models.TemplateCustomization `json:"customization"`
	Variables     map[string]string                `json:"variables"`
}
