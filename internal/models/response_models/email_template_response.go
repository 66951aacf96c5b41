package response_models

import "fotopanel/internal/models/db_models"

// TemplateView is the effective customization of one template type and
// where it came from: "photographer", "system" or "default".
type TemplateView struct {
	Type          db_models.EmailTemplateType     `json:"type"`
	Source        string                          `json:"source"`
	Customization db_models.TemplateCustomization `json:"customization"`
	Placeholders  []string                        `json:"placeholders"`
}

type RenderedEmail struct {
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type TestMailResult struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
}
