package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EmailTemplateType string

const (
	TemplateVerifyEmail          EmailTemplateType = "VERIFY_EMAIL"
	TemplateWelcomePhotographer  EmailTemplateType = "WELCOME_PHOTOGRAPHER"
	TemplateCustomerStatusUpdate EmailTemplateType = "CUSTOMER_STATUS_UPDATE"
	TemplatePlanUpdated          EmailTemplateType = "PLAN_UPDATED"
)

var EmailTemplateTypes = []EmailTemplateType{
	TemplateVerifyEmail,
	TemplateWelcomePhotographer,
	TemplateCustomerStatusUpdate,
	TemplatePlanUpdated,
}

func (t EmailTemplateType) Valid() bool {
	for _, v := range EmailTemplateTypes {
		if v == t {
			return true
		}
	}
	return false
}

// TemplateCustomization holds the overridable parts of a branded email.
// Empty fields fall back to the next layer.
type TemplateCustomization struct {
	LogoURL      string `json:"logoUrl,omitempty"`
	PrimaryColor string `json:"primaryColor,omitempty"`
	Subject      string `json:"subject,omitempty"`
	HeaderText   string `json:"headerText,omitempty"`
	BodyText     string `json:"bodyText,omitempty"`
	ButtonText   string `json:"buttonText,omitempty"`
	FooterText   string `json:"footerText,omitempty"`
	CompanyName  string `json:"companyName,omitempty"`
}

// Merge overlays the non-empty fields of o on top of c.
func (c TemplateCustomization) Merge(o TemplateCustomization) TemplateCustomization {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return TemplateCustomization{
		LogoURL:      pick(c.LogoURL, o.LogoURL),
		PrimaryColor: pick(c.PrimaryColor, o.PrimaryColor),
		Subject:      pick(c.Subject, o.Subject),
		HeaderText:   pick(c.HeaderText, o.HeaderText),
		BodyText:     pick(c.BodyText, o.BodyText),
		ButtonText:   pick(c.ButtonText, o.ButtonText),
		FooterText:   pick(c.FooterText, o.FooterText),
		CompanyName:  pick(c.CompanyName, o.CompanyName),
	}
}

// EmailTemplate is an override row. A nil PhotographerID marks the
// system-wide override.
type EmailTemplate struct {
	BaseModel
	PhotographerID *uuid.UUID                                `gorm:"type:uuid;uniqueIndex:idx_template_owner_type" json:"photographerId,omitempty"`
	TemplateType   EmailTemplateType                         `gorm:"type:varchar(32);uniqueIndex:idx_template_owner_type;not null" json:"templateType"`
	Customization  datatypes.JSONType[TemplateCustomization] `json:"customization"`
	IsActive       bool                                      `gorm:"default:true" json:"isActive"`
}
