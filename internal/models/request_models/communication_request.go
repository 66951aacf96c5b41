package request_models

type BulkEmailRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
	// HTMLContent replaces the generated body when set.
	HTMLContent string `json:"htmlContent"`
	// Filter is "all", "active", "inactive" or a package id. Empty means all.
	Filter string `json:"filter"`
}

type CommunicationHistoryQuery struct {
	Type string `form:"type"`
}
