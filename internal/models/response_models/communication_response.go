package response_models

import "github.com/google/uuid"

type BulkEmailResult struct {
	LogID  uuid.UUID `json:"logId"`
	Sent   int       `json:"sent"`
	Failed int       `json:"failed"`
	Total  int       `json:"total"`
}
