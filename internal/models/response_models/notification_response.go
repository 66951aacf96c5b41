package response_models

type UnreadCount struct {
	Count int64 `json:"count"`
}

type MarkedRead struct {
	Updated int64 `json:"updated"`
}
