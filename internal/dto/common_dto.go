package dto

// CreatedResponse is the payload for a successful POST.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MessageResponse is the payload for a successful PUT / DELETE.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the liveness probe payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
