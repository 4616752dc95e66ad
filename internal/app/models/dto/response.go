package dto

// SuccessResponse is returned when a submission was accepted by the webhook
type SuccessResponse struct {
	OK bool `json:"ok" example:"true"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// NewSuccessResponse creates the accepted-submission response
func NewSuccessResponse() SuccessResponse {
	return SuccessResponse{OK: true}
}
