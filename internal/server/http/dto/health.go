package dto

// HealthResponse is returned by GET /.
type HealthResponse struct {
	Status string `json:"status"`
	Region string `json:"region"`
}
