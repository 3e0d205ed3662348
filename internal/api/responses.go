package api

// errorResponse is the uniform error body
type errorResponse struct {
	Error string `json:"error"`
}

// updateStatusRequest is the body of a status transition
type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// updateStatusResponse confirms an applied transition
type updateStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
