package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UpdateResult resultado de una actualización puntual.
type UpdateResult struct {
	MatchedCount int64 `json:"matchedCount"`
}

// DeleteResult resultado de una eliminación.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
