package casefile

// CreateCaseRequest is the input for logging a new case note.
type CreateCaseRequest struct {
	Title string `json:"title" binding:"required"`
	Note  string `json:"note"`
}

// CaseResponse is the API shape of a case note.
type CaseResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Note  string `json:"note"`
}
