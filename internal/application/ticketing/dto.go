package ticketing

// CreateEventRequest is the input for tracking a new event. Capacity
// arrives as text and is parsed with explicit error reporting; an empty
// capacity means zero.
type CreateEventRequest struct {
	Title    string `json:"title" binding:"required"`
	Date     string `json:"date" binding:"required,isodate"`
	Capacity string `json:"capacity"`
}

// EventResponse is the API shape of a tracked event.
type EventResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Capacity  int    `json:"capacity"`
	Sold      int    `json:"sold"`
	Remaining int    `json:"remaining"`
}

// ScanResponse reports the outcome of a scan attempt for an event.
type ScanResponse struct {
	EventID   string `json:"event_id"`
	Valid     bool   `json:"valid"`
	Sold      int    `json:"sold"`
	Remaining int    `json:"remaining"`
	ScannedAt string `json:"scanned_at"`
}
