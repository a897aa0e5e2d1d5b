package response_models

type EventResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
	Location  string `json:"location,omitempty"`
}

type SessionResponse struct {
	ID        string  `json:"id"`
	EventID   string  `json:"event_id"`
	Label     string  `json:"label"`
	Date      string  `json:"date"`
	TimeBlock *string `json:"time_block"`
}

type EventDetailResponse struct {
	EventResponse
	Sessions []SessionResponse `json:"sessions"`
}
