package request_models

// Dates travel as YYYY-MM-DD strings and are parsed by the service so a
// bad date reports the dedicated invalid-date error.
type CreateEventRequest struct {
	Name      string `json:"name"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
	Location  string `json:"location"`
}

type CreateSessionRequest struct {
	EventID   string `json:"event_id"`
	Label     string `json:"label"`
	Date      string `json:"date"`
	TimeBlock string `json:"time_block"`
}
