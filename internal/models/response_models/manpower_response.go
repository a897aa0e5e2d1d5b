package response_models

type AllocationResponse struct {
	ID           string `json:"id"`
	EventName    string `json:"event_name"`
	SessionLabel string `json:"session_label"`
	SessionDate  string `json:"session_date"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	Role         string `json:"role"`
	Notes        string `json:"notes,omitempty"`
}
