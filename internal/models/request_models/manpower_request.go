package request_models

type AllocationRequest struct {
	EventID   string `json:"event_id"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	Notes     string `json:"notes"`
}
