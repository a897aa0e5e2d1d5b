package response_models

type SdCardResponse struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	CapacityGB *int   `json:"capacity_gb"`
	Status     string `json:"status"`
}

type OpenLogResponse struct {
	ID           string `json:"id"`
	CardID       string `json:"card_id"`
	CardLabel    string `json:"card_label"`
	UserName     string `json:"user_name"`
	EventName    string `json:"event_name,omitempty"`
	SessionLabel string `json:"session_label,omitempty"`
	Purpose      string `json:"purpose,omitempty"`
	CheckedOutAt string `json:"checked_out_at"`
}
