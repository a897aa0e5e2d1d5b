package request_models

type CreateCardRequest struct {
	Label      string `json:"label"`
	CapacityGB *int   `json:"capacity_gb"`
}

// CheckoutRequest takes a card out in the calling user's name. Event and
// session context are optional.
type CheckoutRequest struct {
	SdCardID  string `json:"sd_card_id"`
	EventID   string `json:"event_id"`
	SessionID string `json:"session_id"`
	Purpose   string `json:"purpose"`
}

type ReturnRequest struct {
	LogID string `json:"log_id"`
}
