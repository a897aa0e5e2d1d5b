package response_models

// DashboardResponse is the landing-page snapshot: card fleet state,
// outstanding edit work and the event list, newest first.
type DashboardResponse struct {
	TotalSdCards int64           `json:"total_sd_cards"`
	SdCardsInUse int64           `json:"sd_cards_in_use"`
	PendingEdits int64           `json:"pending_edits"`
	Events       []EventResponse `json:"events"`
}
