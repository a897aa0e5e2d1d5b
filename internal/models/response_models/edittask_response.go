package response_models

type EditTaskResponse struct {
	ID               string `json:"id"`
	AthleteSessionID string `json:"athlete_session_id"`
	AthleteName      string `json:"athlete_name"`
	Team             string `json:"team,omitempty"`
	SessionLabel     string `json:"session_label"`
	EventName        string `json:"event_name"`
	AssigneeID       string `json:"assignee_id"`
	AssigneeName     string `json:"assignee_name"`
	Type             string `json:"type"`
	Status           string `json:"status"`
	DeliverableLink  string `json:"deliverable_link,omitempty"`
	UpdatedAt        string `json:"updated_at"`
}
