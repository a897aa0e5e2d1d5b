package request_models

type CreateTaskRequest struct {
	AthleteSessionID string `json:"athlete_session_id"`
	AssignedToUserID string `json:"assigned_to_user_id"`
	Type             string `json:"type"`
}

// UpdateTaskRequest carries partial updates: an empty field leaves the
// stored value untouched, it never clears it.
type UpdateTaskRequest struct {
	Status          string `json:"status"`
	DeliverableLink string `json:"deliverable_link"`
}
