package request_models

// CreateBookingRequest books an athlete into a session. Notes is stored
// on the booking and, when the athlete row is created by this call, on
// the athlete as well.
type CreateBookingRequest struct {
	AthleteName string `json:"athlete_name"`
	Team        string `json:"team"`
	WeightClass string `json:"weight_class"`
	SessionID   string `json:"session_id"`
	PackageID   string `json:"package_id"`
	MusicLink   string `json:"music_link"`
	MusicStart  string `json:"music_start"`
	MusicEnd    string `json:"music_end"`
	Paid        bool   `json:"paid"`
	Notes       string `json:"notes"`
}
