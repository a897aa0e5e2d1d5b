package response_models

type BookingResponse struct {
	ID           string `json:"id"`
	AthleteID    string `json:"athlete_id"`
	AthleteName  string `json:"athlete_name"`
	Team         string `json:"team,omitempty"`
	WeightClass  string `json:"weight_class,omitempty"`
	SessionID    string `json:"session_id"`
	SessionLabel string `json:"session_label"`
	SessionDate  string `json:"session_date"`
	EventName    string `json:"event_name"`
	PackageName  string `json:"package_name"`
	MusicLink    string `json:"music_link,omitempty"`
	MusicStart   string `json:"music_start,omitempty"`
	MusicEnd     string `json:"music_end,omitempty"`
	Paid         bool   `json:"paid"`
	Notes        string `json:"notes,omitempty"`
}

type SessionRosterResponse struct {
	Session SessionResponse   `json:"session"`
	Entries []BookingResponse `json:"entries"`
}

// RosterCSVRow is one line of the downloadable session run sheet.
type RosterCSVRow struct {
	Athlete     string `csv:"athlete"`
	Team        string `csv:"team"`
	WeightClass string `csv:"weight_class"`
	Package     string `csv:"package"`
	MusicLink   string `csv:"music_link"`
	MusicStart  string `csv:"music_start"`
	MusicEnd    string `csv:"music_end"`
	Paid        bool   `csv:"paid"`
	Notes       string `csv:"notes"`
}
