package db_models

type CardStatus string

const (
	CardStatusAvailable  CardStatus = "available"
	CardStatusCheckedOut CardStatus = "checked_out"
	// CardStatusLost is set by direct administrative edit only; a lost
	// card refuses checkout like any other non-available card.
	CardStatusLost CardStatus = "lost"
)

// SdCard is a physical memory card in the shooting kit.
type SdCard struct {
	BaseModel
	Label      string `gorm:"unique"`
	CapacityGB *int
	Status     CardStatus `gorm:"default:available"`
}
