package models

// GameStatus is the provider's lifecycle state for a game.
type GameStatus string

const (
	StatusFinal      GameStatus = "Final"
	StatusInProgress GameStatus = "InProgress"
	StatusScheduled  GameStatus = "Scheduled"
)

// Game is one entry of the GamesByDate response. Every field may be
// absent or null in the payload, hence the pointers.
type Game struct {
	GameID        *int        `json:"GameID,omitempty"`
	Status        *GameStatus `json:"Status,omitempty"`
	AwayTeam      *string     `json:"AwayTeam,omitempty"`
	HomeTeam      *string     `json:"HomeTeam,omitempty"`
	AwayTeamScore *int        `json:"AwayTeamScore,omitempty"`
	HomeTeamScore *int        `json:"HomeTeamScore,omitempty"`
	DateTime      *string     `json:"DateTime,omitempty"`
	Channel       *string     `json:"Channel,omitempty"`
	LastPlay      *string     `json:"LastPlay,omitempty"`
	Quarters      []Quarter   `json:"Quarters,omitempty"`
}

type Quarter struct {
	Number    *int `json:"Number,omitempty"`
	AwayScore *int `json:"AwayScore,omitempty"`
	HomeScore *int `json:"HomeScore,omitempty"`
}

// Ptr returns a pointer to v. Handy for building games in code.
func Ptr[T any](v T) *T {
	return &v
}
