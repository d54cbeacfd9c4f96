package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sawdustofmind/nba-scores-relay/internal/models"
)

const (
	unknown      = "Unknown"
	notAvailable = "N/A"

	// Separator sits between two game blocks in the published message.
	Separator = "\n---\n"

	// NoGames is the whole message when the provider returns no games.
	NoGames = "No games available for today."
)

// Message assembles the notification body for all games of the day.
func Message(games []models.Game) string {
	if len(games) == 0 {
		return NoGames
	}

	blocks := make([]string, 0, len(games))
	for _, g := range games {
		blocks = append(blocks, Game(g))
	}
	return strings.Join(blocks, Separator)
}

// Game renders a single game as a text block terminated by a newline.
func Game(g models.Game) string {
	status := unknown
	if g.Status != nil {
		status = string(*g.Status)
	}
	matchup := fmt.Sprintf("%s vs %s", text(g.AwayTeam, unknown), text(g.HomeTeam, unknown))
	score := fmt.Sprintf("%s-%s", number(g.AwayTeamScore), number(g.HomeTeamScore))
	startTime := text(g.DateTime, unknown)
	channel := text(g.Channel, unknown)

	var b strings.Builder
	fmt.Fprintf(&b, "Game Status: %s\n%s\n", status, matchup)

	switch models.GameStatus(status) {
	case models.StatusFinal:
		fmt.Fprintf(&b, "Final Score: %s\n", score)
		fmt.Fprintf(&b, "Start Time: %s\n", startTime)
		fmt.Fprintf(&b, "Channel: %s\n", channel)
		fmt.Fprintf(&b, "Quarter Scores: %s\n", quarters(g.Quarters))
	case models.StatusInProgress:
		fmt.Fprintf(&b, "Current Score: %s\n", score)
		fmt.Fprintf(&b, "Last Play: %s\n", text(g.LastPlay, notAvailable))
		fmt.Fprintf(&b, "Channel: %s\n", channel)
	case models.StatusScheduled:
		fmt.Fprintf(&b, "Start Time: %s\n", startTime)
		fmt.Fprintf(&b, "Channel: %s\n", channel)
	default:
		b.WriteString("Details are unavailable at the moment.\n")
	}

	return b.String()
}

func quarters(qs []models.Quarter) string {
	parts := make([]string, 0, len(qs))
	for _, q := range qs {
		parts = append(parts, fmt.Sprintf("Q%s: %s-%s", number(q.Number), number(q.AwayScore), number(q.HomeScore)))
	}
	return strings.Join(parts, ", ")
}

func text(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func number(n *int) string {
	if n == nil {
		return notAvailable
	}
	return strconv.Itoa(*n)
}
