package format

import (
	"strings"
	"testing"

	"github.com/sawdustofmind/nba-scores-relay/internal/models"
)

func status(s models.GameStatus) *models.GameStatus {
	return &s
}

func TestGame(t *testing.T) {
	tests := []struct {
		name     string
		game     models.Game
		expected string
	}{
		{
			name: "Scheduled game",
			game: models.Game{
				Status:   status(models.StatusScheduled),
				AwayTeam: models.Ptr("Lakers"),
				HomeTeam: models.Ptr("Celtics"),
				DateTime: models.Ptr("2024-01-01T19:00:00"),
				Channel:  models.Ptr("ESPN"),
			},
			expected: "Game Status: Scheduled\nLakers vs Celtics\nStart Time: 2024-01-01T19:00:00\nChannel: ESPN\n",
		},
		{
			name: "Final game with quarters",
			game: models.Game{
				Status:        status(models.StatusFinal),
				AwayTeam:      models.Ptr("BOS"),
				HomeTeam:      models.Ptr("MIA"),
				AwayTeamScore: models.Ptr(110),
				HomeTeamScore: models.Ptr(98),
				DateTime:      models.Ptr("2024-01-01T19:30:00"),
				Channel:       models.Ptr("TNT"),
				Quarters: []models.Quarter{
					{Number: models.Ptr(1), AwayScore: models.Ptr(30), HomeScore: models.Ptr(20)},
					{Number: models.Ptr(2), AwayScore: models.Ptr(25)},
				},
			},
			expected: "Game Status: Final\nBOS vs MIA\nFinal Score: 110-98\nStart Time: 2024-01-01T19:30:00\nChannel: TNT\nQuarter Scores: Q1: 30-20, Q2: 25-N/A\n",
		},
		{
			name:     "Final game without scores or quarters",
			game:     models.Game{Status: status(models.StatusFinal)},
			expected: "Game Status: Final\nUnknown vs Unknown\nFinal Score: N/A-N/A\nStart Time: Unknown\nChannel: Unknown\nQuarter Scores: \n",
		},
		{
			name: "In progress game",
			game: models.Game{
				Status:        status(models.StatusInProgress),
				AwayTeam:      models.Ptr("DEN"),
				HomeTeam:      models.Ptr("PHX"),
				AwayTeamScore: models.Ptr(55),
				HomeTeamScore: models.Ptr(60),
				Channel:       models.Ptr("ESPN"),
				LastPlay:      models.Ptr("Jokic makes 3-pt jump shot"),
				Quarters:      []models.Quarter{{Number: models.Ptr(1), AwayScore: models.Ptr(28), HomeScore: models.Ptr(30)}},
			},
			expected: "Game Status: InProgress\nDEN vs PHX\nCurrent Score: 55-60\nLast Play: Jokic makes 3-pt jump shot\nChannel: ESPN\n",
		},
		{
			name:     "Postponed game",
			game:     models.Game{Status: status("Postponed"), AwayTeam: models.Ptr("NYK"), HomeTeam: models.Ptr("CHI")},
			expected: "Game Status: Postponed\nNYK vs CHI\nDetails are unavailable at the moment.\n",
		},
		{
			name:     "Empty game",
			game:     models.Game{},
			expected: "Game Status: Unknown\nUnknown vs Unknown\nDetails are unavailable at the moment.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Game(tt.game)
			if got != tt.expected {
				t.Errorf("Game() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGame_InProgressDefaults(t *testing.T) {
	got := Game(models.Game{
		Status:   status(models.StatusInProgress),
		Quarters: []models.Quarter{{Number: models.Ptr(1)}},
	})

	if !strings.Contains(got, "Last Play: N/A\n") {
		t.Errorf("expected last play placeholder, got %q", got)
	}
	if !strings.Contains(got, "Current Score: N/A-N/A\n") {
		t.Errorf("expected score placeholder, got %q", got)
	}
	if strings.Contains(got, "Quarter Scores") || strings.Contains(got, "Q1:") {
		t.Errorf("in progress block must not list quarters, got %q", got)
	}
}

func TestGame_FinalScoreDefaults(t *testing.T) {
	tests := []struct {
		name  string
		away  *int
		home  *int
		score string
	}{
		{"both present", models.Ptr(101), models.Ptr(99), "Final Score: 101-99\n"},
		{"away missing", nil, models.Ptr(99), "Final Score: N/A-99\n"},
		{"home missing", models.Ptr(101), nil, "Final Score: 101-N/A\n"},
		{"both missing", nil, nil, "Final Score: N/A-N/A\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Game(models.Game{
				Status:        status(models.StatusFinal),
				AwayTeamScore: tt.away,
				HomeTeamScore: tt.home,
			})
			if !strings.Contains(got, tt.score) {
				t.Errorf("Game() = %q, want substring %q", got, tt.score)
			}
		})
	}
}

func TestGame_UnrecognizedStatusSuffix(t *testing.T) {
	for _, s := range []string{"", "Canceled", "Suspended", "final"} {
		got := Game(models.Game{Status: status(models.GameStatus(s))})
		if !strings.HasSuffix(got, "Details are unavailable at the moment.\n") {
			t.Errorf("status %q: got %q", s, got)
		}
	}
}

func TestMessage(t *testing.T) {
	a := models.Game{Status: status(models.StatusScheduled), AwayTeam: models.Ptr("Lakers"), HomeTeam: models.Ptr("Celtics")}
	b := models.Game{Status: status("Canceled")}

	t.Run("no games", func(t *testing.T) {
		if got := Message(nil); got != "No games available for today." {
			t.Errorf("Message(nil) = %q", got)
		}
		if got := Message([]models.Game{}); got != NoGames {
			t.Errorf("Message(empty) = %q", got)
		}
	})

	t.Run("single game", func(t *testing.T) {
		if got, want := Message([]models.Game{a}), Game(a); got != want {
			t.Errorf("Message() = %q, want %q", got, want)
		}
	})

	t.Run("two games", func(t *testing.T) {
		want := Game(a) + "\n---\n" + Game(b)
		if got := Message([]models.Game{a, b}); got != want {
			t.Errorf("Message() = %q, want %q", got, want)
		}
	})
}
