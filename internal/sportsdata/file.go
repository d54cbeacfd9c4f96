package sportsdata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sawdustofmind/nba-scores-relay/internal/log"
	"github.com/sawdustofmind/nba-scores-relay/internal/models"
)

// FileSource replays a saved GamesByDate response from disk, whatever the date.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) GamesByDate(_ context.Context, date string) ([]models.Game, error) {
	games, err := LoadFile(s.path)
	if err != nil {
		return nil, err
	}
	log.Info("Replaying games from file",
		zap.String("file", s.path),
		zap.String("date", date),
		zap.Int("game_count", len(games)),
	)
	return games, nil
}

// LoadFile reads a JSON array of games as returned by GamesByDate.
func LoadFile(filePath string) ([]models.Game, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Error("Failed to close file", zap.Error(closeErr))
		}
	}()

	var games []models.Game
	if err := json.NewDecoder(file).Decode(&games); err != nil {
		return nil, fmt.Errorf("failed to decode games file: %w", err)
	}

	return games, nil
}
