package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/trivia-maze/internal/trivia"
)

// ErrInvalidConfig is returned when a loaded config cannot drive a game.
var ErrInvalidConfig = errors.New("config: invalid")

// LoadMaze loads the maze configuration.
// Search order: customPath -> ~/.trivmaze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func LoadMaze(customPath string) (MazeConfig, error) {
	cfg := DefaultMazeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("maze.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultMazeConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, candidate.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "maze.yaml")); err == nil {
		candidate := DefaultMazeConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate checks that the config describes a playable game.
func (c MazeConfig) Validate() error {
	if c.Maze.Size < 1 {
		return fmt.Errorf("%w: maze.size must be at least 1, got %d", ErrInvalidConfig, c.Maze.Size)
	}
	if c.Scoring.CorrectAnswer < 0 || c.Scoring.WrongAnswer < 0 || c.Scoring.GoalBonus < 0 {
		return fmt.Errorf("%w: scoring values must not be negative", ErrInvalidConfig)
	}
	return nil
}

// LoadQuestions loads the question bank named by cfg.
// An empty file path selects the embedded bank.
func LoadQuestions(cfg QuestionsConfig) ([]trivia.Question, error) {
	if cfg.File == "" {
		return trivia.Parse(defaultQuestionsYAML)
	}

	path, err := expandHome(cfg.File)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions %s: %w", path, err)
	}
	return trivia.Parse(data)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trivmaze", "configs", filename)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
