package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

//go:embed defaults/questions.yaml
var defaultQuestionsYAML []byte

// DefaultMazeConfig returns the built-in maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Maze: MazeSettings{
			Size: 8,
		},
		Scoring: ScoringConfig{
			CorrectAnswer: 100,
			WrongAnswer:   25,
			GoalBonus:     500,
		},
		Rules: RulesConfig{
			ReaskOpenedDoors: false,
		},
	}
}

// DefaultQuestionsYAML returns the embedded question bank.
func DefaultQuestionsYAML() []byte {
	return defaultQuestionsYAML
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "maze":
		return defaultMazeYAML
	case "questions":
		return defaultQuestionsYAML
	default:
		return nil
	}
}
