// Package config provides YAML-based configuration loading for the trivia
// maze: grid size, scoring rules, difficulty presets and the question bank.
package config

// MazeConfig contains all configuration for a trivia maze game.
type MazeConfig struct {
	Maze      MazeSettings    `yaml:"maze"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Rules     RulesConfig     `yaml:"rules"`
	Questions QuestionsConfig `yaml:"questions"`
}

// MazeSettings defines the grid.
type MazeSettings struct {
	Size int `yaml:"size"` // Rooms per side; the goal is at (size-1, size-1)
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	CorrectAnswer int `yaml:"correct_answer"` // Points for a correct answer
	WrongAnswer   int `yaml:"wrong_answer"`   // Points lost for a wrong answer (score never drops below 0)
	GoalBonus     int `yaml:"goal_bonus"`     // Points for reaching the goal
}

// RulesConfig tunes how doors react to questions.
type RulesConfig struct {
	// ReaskOpenedDoors makes every crossing ask a question, even through a
	// door that was already answered correctly.
	ReaskOpenedDoors bool `yaml:"reask_opened_doors"`
}

// QuestionsConfig points at the question bank.
type QuestionsConfig struct {
	File string `yaml:"file"` // Path to a questions YAML file; empty uses the built-in bank
}
