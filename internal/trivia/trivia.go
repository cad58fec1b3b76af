// Package trivia provides the question bank that decides whether a door
// survives a crossing attempt. Questions are multiple choice; true/false
// questions are simply two-choice questions.
package trivia

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoQuestions is returned when a bank is created without questions.
	ErrNoQuestions = errors.New("trivia: no questions")
	// ErrInvalidQuestion is returned for a malformed question entry.
	ErrInvalidQuestion = errors.New("trivia: invalid question")
)

// MaxChoices is the largest number of answers a question may offer.
const MaxChoices = 4

// Question is a single multiple-choice question.
// Answer is the zero-based index of the correct choice.
type Question struct {
	ID       string   `yaml:"id"`
	Category string   `yaml:"category"`
	Prompt   string   `yaml:"prompt"`
	Choices  []string `yaml:"choices"`
	Answer   int      `yaml:"answer"`
}

// Check reports whether choice (zero-based) is the correct answer.
func (q Question) Check(choice int) bool {
	return choice == q.Answer
}

// CorrectChoice returns the text of the correct answer.
func (q Question) CorrectChoice() string {
	if q.Answer < 0 || q.Answer >= len(q.Choices) {
		return ""
	}
	return q.Choices[q.Answer]
}

// Validate checks the question is answerable.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w %q: empty prompt", ErrInvalidQuestion, q.ID)
	}
	if len(q.Choices) < 2 || len(q.Choices) > MaxChoices {
		return fmt.Errorf("%w %q: need 2-%d choices, got %d", ErrInvalidQuestion, q.ID, MaxChoices, len(q.Choices))
	}
	if q.Answer < 0 || q.Answer >= len(q.Choices) {
		return fmt.Errorf("%w %q: answer index %d out of range", ErrInvalidQuestion, q.ID, q.Answer)
	}
	return nil
}

// questionFile is the on-disk YAML layout.
type questionFile struct {
	Questions []Question `yaml:"questions"`
}

// Parse decodes a YAML question file and validates every entry.
func Parse(data []byte) ([]Question, error) {
	var f questionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("trivia: parse questions: %w", err)
	}
	if len(f.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	for i, q := range f.Questions {
		if q.ID == "" {
			f.Questions[i].ID = fmt.Sprintf("q%d", i+1)
			q.ID = f.Questions[i].ID
		}
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Questions, nil
}

// Bank hands out questions in random order without repeating one until
// every question has been asked.
type Bank struct {
	questions []Question
	order     []int
	next      int
	rng       *rand.Rand
}

// NewBank creates a bank over the given questions. The seed makes the
// question order reproducible.
func NewBank(questions []Question, seed int64) (*Bank, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}

	b := &Bank{
		questions: append([]Question(nil), questions...),
		rng:       rand.New(rand.NewSource(seed)),
	}
	b.shuffle()
	return b, nil
}

func (b *Bank) shuffle() {
	b.order = b.rng.Perm(len(b.questions))
	b.next = 0
}

// Next returns the next question, reshuffling once the bank runs out.
func (b *Bank) Next() Question {
	if b.next >= len(b.order) {
		b.shuffle()
	}
	q := b.questions[b.order[b.next]]
	b.next++
	return q
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Remaining returns how many questions are left before the next reshuffle.
func (b *Bank) Remaining() int {
	return len(b.order) - b.next
}
