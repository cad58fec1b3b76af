package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []Question {
	return []Question{
		{ID: "a", Prompt: "2+2?", Choices: []string{"3", "4"}, Answer: 1},
		{ID: "b", Prompt: "Go has generics?", Choices: []string{"True", "False"}, Answer: 0},
		{ID: "c", Prompt: "Pick C", Choices: []string{"A", "B", "C", "D"}, Answer: 2},
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
questions:
  - id: capital
    category: geography
    prompt: "Capital of France?"
    choices: ["Paris", "Rome", "Berlin"]
    answer: 0
  - prompt: "The sun is a star."
    choices: ["True", "False"]
    answer: 0
`)

	qs, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "capital", qs[0].ID)
	assert.Equal(t, "geography", qs[0].Category)
	assert.Equal(t, "q2", qs[1].ID)
	assert.Equal(t, "Paris", qs[0].CorrectChoice())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"empty", "questions: []", ErrNoQuestions},
		{"one choice", "questions:\n  - prompt: x\n    choices: [a]\n    answer: 0", ErrInvalidQuestion},
		{"answer out of range", "questions:\n  - prompt: x\n    choices: [a, b]\n    answer: 2", ErrInvalidQuestion},
		{"blank prompt", "questions:\n  - prompt: ' '\n    choices: [a, b]\n    answer: 0", ErrInvalidQuestion},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := Parse([]byte("questions: [:"))
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	q := sampleQuestions()[2]
	assert.True(t, q.Check(2))
	assert.False(t, q.Check(0))
	assert.False(t, q.Check(-1))
}

func TestBankNoRepeatUntilExhausted(t *testing.T) {
	bank, err := NewBank(sampleQuestions(), 42)
	require.NoError(t, err)
	assert.Equal(t, 3, bank.Len())

	for round := 0; round < 3; round++ {
		seen := make(map[string]bool)
		for i := 0; i < bank.Len(); i++ {
			q := bank.Next()
			assert.False(t, seen[q.ID], "round %d: %s repeated", round, q.ID)
			seen[q.ID] = true
		}
		assert.Equal(t, 0, bank.Remaining())
	}
}

func TestBankDeterministic(t *testing.T) {
	b1, err := NewBank(sampleQuestions(), 7)
	require.NoError(t, err)
	b2, err := NewBank(sampleQuestions(), 7)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, b1.Next().ID, b2.Next().ID)
	}
}

func TestNewBankErrors(t *testing.T) {
	_, err := NewBank(nil, 1)
	assert.ErrorIs(t, err, ErrNoQuestions)

	_, err = NewBank([]Question{{Prompt: "x", Choices: []string{"a"}}}, 1)
	assert.ErrorIs(t, err, ErrInvalidQuestion)
}
