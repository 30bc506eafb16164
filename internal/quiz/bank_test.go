package quiz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewBank_Valid(t *testing.T) {
	bank, err := NewBank([]Question{
		{Text: "What is 2+2?", Options: []string{"3", "4", "5", "6"}, Correct: 1},
		{Text: "Sky?", Image: "./images/sky.jpg", Options: []string{"Blue", "Green"}, Correct: 0},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, bank.Count())
	assert.Equal(t, "What is 2+2?", bank.Get(0).Text)
	assert.Equal(t, 1, bank.Get(0).Correct)
	assert.Equal(t, "./images/sky.jpg", bank.Get(1).Image)
}

func TestNewBank_CopiesOptions(t *testing.T) {
	options := []string{"A", "B"}
	bank, err := NewBank([]Question{{Text: "Q", Options: options, Correct: 0}})
	require.NoError(t, err)

	options[0] = "changed"
	assert.Equal(t, "A", bank.Get(0).Options[0])
}

func TestNewBank_Invalid(t *testing.T) {
	testCases := []struct {
		name      string
		questions []Question
	}{
		{
			name:      "no questions",
			questions: nil,
		},
		{
			name:      "missing text",
			questions: []Question{{Options: []string{"A", "B"}}},
		},
		{
			name:      "too few options",
			questions: []Question{{Text: "Q", Options: []string{"A"}}},
		},
		{
			name:      "empty option",
			questions: []Question{{Text: "Q", Options: []string{"A", ""}}},
		},
		{
			name:      "duplicate option",
			questions: []Question{{Text: "Q", Options: []string{"A", "A"}}},
		},
		{
			name:      "correct index negative",
			questions: []Question{{Text: "Q", Options: []string{"A", "B", "C"}, Correct: -1}},
		},
		{
			name:      "correct index out of range",
			questions: []Question{{Text: "Q", Options: []string{"A", "B", "C"}, Correct: 5}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bank, err := NewBank(tc.questions)
			assert.ErrorIs(t, err, ErrInvalidBank)
			assert.Nil(t, bank)
		})
	}
}

func TestLoadBank_JSON(t *testing.T) {
	path := writeFile(t, "questions.json", `{
		"questions": [
			{"text": "Q1", "image": "https://example.com/q1.png", "options": ["A", "B"], "correct": 1}
		]
	}`)

	bank, err := LoadBank(path)
	require.NoError(t, err)
	require.Equal(t, 1, bank.Count())
	assert.Equal(t, "https://example.com/q1.png", bank.Get(0).Image)
	assert.Equal(t, 1, bank.Get(0).Correct)
}

func TestLoadBank_YAML(t *testing.T) {
	path := writeFile(t, "questions.yml", `
questions:
  - text: Q1
    options: [A, B, C]
    correct: 2
  - text: Q2
    options: [X, Y]
    correct: 0
`)

	bank, err := LoadBank(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bank.Count())
	assert.Equal(t, []string{"A", "B", "C"}, bank.Get(0).Options)
	assert.Empty(t, bank.Get(1).Image)
}

func TestLoadBank_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadBank(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := LoadBank(writeFile(t, "bad.json", `{invalid json}`))
		assert.ErrorIs(t, err, ErrInvalidBank)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadBank(writeFile(t, "questions.txt", `Q1 1`))
		assert.ErrorIs(t, err, ErrInvalidBank)
	})

	t.Run("invalid question", func(t *testing.T) {
		_, err := LoadBank(writeFile(t, "questions.yaml", "questions:\n  - text: Q\n    options: [A]\n"))
		assert.ErrorIs(t, err, ErrInvalidBank)
	})
}

func TestDefaultBank(t *testing.T) {
	bank, err := DefaultBank()
	require.NoError(t, err)
	require.Equal(t, 10, bank.Count())

	for i := 0; i < bank.Count(); i++ {
		q := bank.Get(i)
		assert.NotEmpty(t, q.Image, "question %d", i)
		assert.Len(t, q.Options, 4, "question %d", i)
	}

	assert.Equal(t, "$40,000", bank.Get(9).Options[bank.Get(9).Correct])
}
