package quiz

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultQuestions []byte

// ErrInvalidBank оборачивает все ошибки валидации банка вопросов.
var ErrInvalidBank = errors.New("invalid question bank")

// Bank — неизменяемый упорядоченный набор вопросов, общий для всех сессий.
type Bank struct {
	questions []Question
}

// NewBank проверяет вопросы и создаёт банк.
func NewBank(questions []Question) (*Bank, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	qs := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		qs[i] = q
	}

	return &Bank{questions: qs}, nil
}

// DefaultBank возвращает встроенный банк из questions.yaml.
func DefaultBank() (*Bank, error) {
	return parseBank(defaultQuestions, yaml.Unmarshal)
}

// LoadBank читает банк из JSON или YAML файла, формат определяется по расширению.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseBank(data, json.Unmarshal)
	case ".yaml", ".yml":
		return parseBank(data, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrInvalidBank, filepath.Ext(path))
	}
}

func parseBank(data []byte, unmarshal func([]byte, any) error) (*Bank, error) {
	var file struct {
		Questions []Question `json:"questions" yaml:"questions"`
	}
	if err := unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBank, err)
	}

	return NewBank(file.Questions)
}

// Get возвращает вопрос по индексу. Индекс вне диапазона приводит к панике.
func (b *Bank) Get(i int) Question {
	return b.questions[i]
}

// Count возвращает число вопросов.
func (b *Bank) Count() int {
	return len(b.questions)
}

// validateQuestions проверяет на корректность набор вопросов
func validateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: need at least one question", ErrInvalidBank)
	}

	for i, question := range questions {
		if strings.TrimSpace(question.Text) == "" {
			return fmt.Errorf("%w: missing text of question %d", ErrInvalidBank, i)
		}

		if len(question.Options) < 2 {
			return fmt.Errorf("%w: amount of options must be at least two in question %d", ErrInvalidBank, i)
		}

		seen := make(map[string]struct{}, len(question.Options))
		for _, option := range question.Options {
			if option == "" {
				return fmt.Errorf("%w: empty option in question %d", ErrInvalidBank, i)
			}
			if _, ok := seen[option]; ok {
				return fmt.Errorf("%w: duplicate option %q in question %d", ErrInvalidBank, option, i)
			}
			seen[option] = struct{}{}
		}

		if question.Correct < 0 {
			return fmt.Errorf("%w: index of correct answer must not be negative in question %d", ErrInvalidBank, i)
		}

		if question.Correct >= len(question.Options) {
			return fmt.Errorf("%w: index of correct answer in question %d is out of range", ErrInvalidBank, i)
		}
	}

	return nil
}
