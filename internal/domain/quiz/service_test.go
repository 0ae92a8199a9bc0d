package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRepository struct {
	created []*Result
	results []Result
	err     error
}

func (m *mockRepository) Create(ctx context.Context, result *Result) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, result)
	return nil
}

func (m *mockRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Result, error) {
	return m.results, m.err
}

func (m *mockRepository) FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]Result, error) {
	return m.results, m.err
}

type mockGenerator struct {
	payload string
	err     error
}

func (m *mockGenerator) GenerateJSON(ctx context.Context, prompt string, out interface{}) error {
	if m.err != nil {
		return m.err
	}
	return json.Unmarshal([]byte(m.payload), out)
}

func TestSaveResultValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   SaveResultInput
		wantErr error
	}{
		{
			name:    "valid result",
			input:   SaveResultInput{UserID: uuid.New(), Topic: "algebra", Score: 7, TotalQuestions: 10},
			wantErr: nil,
		},
		{
			name:    "perfect score",
			input:   SaveResultInput{UserID: uuid.New(), Topic: "algebra", Score: 10, TotalQuestions: 10},
			wantErr: nil,
		},
		{
			name:    "zero score",
			input:   SaveResultInput{UserID: uuid.New(), Topic: "algebra", Score: 0, TotalQuestions: 10},
			wantErr: nil,
		},
		{
			name:    "empty topic",
			input:   SaveResultInput{UserID: uuid.New(), Score: 5, TotalQuestions: 10},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero questions",
			input:   SaveResultInput{UserID: uuid.New(), Topic: "algebra", Score: 0, TotalQuestions: 0},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative score",
			input:   SaveResultInput{UserID: uuid.New(), Topic: "algebra", Score: -1, TotalQuestions: 10},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "score above total",
			input:   SaveResultInput{UserID: uuid.New(), Topic: "algebra", Score: 11, TotalQuestions: 10},
			wantErr: ErrInvalidScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			svc := NewService(repo, &mockGenerator{}, zap.NewNop())

			result, err := svc.SaveResult(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.created)
				return
			}

			require.NoError(t, err)
			require.Len(t, repo.created, 1)
			assert.Equal(t, tt.input.Topic, result.Topic)
			assert.Equal(t, tt.input.Score, result.Score)
			assert.NotEqual(t, uuid.Nil, result.ID)
			assert.False(t, result.Timestamp.IsZero())
		})
	}
}

func TestGenerateQuiz(t *testing.T) {
	payload := `[
		{"question": "2+2?", "options": ["4", "3", "5", "6"], "correct_answer": "4"},
		{"question": "3*3?", "options": ["9", "6", "12", "3"], "correct_answer": "9"}
	]`

	svc := NewService(&mockRepository{}, &mockGenerator{payload: payload}, zap.NewNop())

	questions, err := svc.GenerateQuiz(context.Background(), "arithmetic")
	require.NoError(t, err)
	require.Len(t, questions, 2)

	// Shuffling must preserve the option set and the correct answer
	for _, q := range questions {
		assert.Len(t, q.Options, 4)
		assert.Contains(t, q.Options, q.CorrectAnswer)
	}
}

func TestGenerateQuizEmptySubject(t *testing.T) {
	svc := NewService(&mockRepository{}, &mockGenerator{}, zap.NewNop())

	_, err := svc.GenerateQuiz(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateQuizGeneratorFailure(t *testing.T) {
	svc := NewService(&mockRepository{}, &mockGenerator{err: errors.New("upstream 500")}, zap.NewNop())

	_, err := svc.GenerateQuiz(context.Background(), "arithmetic")
	require.Error(t, err)
}
