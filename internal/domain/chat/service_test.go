package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRepository struct {
	created []*Interaction
	history []Interaction
	deleted int64
	err     error
}

func (m *mockRepository) Create(ctx context.Context, interaction *Interaction) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, interaction)
	return nil
}

func (m *mockRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Interaction, error) {
	return m.history, m.err
}

func (m *mockRepository) FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]Interaction, error) {
	return m.history, m.err
}

func (m *mockRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return m.deleted, m.err
}

type mockResponder struct {
	reply string
	err   error

	gotPrompt string
}

func (m *mockResponder) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.gotPrompt = prompt
	return m.reply, m.err
}

func TestReply(t *testing.T) {
	responder := &mockResponder{reply: "Photosynthesis converts light into chemical energy."}
	svc := NewService(&mockRepository{}, responder, zap.NewNop())

	reply, err := svc.Reply(context.Background(), uuid.New(), "What is photosynthesis?")
	require.NoError(t, err)
	assert.Equal(t, responder.reply, reply)
	// The tutor persona frames every prompt
	assert.Contains(t, responder.gotPrompt, "Sparky")
	assert.Contains(t, responder.gotPrompt, "What is photosynthesis?")
}

func TestReplyEmptyMessage(t *testing.T) {
	svc := NewService(&mockRepository{}, &mockResponder{}, zap.NewNop())

	_, err := svc.Reply(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReplyResponderFailure(t *testing.T) {
	svc := NewService(&mockRepository{}, &mockResponder{err: errors.New("timeout")}, zap.NewNop())

	_, err := svc.Reply(context.Background(), uuid.New(), "hello")
	require.Error(t, err)
}

func TestSaveInteractionValidation(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, &mockResponder{}, zap.NewNop())

	tests := []struct {
		name  string
		input SaveInteractionInput
		valid bool
	}{
		{"both fields", SaveInteractionInput{UserID: uuid.New(), UserMessage: "q", AIResponse: "a"}, true},
		{"missing response", SaveInteractionInput{UserID: uuid.New(), UserMessage: "q"}, false},
		{"missing message", SaveInteractionInput{UserID: uuid.New(), AIResponse: "a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interaction, err := svc.SaveInteraction(context.Background(), tt.input)
			if !tt.valid {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, interaction.ID)
			assert.False(t, interaction.Timestamp.IsZero())
		})
	}
}
