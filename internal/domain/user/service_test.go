package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct {
	byEmail map[string]*User
	byID    map[uuid.UUID]*User
	updated *User
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		byEmail: make(map[string]*User),
		byID:    make(map[uuid.UUID]*User),
	}
}

func (m *mockRepository) Create(ctx context.Context, u *User) error {
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return nil
}

func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (m *mockRepository) Update(ctx context.Context, u *User) error {
	m.updated = u
	m.byID[u.ID] = u
	return nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "nishu",
		Email:    "nishu@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	input := RegisterInput{Username: "nishu", Email: "nishu@example.com", Password: "secret123"}
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthenticate(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	registered, err := svc.Register(context.Background(), RegisterInput{
		Username: "nishu",
		Email:    "nishu@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		u, err := svc.Authenticate(context.Background(), "nishu@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nishu@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "ghost@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	registered, err := svc.Register(context.Background(), RegisterInput{
		Username: "nishu",
		Email:    "nishu@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	city := "Pune"
	age := 21
	updated, err := svc.UpdateProfile(context.Background(), registered.ID, UpdateProfileInput{
		City: &city,
		Age:  &age,
	})
	require.NoError(t, err)

	assert.Equal(t, "Pune", updated.City)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 21, *updated.Age)
	// Untouched fields survive
	assert.Equal(t, "nishu", updated.Username)
	assert.Equal(t, "nishu@example.com", updated.Email)
}
