package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sunilkumarmehta2002/swipemyhood/apperrors"
	"github.com/Sunilkumarmehta2002/swipemyhood/models"
	"github.com/Sunilkumarmehta2002/swipemyhood/repository"
	"github.com/Sunilkumarmehta2002/swipemyhood/services"
)

// --- Mock Store ---

type mockUserStore struct {
	users map[string]*models.User // keyed by ID
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]*models.User)}
}

func (m *mockUserStore) Create(_ context.Context, user *models.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserStore) UpdateFields(_ context.Context, id string, fields bson.M) error {
	user, ok := m.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	if v, ok := fields["is_admin"]; ok {
		user.IsAdmin = v.(bool)
	}
	if v, ok := fields["super_admin"]; ok {
		user.SuperAdmin = v.(bool)
	}
	return nil
}

// --- Helpers ---

func newAuthService(store *mockUserStore) *services.AuthService {
	return services.NewAuthService(store, services.NewTokenService("test-secret"))
}

// --- Tests ---

func TestAuth_Register(t *testing.T) {
	store := newMockUserStore()
	svc := newAuthService(store)

	user, token, err := svc.Register(context.Background(), "Jas", "jas@example.com", "hunter2secret")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jas@example.com", user.Email)
	assert.NotEqual(t, "hunter2secret", user.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2secret")))
	assert.False(t, user.IsAdmin)
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	store := newMockUserStore()
	svc := newAuthService(store)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Jas", "jas@example.com", "hunter2secret")
	assert.NoError(t, err)

	_, _, err = svc.Register(ctx, "Other", "jas@example.com", "different")
	assert.ErrorIs(t, err, apperrors.ErrEmailExists)
}

func TestAuth_Login(t *testing.T) {
	store := newMockUserStore()
	svc := newAuthService(store)
	ctx := context.Background()

	svc.Register(ctx, "Jas", "jas@example.com", "hunter2secret")

	user, token, err := svc.Login(ctx, "jas@example.com", "hunter2secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jas@example.com", user.Email)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	store := newMockUserStore()
	svc := newAuthService(store)
	ctx := context.Background()

	svc.Register(ctx, "Jas", "jas@example.com", "hunter2secret")

	_, _, err := svc.Login(ctx, "jas@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newMockUserStore())

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuth_TokenRoundTrip(t *testing.T) {
	store := newMockUserStore()
	svc := newAuthService(store)
	tokens := services.NewTokenService("test-secret")
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Jas", "jas@example.com", "hunter2secret")
	assert.NoError(t, err)

	claims, err := tokens.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.False(t, claims.IsAdmin)
}

func TestAuth_TokenRejectsWrongSecret(t *testing.T) {
	svc := newAuthService(newMockUserStore())

	_, token, err := svc.Register(context.Background(), "Jas", "jas@example.com", "hunter2secret")
	assert.NoError(t, err)

	other := services.NewTokenService("different-secret")
	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestAuth_EnsureDefaultAdmin_CreatesAccount(t *testing.T) {
	store := newMockUserStore()
	svc := newAuthService(store)
	ctx := context.Background()

	err := svc.EnsureDefaultAdmin(ctx, "admin@swipemyhood.in", "admin123456")
	assert.NoError(t, err)

	admin, err := store.FindByEmail(ctx, "admin@swipemyhood.in")
	assert.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.True(t, admin.SuperAdmin)
}

func TestAuth_EnsureDefaultAdmin_PromotesExistingWithoutPasswordReset(t *testing.T) {
	store := newMockUserStore()
	svc := newAuthService(store)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "Jas", "admin@swipemyhood.in", "myownpassword")
	assert.NoError(t, err)

	err = svc.EnsureDefaultAdmin(ctx, "admin@swipemyhood.in", "admin123456")
	assert.NoError(t, err)

	promoted, err := store.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.True(t, promoted.IsAdmin)
	assert.True(t, promoted.SuperAdmin)
	assert.Equal(t, user.Password, promoted.Password, "existing password must not be overwritten")
}

func TestAuth_CurrentUser_UnknownID(t *testing.T) {
	svc := newAuthService(newMockUserStore())

	_, err := svc.CurrentUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
