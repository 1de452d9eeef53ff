package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"github.com/Sunilkumarmehta2002/swipemyhood/apperrors"
	"github.com/Sunilkumarmehta2002/swipemyhood/models"
	"github.com/Sunilkumarmehta2002/swipemyhood/repository"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateFields(ctx context.Context, id string, fields bson.M) error
}

// AuthService is the identity provider adapter: registration, login and the
// default-admin bootstrap.
type AuthService struct {
	users  UserStore
	tokens *TokenService
}

func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", apperrors.ErrEmailExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:         uuid.NewString(),
		Email:      email,
		Name:       name,
		Password:   string(hashed),
		CreatedAt:  now,
		LastActive: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	// Best effort; a stale last_active is not worth failing a login over.
	if err := s.users.UpdateFields(ctx, user.ID, bson.M{"last_active": time.Now().UTC()}); err != nil {
		zap.L().Warn("failed to update last_active", zap.String("user_id", user.ID), zap.Error(err))
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, token, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperrors.ErrUnauthorized
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// EnsureDefaultAdmin creates the platform admin account on first boot, or
// promotes an existing account with that email. An existing password is never
// overwritten.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, email, password string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		if user.IsAdmin && user.SuperAdmin {
			return nil
		}
		return s.users.UpdateFields(ctx, user.ID, bson.M{"is_admin": true, "super_admin": true})
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &models.User{
		ID:         uuid.NewString(),
		Email:      email,
		Name:       "Admin User",
		Password:   string(hashed),
		IsAdmin:    true,
		SuperAdmin: true,
		CreatedAt:  now,
		LastActive: now,
	}
	return s.users.Create(ctx, admin)
}
