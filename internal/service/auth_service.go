package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"english_coaching/internal/model"
	"english_coaching/internal/repository"
	"english_coaching/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

// IdentifierKind classifies a login identifier.
type IdentifierKind int

const (
	IdentifierEmail IdentifierKind = iota
	IdentifierUsername
)

// ClassifyIdentifier decides whether a login identifier is an email or a
// username: anything containing '@' is treated as an email. This is a
// dispatch heuristic, not RFC 5322 validation.
func ClassifyIdentifier(login string) IdentifierKind {
	if strings.Contains(login, "@") {
		return IdentifierEmail
	}
	return IdentifierUsername
}

// RegisterInput carries the registration request into the service.
type RegisterInput struct {
	DisplayName string
	Email       *string
	Username    *string
	Password    string
}

// AuthService provides registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, string, error)
	Login(ctx context.Context, login, password string) (*model.User, string, error)
	RefreshToken(token string) (string, error)
	VerifyToken(token string) (*utils.JWTClaims, error)
	VerifyAndGetUser(ctx context.Context, token string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, status string) (*model.User, error)
}

type authService struct {
	userRepo          repository.UserRepository
	jwtUtil           *utils.JWTUtil
	initialAdminEmail string
}

// NewAuthService creates a new AuthService. initialAdminEmail may be
// empty; when set, a registration with that exact email gets the admin
// role (first-run bootstrap).
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, initialAdminEmail string) AuthService {
	return &authService{
		userRepo:          userRepo,
		jwtUtil:           jwtUtil,
		initialAdminEmail: initialAdminEmail,
	}
}

// Register creates a new account with the student role and pending
// status, then immediately issues a token for it.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	if strings.TrimSpace(in.DisplayName) == "" {
		return nil, "", fmt.Errorf("%w: display name must not be empty", ErrValidation)
	}
	if in.Email == nil && in.Username == nil {
		return nil, "", fmt.Errorf("%w: either email or username must be provided", ErrValidation)
	}
	if len(in.Password) < MinPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	role := model.RoleStudent
	if s.initialAdminEmail != "" && in.Email != nil && *in.Email == s.initialAdminEmail {
		role = model.RoleAdmin
		log.Info().Str("email", *in.Email).Msg("registering configured initial admin")
	}

	user := model.NewUser(in.DisplayName, in.Email, in.Username, hashedPassword, role)

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrUserAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("user created, but failed to generate token: %w", err)
	}
	return user, token, nil
}

// Login authenticates by email or username and returns a fresh token.
// Unknown identifiers and wrong passwords produce the identical error.
func (s *authService) Login(ctx context.Context, login, password string) (*model.User, string, error) {
	user, err := s.resolveUser(ctx, login)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	ok, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	if user.Status == model.StatusSuspended {
		return nil, "", ErrAccountSuspended
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// RefreshToken exchanges a still-valid token for a fresh one. The user's
// current status is not re-checked here; every protected request goes
// through VerifyAndGetUser, which is.
func (s *authService) RefreshToken(token string) (string, error) {
	return s.jwtUtil.RefreshToken(token)
}

// VerifyToken verifies a token and returns its claims without a storage
// round-trip. Use where only identity and role are needed.
func (s *authService) VerifyToken(token string) (*utils.JWTClaims, error) {
	return s.jwtUtil.ValidateToken(token)
}

// VerifyAndGetUser verifies a bearer token and loads the current user
// record. A valid token for a deleted user is unauthorized, not a 404.
func (s *authService) VerifyAndGetUser(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtUtil.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject: %v", utils.ErrInvalidToken, err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, utils.ErrInvalidToken
	}
	if user.Status == model.StatusSuspended {
		return nil, ErrAccountSuspended
	}
	return user, nil
}

// ListUsers returns every account. Admin-only; the HTTP layer guards it.
func (s *authService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// UpdateUserStatus sets an account's status, for admin moderation. A
// suspended account is turned away on its next verified request; already
// issued tokens are not revoked.
func (s *authService) UpdateUserStatus(ctx context.Context, id uuid.UUID, status string) (*model.User, error) {
	switch status {
	case model.StatusPending, model.StatusActive, model.StatusSuspended:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	if err := s.userRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated user: %w", err)
	}
	return user, nil
}

func (s *authService) resolveUser(ctx context.Context, login string) (*model.User, error) {
	var (
		user *model.User
		err  error
	)
	switch ClassifyIdentifier(login) {
	case IdentifierEmail:
		user, err = s.userRepo.FindByEmail(ctx, login)
	default:
		user, err = s.userRepo.FindByUsername(ctx, login)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve login identifier: %w", err)
	}
	return user, nil
}
