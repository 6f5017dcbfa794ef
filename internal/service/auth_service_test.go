package service

import (
	"context"
	"testing"

	"english_coaching/internal/model"
	"english_coaching/internal/repository"
	"english_coaching/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range r.users {
		if user.Email != nil && u.Email != nil && *user.Email == *u.Email {
			return repository.ErrDuplicate
		}
		if user.Username != nil && u.Username != nil && *user.Username == *u.Username {
			return repository.ErrDuplicate
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username != nil && *u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Status = status
	return nil
}

func strPtr(s string) *string { return &s }

func newTestAuthService(repo *fakeUserRepo, initialAdminEmail string) AuthService {
	return NewAuthService(repo, utils.NewJWTUtil("test-secret-key-that-is-long-enough", 1), initialAdminEmail)
}

func TestRegister(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), "")

	user, token, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Password:    "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Alice", user.DisplayName)
	assert.Equal(t, model.RoleStudent, user.Role)
	assert.Equal(t, model.StatusPending, user.Status)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestRegister_PasswordTooShort(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), "")

	// 7 characters: one below the minimum.
	_, _, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Password:    "1234567",
	})
	assert.ErrorIs(t, err, ErrValidation)

	// 8 characters: exactly the minimum.
	_, _, err = svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Password:    "12345678",
	})
	assert.NoError(t, err)
}

func TestRegister_NoIdentifier(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), "")

	_, _, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Password:    "password123",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegister_BlankDisplayName(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), "")

	_, _, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "   ",
		Email:       strPtr("alice@example.com"),
		Password:    "password123",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), "")

	in := RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Password:    "password123",
	}
	_, _, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegister_InitialAdmin(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), "boss@example.com")

	admin, _, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Boss",
		Email:       strPtr("boss@example.com"),
		Password:    "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	// Anyone else still registers as a student.
	other, _, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Password:    "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, other.Role)
}

func TestLogin_ByEmailAndUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "")

	_, _, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Username:    strPtr("alice"),
		Password:    "password123",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Alice", user.DisplayName)

	user, token, err = svc.Login(context.Background(), "alice", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Alice", user.DisplayName)
}

func TestLogin_BadCredentialsAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "")

	_, _, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Password:    "password123",
	})
	require.NoError(t, err)

	// Unknown identifier and wrong password must produce the identical
	// error so callers cannot enumerate accounts.
	_, _, errUnknown := svc.Login(context.Background(), "nobody@example.com", "password123")
	_, _, errWrongPw := svc.Login(context.Background(), "alice@example.com", "wrongpassword")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLogin_Suspended(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "")

	user, _, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Password:    "password123",
	})
	require.NoError(t, err)
	repo.users[user.ID].Status = model.StatusSuspended

	_, _, err = svc.Login(context.Background(), "alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrAccountSuspended)
}

func TestVerifyAndGetUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "")

	registered, token, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Password:    "password123",
	})
	require.NoError(t, err)

	user, err := svc.VerifyAndGetUser(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestVerifyAndGetUser_DeletedUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "")

	registered, token, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Password:    "password123",
	})
	require.NoError(t, err)

	// A valid token for a since-deleted account is unauthorized.
	delete(repo.users, registered.ID)
	_, err = svc.VerifyAndGetUser(context.Background(), token)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestVerifyAndGetUser_Suspended(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "")

	registered, token, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Password:    "password123",
	})
	require.NoError(t, err)

	repo.users[registered.ID].Status = model.StatusSuspended
	_, err = svc.VerifyAndGetUser(context.Background(), token)
	assert.ErrorIs(t, err, ErrAccountSuspended)
}

func TestRefreshToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "")

	_, token, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Password:    "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(token)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed)

	_, err = svc.RefreshToken("garbage")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestClassifyIdentifier(t *testing.T) {
	assert.Equal(t, IdentifierEmail, ClassifyIdentifier("alice@example.com"))
	assert.Equal(t, IdentifierEmail, ClassifyIdentifier("weird@name"))
	assert.Equal(t, IdentifierUsername, ClassifyIdentifier("alice"))
	assert.Equal(t, IdentifierUsername, ClassifyIdentifier("alice.example"))
}

func TestUpdateUserStatus(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "")

	registered, _, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Password:    "password123",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateUserStatus(context.Background(), registered.ID, model.StatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuspended, updated.Status)

	// The suspension takes effect on the next login.
	_, _, err = svc.Login(context.Background(), "alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrAccountSuspended)

	// And lifts again.
	updated, err = svc.UpdateUserStatus(context.Background(), registered.ID, model.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, updated.Status)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "password123")
	assert.NoError(t, err)
}

func TestUpdateUserStatus_UnknownStatus(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo, "")

	registered, _, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice",
		Email:       strPtr("alice@example.com"),
		Password:    "password123",
	})
	require.NoError(t, err)

	_, err = svc.UpdateUserStatus(context.Background(), registered.ID, "banned")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, model.StatusPending, repo.users[registered.ID].Status)
}

func TestUpdateUserStatus_UnknownUser(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), "")

	_, err := svc.UpdateUserStatus(context.Background(), uuid.Must(uuid.NewV7()), model.StatusActive)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsers_Empty(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), "")

	users, err := svc.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}
