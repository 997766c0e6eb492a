package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-evaluator/internal/config"
	"github.com/jonathan/interview-evaluator/internal/db"
	"github.com/jonathan/interview-evaluator/internal/types"
)

// fakeUserDB is an in-memory UserDB.
type fakeUserDB struct {
	byID    map[uuid.UUID]*db.User
	byEmail map[string]*db.User
}

func newFakeUserDB() *fakeUserDB {
	return &fakeUserDB{
		byID:    map[uuid.UUID]*db.User{},
		byEmail: map[string]*db.User{},
	}
}

func (f *fakeUserDB) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	u := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.byID[u.ID] = u
	f.byEmail[email] = u
	return u.ID, nil
}

func (f *fakeUserDB) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.byID[userID], nil
}

func (f *fakeUserDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	return f.byEmail[email], nil
}

func testUserService() (*UserService, *fakeUserDB) {
	fake := newFakeUserDB()
	pwCfg := &config.PasswordConfig{BcryptCost: 10}
	return NewUserService(fake, pwCfg), fake
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	loggedIn, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &types.CreateUserRequest{
		Name: "Ada Again", Email: "ada@example.com", Password: "hunter2hunter2",
	})

	var dup *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "ada@example.com", dup.Email)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_LoginUnknownUser(t *testing.T) {
	svc, _ := testUserService()

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email: "ghost@example.com", Password: "whatever",
	})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_PasswordHashNeverExposed(t *testing.T) {
	svc, fake := testUserService()

	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	stored := fake.byEmail["ada@example.com"]
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)
	assert.NotContains(t, user.Email, stored.PasswordHash)
}
