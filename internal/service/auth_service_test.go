package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pharmacademy/internal/model"
)

func newTestAuthService() *AuthService {
	return NewAuthService(newFakeUserRepo(), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, model.RegisterRequest{
		Name:     " Ada ",
		Email:    "Ada@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, "Ada", resp.User.Name)
	assert.Equal(t, model.RoleStudent, resp.User.Role)
	assert.NotEqual(t, "secret1", resp.User.PasswordHash)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.Hex(), claims.UserID)

	login, err := svc.Login(ctx, model.LoginRequest{Email: "ADA@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	me, err := svc.Me(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", me.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()
	req := model.RegisterRequest{Name: "A", Email: "a@b.co", Password: "secret1"}

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()
	_, err := svc.Register(ctx, model.RegisterRequest{Name: "A", Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, model.LoginRequest{Email: "a@b.co", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, model.LoginRequest{Email: "nobody@b.co", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejects(t *testing.T) {
	svc := newTestAuthService()
	user := &model.User{ID: primitive.NewObjectID(), Role: model.RoleStudent}

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewAuthService(newFakeUserRepo(), "other-secret", time.Hour)
		token, err := other.GenerateToken(user)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewAuthService(newFakeUserRepo(), "test-secret", -time.Minute)
		token, err := expired.GenerateToken(user)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("NoneAlgorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &model.UserClaims{UserID: user.ID.Hex()}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("BadSubject", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &model.UserClaims{UserID: "not-an-id"}).
			SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("a.b.c")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestMeUnknownUser(t *testing.T) {
	_, err := newTestAuthService().Me(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}
