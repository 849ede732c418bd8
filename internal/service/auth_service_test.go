package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kas-dashboard-svc/internal/session"
	"kas-dashboard-svc/pkg/logger"
)

func TestAuthServiceLogin(t *testing.T) {
	store := session.NewStore()
	svc := NewAuthService(&fakeKasAPI{}, store, logger.NewNop())

	sess, err := svc.Login(context.Background(), " admin ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", sess.Role)
	assert.Equal(t, "admin", sess.Username)
	assert.NotNil(t, sess.ExpiresAt)
	assert.Equal(t, "tok-admin", store.Token())
}

func TestAuthServiceLoginValidation(t *testing.T) {
	api := &fakeKasAPI{loginErr: errors.New("must not be called")}
	svc := NewAuthService(api, session.NewStore(), logger.NewNop())

	_, err := svc.Login(context.Background(), "", "secret")
	assert.True(t, IsValidationError(err))

	_, err = svc.Login(context.Background(), "admin", "")
	assert.True(t, IsValidationError(err))
}

func TestAuthServiceLogoutAlwaysEndsSession(t *testing.T) {
	store := session.NewStore()
	store.Begin("tok", "ADMIN", "admin", 0)
	api := &fakeKasAPI{logoutErr: errors.New("network down")}
	svc := NewAuthService(api, store, logger.NewNop())

	_, err := svc.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, store.Authenticated())

	store.Begin("tok", "ADMIN", "admin", 0)
	api.logoutErr = nil
	msg, err := svc.Logout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Logged out", msg)
	_, ok := svc.Current()
	assert.False(t, ok)
}
