package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/utils"
)

func TestUserService_Register(t *testing.T) {
	store := &fakeUserStore{users: map[string]models.User{}}
	svc := NewUserService(store)
	ctx := context.Background()

	u, err := svc.Register(ctx, &models.CreateUserInput{Username: "moussa", Password: "pa55word"})
	require.NoError(t, err)
	assert.NotEqual(t, "pa55word", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("pa55word")))

	got, err := svc.GetByUsername(ctx, "moussa")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.Register(ctx, &models.CreateUserInput{Username: "moussa", Password: "x"})
	assert.ErrorIs(t, err, utils.ErrConflict)

	_, err = svc.Register(ctx, &models.CreateUserInput{Username: "", Password: "x"})
	assert.ErrorIs(t, err, utils.ErrValidation)
}
