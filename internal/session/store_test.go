package session

import (
	"testing"

	"github.com/lafaom-mao/portal/internal/clients/lafaom"
	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/stretchr/testify/assert"
)

func testPayload() *lafaom.LoginPayload {
	return &lafaom.LoginPayload{
		AccessToken: lafaom.AccessToken{Token: "token-abc", ExpiresIn: 3600},
		User: entities.User{
			ID:        "user-1",
			FirstName: "Awa",
			LastName:  "Ndiaye",
			Email:     "awa@example.com",
		},
	}
}

func Test_Store_SaveThenLoad(t *testing.T) {

	assert := assert.New(t)
	store := NewStore(t.TempDir())

	assert.False(store.IsAuthenticated())
	assert.ErrorIs(store.RequireAuth(), ErrNotAuthenticated)

	assert.NoError(store.Save(testPayload()))

	assert.True(store.IsAuthenticated())
	assert.NoError(store.RequireAuth())

	token, ok := store.Token()
	assert.True(ok)
	assert.Equal("token-abc", token)

	user, ok := store.User()
	assert.True(ok)
	assert.Equal("Awa Ndiaye", user.FullName())
}

func Test_Store_ClearSignsOut(t *testing.T) {

	assert := assert.New(t)
	store := NewStore(t.TempDir())

	assert.NoError(store.Save(testPayload()))
	assert.NoError(store.Clear())

	assert.False(store.IsAuthenticated())
	_, ok := store.Token()
	assert.False(ok)
}

func Test_Store_ClearOnEmptyDirIsFine(t *testing.T) {
	store := NewStore(t.TempDir())
	assert.NoError(t, store.Clear())
}
