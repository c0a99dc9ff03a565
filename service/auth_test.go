package service

import (
	"testing"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const strongPassword = "Gr@nite-Lantern-Orbit-71"

func TestAuthRegister(t *testing.T) {
	t.Run("new explorer", func(t *testing.T) {
		repo := &mockExplorerRepo{}
		repo.On("ByUsername", "indiana").Return(nil, dmn.ErrExplorerNotFound).Once()
		repo.On("Save", mock.MatchedBy(func(e *dmn.Explorer) bool {
			return e.Username == "indiana" && e.VerifyPassword(strongPassword)
		})).Return(nil).Once()

		auth, err := NewAuthService(repo, &mockTokenizer{})
		require.NoError(t, err)
		require.NoError(t, auth.Register("indiana", strongPassword))
		repo.AssertExpectations(t)
	})

	t.Run("taken username", func(t *testing.T) {
		repo := &mockExplorerRepo{}
		repo.On("ByUsername", "indiana").Return(&dmn.Explorer{Username: "indiana"}, nil).Once()

		auth, err := NewAuthService(repo, &mockTokenizer{})
		require.NoError(t, err)
		assert.ErrorIs(t, auth.Register("indiana", strongPassword), dmn.ErrUsernameConflict)
		repo.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("weak password", func(t *testing.T) {
		repo := &mockExplorerRepo{}
		repo.On("ByUsername", "indiana").Return(nil, dmn.ErrExplorerNotFound).Once()

		auth, err := NewAuthService(repo, &mockTokenizer{})
		require.NoError(t, err)
		assert.ErrorIs(t, auth.Register("indiana", "password"), dmn.ErrWeakPassword)
	})
}

func TestAuthSignIn(t *testing.T) {
	explorer, err := dmn.NewExplorer(dmn.ExplorerConfig{Username: "marion", PlainPassword: strongPassword})
	require.NoError(t, err)

	repo, tokenizer := &mockExplorerRepo{}, &mockTokenizer{}
	repo.On("ByUsername", "marion").Return(explorer, nil)
	repo.On("ByUsername", "nobody").Return(nil, dmn.ErrExplorerNotFound)
	tokenizer.On("Generate", map[string]interface{}{
		"explorerID": explorer.ID.String(),
		"username":   "marion",
	}, tokenTTL).Return("signed", nil).Once()

	auth, err := NewAuthService(repo, tokenizer)
	require.NoError(t, err)

	got, token, err := auth.SignIn("marion", strongPassword)
	require.NoError(t, err)
	assert.Equal(t, "signed", token)
	assert.Equal(t, explorer, got)

	_, _, err = auth.SignIn("marion", "wrong password")
	assert.ErrorIs(t, err, dmn.ErrInvalidCredential)

	_, _, err = auth.SignIn("nobody", strongPassword)
	assert.ErrorIs(t, err, dmn.ErrInvalidCredential)

	tokenizer.AssertExpectations(t)
}

func TestNewAuthService(t *testing.T) {
	_, err := NewAuthService(nil, &mockTokenizer{})
	assert.Error(t, err)
}

func TestAuthProfile(t *testing.T) {
	explorer := &dmn.Explorer{Username: "marion"}
	repo := &mockExplorerRepo{}
	repo.On("ByID", explorer.ID).Return(explorer, nil).Once()

	auth, err := NewAuthService(repo, &mockTokenizer{})
	require.NoError(t, err)

	got, err := auth.Profile(explorer.ID)
	require.NoError(t, err)
	assert.Same(t, explorer, got)
}
