package service

import (
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/beka-birhanu/vinom-treasure/service/i"
	"github.com/google/uuid"
)

const (
	tokenTTL = 24 * time.Hour
)

type Auth struct {
	explorerRepo i.ExplorerRepo
	tokenizer    i.Tokenizer
}

// NewAuthService creates an Authenticator backed by the explorer repository.
func NewAuthService(explorerRepo i.ExplorerRepo, tokenizer i.Tokenizer) (i.Authenticator, error) {
	if explorerRepo == nil || tokenizer == nil {
		return nil, errors.New("auth service needs an explorer repository and a tokenizer")
	}
	return &Auth{
		explorerRepo: explorerRepo,
		tokenizer:    tokenizer,
	}, nil
}

func (a *Auth) Register(username, password string) error {
	if _, err := a.explorerRepo.ByUsername(username); err == nil {
		return dmn.ErrUsernameConflict
	} else if !errors.Is(err, dmn.ErrExplorerNotFound) {
		return err
	}

	explorer, err := dmn.NewExplorer(dmn.ExplorerConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	return a.explorerRepo.Save(explorer)
}

func (a *Auth) SignIn(username, password string) (*dmn.Explorer, string, error) {
	explorer, err := a.explorerRepo.ByUsername(username)
	if err != nil {
		return nil, "", dmn.ErrInvalidCredential
	}

	if !explorer.VerifyPassword(password) {
		return nil, "", dmn.ErrInvalidCredential
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"explorerID": explorer.ID.String(),
		"username":   explorer.Username,
	}, tokenTTL)
	if err != nil {
		return nil, "", err
	}

	return explorer, token, nil
}

// Profile loads the signed-in explorer.
func (a *Auth) Profile(id uuid.UUID) (*dmn.Explorer, error) {
	return a.explorerRepo.ByID(id)
}
