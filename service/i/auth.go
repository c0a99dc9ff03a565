package i

import (
	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/google/uuid"
)

// Authenticator registers explorers and signs them in.
type Authenticator interface {
	Register(string, string) error
	SignIn(string, string) (*dmn.Explorer, string, error)
	Profile(uuid.UUID) (*dmn.Explorer, error)
}
