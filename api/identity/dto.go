package identity

import dmn "github.com/beka-birhanu/vinom-treasure/domain"

// AuthRequest is the body of register and login calls.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Profile is the public view of an explorer.
type Profile struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	BestReward *int   `json:"best_reward,omitempty"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Profile
	Token string `json:"token"`
}

func toProfile(e *dmn.Explorer) Profile {
	return Profile{
		ID:         e.ID.String(),
		Username:   e.Username,
		BestReward: e.BestReward,
	}
}
