// Package userdata holds the in-memory session state: the current user
// profile together with the session token.
package userdata

// Preferences are the user's data-handling choices.
type Preferences struct {
	DataProcessing bool `json:"data_processing"`
	DataSharing    bool `json:"data_sharing"`
}

// UserProfile is the session value. Token is non-nil exactly when a session
// is active; ID is set only after a successful profile fetch.
type UserProfile struct {
	ID          *int64      `json:"id"`
	Token       *string     `json:"token"`
	Name        string      `json:"name"`
	ImageURL    string      `json:"img_url"`
	Preferences Preferences `json:"preferences"`
}

// Default returns the unauthenticated profile.
func Default() UserProfile {
	return UserProfile{}
}

// Authenticated reports whether the profile carries a session token.
func (p UserProfile) Authenticated() bool {
	return p.Token != nil
}

// WithToken returns a copy of p whose token is set to token.
func (p UserProfile) WithToken(token string) UserProfile {
	p.Token = &token
	return p
}

func (p UserProfile) clone() UserProfile {
	if p.ID != nil {
		id := *p.ID
		p.ID = &id
	}
	if p.Token != nil {
		tok := *p.Token
		p.Token = &tok
	}
	return p
}
