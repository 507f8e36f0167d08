package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophsession/internal/client/client"
	"github.com/dmitrijs2005/gophsession/internal/client/userdata"
)

const profilePath = "users/profile/"

// ProfileService fetches the profile of the user owning a session token.
type ProfileService interface {
	GetUserProfile(ctx context.Context, token string) client.Envelope
}

type profileService struct {
	api client.Client
}

// NewProfileService returns a ProfileService backed by api.
func NewProfileService(api client.Client) ProfileService {
	return &profileService{api: api}
}

func (p *profileService) GetUserProfile(ctx context.Context, token string) client.Envelope {
	return p.api.Get(ctx, profilePath, client.WithBearer(token))
}

// DecodeProfile reads the profile fields {id, name, img_url, preferences}
// from a profile envelope.
func DecodeProfile(env client.Envelope) (userdata.UserProfile, error) {
	var p userdata.UserProfile
	if err := env.DecodeData(&p); err != nil {
		return userdata.UserProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}
