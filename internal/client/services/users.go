package services

import (
	"context"

	"github.com/feedlink/feedlink-go/internal/client/api"
	"github.com/feedlink/feedlink-go/internal/client/models"
	"github.com/feedlink/feedlink-go/internal/client/session"
)

// UserService reads profiles. Profile refreshes the locally cached
// snapshot so the session reflects server-side edits.
type UserService interface {
	Profile(ctx context.Context) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
}

type userService struct {
	api   *api.Client
	store *session.Store
}

// NewUserService binds profile operations to the API client and session
// store.
func NewUserService(client *api.Client, store *session.Store) UserService {
	return &userService{api: client, store: store}
}

func (u *userService) Profile(ctx context.Context) (*models.User, error) {
	res, err := u.api.Get(ctx, api.EndpointUsersProfile)
	if err != nil {
		return nil, err
	}
	user, err := decodeObject[models.User](res, "user")
	if err != nil {
		return nil, err
	}
	if err := u.store.SetUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userService) Get(ctx context.Context, id string) (*models.User, error) {
	path := api.BuildURL(api.EndpointUsersGet, map[string]string{"id": id})
	res, err := u.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.User](res, "user")
}
