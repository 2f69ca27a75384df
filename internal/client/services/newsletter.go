package services

import (
	"context"
	"fmt"

	"github.com/feedlink/feedlink-go/internal/client/api"
	"github.com/feedlink/feedlink-go/internal/client/models"
)

// NewsletterService manages newsletter subscriptions. Both operations are
// open to anonymous callers.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) error
	Unsubscribe(ctx context.Context, email string) error
}

type newsletterService struct {
	api *api.Client
}

// NewNewsletterService binds the newsletter operations to the API client.
func NewNewsletterService(client *api.Client) NewsletterService {
	return &newsletterService{api: client}
}

func (n *newsletterService) Subscribe(ctx context.Context, email string) error {
	if !models.ValidEmail(email) {
		return fmt.Errorf("invalid email %q", email)
	}
	_, err := n.api.Post(ctx, api.EndpointNewsletterSubscribe, map[string]string{"email": email}, api.WithoutAuth())
	return err
}

func (n *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	if !models.ValidEmail(email) {
		return fmt.Errorf("invalid email %q", email)
	}
	_, err := n.api.Post(ctx, api.EndpointNewsletterUnsubscribe, map[string]string{"email": email}, api.WithoutAuth())
	return err
}
