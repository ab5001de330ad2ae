package view

import (
	"context"
	"errors"
	"time"

	"github.com/stpnv0/Activities/internal/client"
	"github.com/stpnv0/Activities/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Texts the controller shows when a request fails without a usable detail.
const (
	LoadFailureText       = "Failed to load activities. Please try again later."
	SignupFailureText     = "Failed to sign up. Please try again."
	UnregisterFailureText = "Failed to unregister. Please try again."
	GenericErrorText      = "An error occurred"
)

// CatalogAPI is the activities API the controller reads and mutates.
type CatalogAPI interface {
	FetchCatalog(ctx context.Context) (domain.Catalog, error)
	Signup(ctx context.Context, activity, email string) (string, error)
	Unregister(ctx context.Context, activity, email string) (string, error)
}

// Controller drives a Surface from the activities API. Failures end up in
// the banner or the list region and are never returned.
type Controller struct {
	api     CatalogAPI
	surface Surface
	banner  *Banner
	logger  logger.Logger
}

func NewController(api CatalogAPI, surface Surface, messageTTL time.Duration, logger logger.Logger) *Controller {
	return &Controller{
		api:     api,
		surface: surface,
		banner:  NewBanner(surface, messageTTL),
		logger:  logger,
	}
}

// LoadCatalog rebuilds the activity list and the selector from scratch.
// On failure only the list region changes.
func (c *Controller) LoadCatalog(ctx context.Context) {
	catalog, err := c.api.FetchCatalog(ctx)
	if err != nil {
		c.logger.Error("failed to load activities",
			logger.String("error", err.Error()),
		)
		c.surface.ShowLoadFailure(LoadFailureText)
		return
	}

	c.surface.ReplaceActivities(buildCards(catalog))
	c.surface.ReplaceActivityOptions(catalog.Names())
}

func (c *Controller) Signup(ctx context.Context, activity, email string) {
	message, err := c.api.Signup(ctx, activity, email)
	if err != nil {
		c.reportFailure(err, SignupFailureText, "signup failed", activity, email)
		return
	}

	c.banner.Show(message, MessageSuccess)
	c.surface.ResetForm()
	c.LoadCatalog(ctx)
}

func (c *Controller) Unregister(ctx context.Context, activity, email string) {
	message, err := c.api.Unregister(ctx, activity, email)
	if err != nil {
		c.reportFailure(err, UnregisterFailureText, "unregister failed", activity, email)
		return
	}

	c.banner.Show(message, MessageSuccess)
	c.LoadCatalog(ctx)
}

// Notify shows text in the banner with the usual auto-hide.
func (c *Controller) Notify(text string, kind MessageKind) {
	c.banner.Show(text, kind)
}

// Close stops the pending banner hide.
func (c *Controller) Close() {
	c.banner.Stop()
}

func (c *Controller) reportFailure(err error, fallback, logMsg, activity, email string) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		text := apiErr.Detail
		if text == "" {
			text = GenericErrorText
		}
		c.banner.Show(text, MessageError)
		return
	}

	c.logger.Error(logMsg,
		logger.String("activity", activity),
		logger.String("email", email),
		logger.String("error", err.Error()),
	)
	c.banner.Show(fallback, MessageError)
}
