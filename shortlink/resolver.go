package shortlink

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Maetry/website/i18n"
	"github.com/Maetry/website/model"
)

// OutcomeState is the terminal state of one link resolution.
type OutcomeState string

const (
	// OutcomeBooking renders the booking flow bound to the resolved salon.
	OutcomeBooking OutcomeState = "booking"
	// OutcomeInvite renders the static invite screen for the link's kind.
	OutcomeInvite OutcomeState = "invite"
	// OutcomeNotFound renders the "link unavailable" page, no retry.
	OutcomeNotFound OutcomeState = "notFound"
	// OutcomeError renders a retryable error with a localized message.
	OutcomeError OutcomeState = "error"
)

// Outcome is the tagged result of resolving one token. Exactly the fields
// of the active state are populated.
type Outcome struct {
	State OutcomeState

	// OutcomeBooking
	SalonID    string
	TrackingID string
	Campaign   *model.MarketingCampaign

	// OutcomeInvite
	InviteKind model.LinkKind

	// OutcomeNotFound / OutcomeError
	Message string
}

// linkAPI is the slice of Client the resolver needs; tests substitute fakes.
type linkAPI interface {
	RegisterClick(ctx context.Context, nanoID string, click model.ClickRequest) (*model.MagicLink, error)
	MarketingCampaignByLink(ctx context.Context, nanoID string) (*model.MarketingCampaign, error)
}

// Resolver turns a short-link token into an Outcome. It holds no per-token
// state: retry is simply a fresh Resolve call.
type Resolver struct {
	api   linkAPI
	cache *Cache
}

// NewResolver creates a resolver. cache may be nil.
func NewResolver(api linkAPI, cache *Cache) *Resolver {
	return &Resolver{api: api, cache: cache}
}

// Resolve registers the click for a token, then follows the classification.
// The click registration always happens first: sharing a direct booking URL
// without it must not look like a campaign visit. Cancellation of ctx aborts
// the in-flight call and yields an error outcome the caller may discard.
func (rs *Resolver) Resolve(ctx context.Context, nanoID string, locale i18n.Locale, click model.ClickRequest) Outcome {
	messages := i18n.Catalog(locale)

	link, err := rs.api.RegisterClick(ctx, nanoID, click)
	if err != nil {
		return rs.failureOutcome(err, nanoID, messages)
	}

	switch link.Kind {
	case model.LinkKindMarketing:
		campaign := rs.lookupCampaign(ctx, nanoID)
		if campaign == nil {
			log.Warn().Str("nano_id", nanoID).Msg("Marketing link resolved but campaign fetch failed")
			return Outcome{State: OutcomeError, Message: messages.ErrorCampaign}
		}
		return Outcome{
			State:      OutcomeBooking,
			SalonID:    campaign.SalonID,
			TrackingID: nanoID,
			Campaign:   campaign,
		}

	case model.LinkKindEmployeeInvite, model.LinkKindClientInvite:
		return Outcome{State: OutcomeInvite, InviteKind: link.Kind}

	default:
		log.Warn().Str("nano_id", nanoID).Str("kind", string(link.Kind)).Msg("Unknown link kind")
		return Outcome{State: OutcomeError, Message: messages.ErrorUnknownType}
	}
}

// lookupCampaign reads through the cache to the backend; nil on any failure.
func (rs *Resolver) lookupCampaign(ctx context.Context, nanoID string) *model.MarketingCampaign {
	if rs.cache != nil {
		if campaign := rs.cache.GetCampaign(ctx, nanoID); campaign != nil {
			return campaign
		}
	}

	campaign, err := rs.api.MarketingCampaignByLink(ctx, nanoID)
	if err != nil {
		log.Debug().Err(err).Str("nano_id", nanoID).Msg("Campaign fetch failed")
		return nil
	}

	if rs.cache != nil {
		rs.cache.SetCampaign(ctx, nanoID, campaign)
	}
	return campaign
}

// failureOutcome maps a registration failure onto not-found or error.
func (rs *Resolver) failureOutcome(err error, nanoID string, messages i18n.Messages) Outcome {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		log.Info().Str("nano_id", nanoID).Msg("Short link not found")
		return Outcome{State: OutcomeNotFound, Message: messages.LinkNotFound}
	}

	message := messages.ErrorProcessing
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}

	log.Warn().Err(err).Str("nano_id", nanoID).Msg("Click registration failed")
	return Outcome{State: OutcomeError, Message: message}
}
