package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/Maetry/website/i18n"
	"github.com/Maetry/website/model"
	"github.com/Maetry/website/shortlink"
)

// LinkPage serves the link-resolution route the edge router rewrites
// short-link-host requests onto. It runs the resolver and renders the
// outcome as a view model; the booking wizard and invite screens consume it.
type LinkPage struct {
	resolver *shortlink.Resolver
}

// NewLinkPage creates the link page handler.
func NewLinkPage(resolver *shortlink.Resolver) *LinkPage {
	return &LinkPage{resolver: resolver}
}

// linkPageResponse is the rendered outcome of one link resolution.
type linkPageResponse struct {
	State      string                   `json:"state"`
	SalonID    string                   `json:"salonId,omitempty"`
	TrackingID string                   `json:"trackingId,omitempty"`
	Campaign   *model.MarketingCampaign `json:"campaign,omitempty"`
	InviteKind model.LinkKind           `json:"inviteKind,omitempty"`
	Message    string                   `json:"message,omitempty"`
	Retry      string                   `json:"retry,omitempty"`
}

// Resolve handles GET /{locale}/link/{nanoId}
// @Summary Resolve a short link
// @Description Registers the click and resolves the token into a booking, invite, not-found or error outcome.
// @Tags Links
// @Produce json
// @Param locale path string true "Locale" Enums(en, ru, es)
// @Param nanoId path string true "Short link token"
// @Success 200 {object} linkPageResponse "Booking or invite outcome"
// @Failure 404 {object} linkPageResponse "Link unavailable"
// @Failure 502 {object} linkPageResponse "Resolution failed, retry possible"
// @Router /{locale}/link/{nanoId} [get]
func (lp *LinkPage) Resolve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	nanoID := vars["nanoId"]
	locale := i18n.DefaultLocale
	if i18n.IsSupported(vars["locale"]) {
		locale = i18n.Locale(vars["locale"])
	}

	if nanoID == "" {
		messages := i18n.Catalog(locale)
		SendJSONSuccess(w, http.StatusNotFound, linkPageResponse{
			State:   string(shortlink.OutcomeNotFound),
			Message: messages.LinkNotFound,
		})
		return
	}

	click := shortlink.BuildClickRequest(r)
	outcome := lp.resolver.Resolve(r.Context(), nanoID, locale, click)

	// The visitor may be gone by the time the backend answered; writing a
	// response into a dead connection is pointless noise.
	if r.Context().Err() != nil {
		log.Debug().Str("nano_id", nanoID).Msg("Client went away during link resolution")
		return
	}

	messages := i18n.Catalog(locale)

	switch outcome.State {
	case shortlink.OutcomeBooking:
		SendJSONSuccess(w, http.StatusOK, linkPageResponse{
			State:      string(outcome.State),
			SalonID:    outcome.SalonID,
			TrackingID: outcome.TrackingID,
			Campaign:   outcome.Campaign,
		})

	case shortlink.OutcomeInvite:
		SendJSONSuccess(w, http.StatusOK, linkPageResponse{
			State:      string(outcome.State),
			InviteKind: outcome.InviteKind,
		})

	case shortlink.OutcomeNotFound:
		SendJSONSuccess(w, http.StatusNotFound, linkPageResponse{
			State:   string(outcome.State),
			Message: outcome.Message,
		})

	default:
		SendJSONSuccess(w, http.StatusBadGateway, linkPageResponse{
			State:   string(outcome.State),
			Message: outcome.Message,
			Retry:   messages.Retry,
		})
	}
}
