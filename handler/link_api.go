package handler

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/Maetry/website/security"
)

// RegisterClick handles POST /api/clicks/{linkId}
// @Summary Register a short-link click
// @Description Registers a click with a device fingerprint and returns the link classification. Must precede any link-specific fetch.
// @Tags Links
// @Accept json
// @Produce json
// @Param linkId path string true "Short link token"
// @Param request body model.ClickRequest true "Device fingerprint"
// @Success 200 {object} model.MagicLink "Link classification"
// @Failure 400 {object} ErrorResponse "Invalid link ID"
// @Failure 404 {object} ErrorResponse "Unknown link"
// @Failure 500 {object} ErrorResponse "Backend unavailable"
// @Router /api/clicks/{linkId} [post]
func (p *Proxy) RegisterClick(w http.ResponseWriter, r *http.Request) {
	linkID := validateParam(w, mux.Vars(r)["linkId"], "linkId", "INVALID_LINK_ID")
	if linkID == "" {
		return
	}
	body, ok := readBody(w, r, "FAILED_TO_REGISTER_CLICK")
	if !ok {
		return
	}

	p.forward(w, r, proxyRequest{
		method:    http.MethodPost,
		path:      "/clicks/" + url.PathEscape(linkID),
		body:      body,
		errorCode: "FAILED_TO_REGISTER_CLICK",
	})
}

// ForwardFingerprint handles POST /api/fingerprint/{linkId}
// @Summary Forward a device fingerprint
// @Description Relays a fingerprint payload for a link, forwarding the originating client IP and user agent.
// @Tags Links
// @Accept json
// @Produce json
// @Param linkId path string true "Short link token"
// @Success 200 {object} map[string]interface{} "Backend response"
// @Failure 400 {object} ErrorResponse "Invalid link ID"
// @Failure 500 {object} ErrorResponse "Backend unavailable"
// @Router /api/fingerprint/{linkId} [post]
func (p *Proxy) ForwardFingerprint(w http.ResponseWriter, r *http.Request) {
	linkID := validateParam(w, mux.Vars(r)["linkId"], "linkId", "INVALID_LINK_ID")
	if linkID == "" {
		return
	}
	body, ok := readBody(w, r, "FAILED_TO_FORWARD_FINGERPRINT")
	if !ok {
		return
	}

	p.forward(w, r, proxyRequest{
		method: http.MethodPost,
		path:   "/api/fingerprint/" + url.PathEscape(linkID),
		body:   body,
		headers: map[string]string{
			"CF-Connecting-IP": security.ClientIP(r),
		},
		errorCode: "FAILED_TO_FORWARD_FINGERPRINT",
	})
}

// GetLink handles GET /api/links/{linkId}
// @Summary Fetch link metadata
// @Description Fetches a short link's classification and validity without registering a click.
// @Tags Links
// @Produce json
// @Param linkId path string true "Short link token"
// @Success 200 {object} model.MagicLink "Link metadata"
// @Failure 400 {object} ErrorResponse "Invalid link ID"
// @Failure 404 {object} ErrorResponse "Unknown link"
// @Failure 500 {object} ErrorResponse "Backend unavailable"
// @Router /api/links/{linkId} [get]
func (p *Proxy) GetLink(w http.ResponseWriter, r *http.Request) {
	linkID := validateParam(w, mux.Vars(r)["linkId"], "linkId", "INVALID_LINK_ID")
	if linkID == "" {
		return
	}

	p.forward(w, r, proxyRequest{
		method:    http.MethodGet,
		path:      "/api/links/" + url.PathEscape(linkID),
		errorCode: "FAILED_TO_FETCH_LINK",
	})
}

// GetCampaignByLink handles GET /api/marketing/campaigns/by-link/{linkId}
// @Summary Fetch the campaign behind a marketing link
// @Tags Links
// @Produce json
// @Param linkId path string true "Short link token"
// @Success 200 {object} model.MarketingCampaign "Campaign"
// @Failure 400 {object} ErrorResponse "Invalid link ID"
// @Failure 404 {object} ErrorResponse "Unknown link"
// @Failure 500 {object} ErrorResponse "Backend unavailable"
// @Router /api/marketing/campaigns/by-link/{linkId} [get]
func (p *Proxy) GetCampaignByLink(w http.ResponseWriter, r *http.Request) {
	linkID := validateParam(w, mux.Vars(r)["linkId"], "linkId", "INVALID_LINK_ID")
	if linkID == "" {
		return
	}

	p.forward(w, r, proxyRequest{
		method:    http.MethodGet,
		path:      "/marketing/campaigns/by-link/" + url.PathEscape(linkID),
		errorCode: "FAILED_TO_FETCH_CAMPAIGN",
	})
}
