package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// WalletApple handles GET /api/wallet/apple?id=
// @Summary Redirect to an Apple Wallet pass
// @Description Resolves a wallet pass URL for an appointment and redirects to it.
// @Tags Wallet
// @Param id query string true "Appointment ID"
// @Success 307 "Redirect to the pass URL"
// @Failure 400 {object} ErrorResponse "Missing or invalid ID"
// @Failure 500 {object} ErrorResponse "Backend unavailable"
// @Router /api/wallet/apple [get]
func (p *Proxy) WalletApple(w http.ResponseWriter, r *http.Request) {
	p.walletRedirect(w, r, "apple")
}

// WalletGoogle handles GET /api/wallet/google?id=
// @Summary Redirect to a Google Wallet pass
// @Tags Wallet
// @Param id query string true "Appointment ID"
// @Success 307 "Redirect to the pass URL"
// @Failure 400 {object} ErrorResponse "Missing or invalid ID"
// @Failure 500 {object} ErrorResponse "Backend unavailable"
// @Router /api/wallet/google [get]
func (p *Proxy) WalletGoogle(w http.ResponseWriter, r *http.Request) {
	p.walletRedirect(w, r, "google")
}

// walletRedirect resolves the pass URL upstream and redirects the client to
// it. The backend answers either with a redirect of its own or with a JSON
// body carrying the URL.
func (p *Proxy) walletRedirect(w http.ResponseWriter, r *http.Request, platform string) {
	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		SendJSONError(w, http.StatusBadRequest, "INVALID_APPOINTMENT_ID", "missing id parameter")
		return
	}
	appointmentID := validateParam(w, rawID, "appointmentId", "INVALID_APPOINTMENT_ID")
	if appointmentID == "" {
		return
	}

	if p.cfg.Backend.APIURL == "" {
		SendJSONError(w, http.StatusInternalServerError, "FAILED_TO_FETCH_WALLET_URL", "backend API URL is not configured")
		return
	}

	targetURL := p.cfg.Backend.APIURL + "/wallet/" + platform + "?id=" + url.QueryEscape(appointmentID)
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, targetURL, nil)
	if err != nil {
		SendJSONError(w, http.StatusInternalServerError, "FAILED_TO_FETCH_WALLET_URL", err.Error())
		return
	}

	// Do not follow the backend's redirect: the client should, so the pass
	// download happens on the device, not here.
	client := &http.Client{
		Timeout: p.httpClient.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("platform", platform).Msg("Wallet URL resolution failed")
		SendJSONError(w, http.StatusInternalServerError, "FAILED_TO_FETCH_WALLET_URL", err.Error())
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		SendJSONError(w, http.StatusInternalServerError, "FAILED_TO_FETCH_WALLET_URL", err.Error())
		return
	}

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		if location := resp.Header.Get("Location"); location != "" {
			http.Redirect(w, r, location, http.StatusTemporaryRedirect)
			return
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := string(body)
		if message == "" {
			message = "failed to get wallet URL"
		}
		SendJSONError(w, resp.StatusCode, "FAILED_TO_FETCH_WALLET_URL", message)
		return
	}

	// The client follows redirects, so a 2xx here carries the pass URL in
	// the body: either a JSON string or {"url": "..."}.
	var walletURL string
	var parsed struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.URL != "" {
		walletURL = parsed.URL
	} else {
		var plain string
		if err := json.Unmarshal(body, &plain); err == nil {
			walletURL = plain
		}
	}

	if walletURL == "" {
		SendJSONError(w, http.StatusInternalServerError, "FAILED_TO_FETCH_WALLET_URL", "invalid response format")
		return
	}

	http.Redirect(w, r, walletURL, http.StatusTemporaryRedirect)
}
