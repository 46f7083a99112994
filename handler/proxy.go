package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Maetry/website/config"
	"github.com/Maetry/website/utils"
)

// Proxy forwards validated API requests to the booking backend, normalizing
// error shapes on the way back. One instance serves every proxied route.
type Proxy struct {
	cfg        config.Config
	httpClient *http.Client
}

// NewProxy creates the API proxy.
func NewProxy(cfg config.Config) *Proxy {
	return &Proxy{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Backend.RequestTimeout) * time.Second,
		},
	}
}

// proxyRequest describes one upstream call.
type proxyRequest struct {
	method string
	// path is the backend path, already escaped, query included if any.
	path string
	body []byte
	// headers are forwarded verbatim on top of the defaults.
	headers map[string]string
	// errorCode is the route-specific code used when the upstream body
	// carries no usable error shape.
	errorCode string
}

// forward relays one request upstream. Success relays body, content type and
// status verbatim; upstream errors are reshaped to {error, message}; any
// transport or configuration failure becomes a 500 with the route's code.
func (p *Proxy) forward(w http.ResponseWriter, r *http.Request, preq proxyRequest) {
	if p.cfg.Backend.APIURL == "" {
		log.Error().Str("error_code", preq.errorCode).Msg("Backend API URL is not configured")
		SendJSONError(w, http.StatusInternalServerError, preq.errorCode, "backend API URL is not configured")
		return
	}

	targetURL := p.cfg.Backend.APIURL + preq.path

	var bodyReader io.Reader
	if preq.body != nil {
		bodyReader = bytes.NewReader(preq.body)
	}

	upstreamReq, err := http.NewRequestWithContext(r.Context(), preq.method, targetURL, bodyReader)
	if err != nil {
		log.Error().Err(err).Str("error_code", preq.errorCode).Msg("Failed to build upstream request")
		SendJSONError(w, http.StatusInternalServerError, preq.errorCode, err.Error())
		return
	}

	upstreamReq.Header.Set("Accept", "application/json")
	upstreamReq.Header.Set("User-Agent", r.UserAgent())
	if preq.body != nil {
		upstreamReq.Header.Set("Content-Type", "application/json")
	}
	for key, value := range preq.headers {
		upstreamReq.Header.Set(key, value)
	}

	resp, err := p.httpClient.Do(upstreamReq)
	if err != nil {
		log.Error().Err(err).Str("error_code", preq.errorCode).Str("url", targetURL).Msg("Upstream request failed")
		SendJSONError(w, http.StatusInternalServerError, preq.errorCode, err.Error())
		return
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Str("error_code", preq.errorCode).Msg("Failed to read upstream response")
		SendJSONError(w, http.StatusInternalServerError, preq.errorCode, err.Error())
		return
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.relayUpstreamError(w, resp, text, preq.errorCode)
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	w.Write(text)
}

// relayUpstreamError reshapes an upstream failure body to {error, message}
// with the upstream status. Unparseable bodies are relayed as the message
// under the route's error code.
func (p *Proxy) relayUpstreamError(w http.ResponseWriter, resp *http.Response, text []byte, errorCode string) {
	log.Debug().
		Int("status", resp.StatusCode).
		Str("error_code", errorCode).
		Str("body", string(text)).
		Msg("Upstream returned an error")

	var upstream struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(text, &upstream); err == nil && (upstream.Error != "" || upstream.Message != "") {
		code := upstream.Error
		if code == "" {
			code = errorCode
		}
		message := upstream.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		SendJSONError(w, resp.StatusCode, code, message)
		return
	}

	message := string(text)
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	SendJSONError(w, resp.StatusCode, errorCode, message)
}

// validateParam runs ValidateID and writes the 400 response itself, so the
// route handlers stay a straight line. Returns "" when the response was
// already written.
func validateParam(w http.ResponseWriter, raw, paramName, invalidCode string) string {
	value, err := utils.ValidateID(raw, paramName)
	if err != nil {
		var validationErr *utils.ValidationError
		message := err.Error()
		if errors.As(err, &validationErr) {
			message = validationErr.Message
		}
		SendJSONError(w, http.StatusBadRequest, invalidCode, message)
		return ""
	}
	return value
}

// readBody slurps a request body for re-sending upstream, bounded to 1MB.
func readBody(w http.ResponseWriter, r *http.Request, errorCode string) ([]byte, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, errorCode, "failed to read request body")
		return nil, false
	}
	return body, true
}
