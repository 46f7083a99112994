package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"

	"github.com/Maetry/website/model"
	"github.com/Maetry/website/shortlink"
	"github.com/Maetry/website/utils"
)

// QR renders QR code images for short links, for print materials and
// salon counter displays.
type QR struct {
	client        *shortlink.Client
	cache         *shortlink.Cache
	shortlinkHost string
}

// NewQR creates the QR handler. cache may be nil.
func NewQR(client *shortlink.Client, cache *shortlink.Cache, shortlinkHost string) *QR {
	return &QR{client: client, cache: cache, shortlinkHost: shortlinkHost}
}

// Generate handles GET /api/qr/{linkId} - generates a QR code PNG for a short link
// @Summary Generate QR code
// @Description Generates a QR code image pointing at the short link URL. The link must exist.
// @Tags QR
// @Produce png
// @Param linkId path string true "Short link token"
// @Param size query int false "Image size in pixels (128-1024, default 256)"
// @Param level query string false "Error correction level" Enums(low, medium, high, highest)
// @Success 200 {file} binary "QR code PNG"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Link not found"
// @Failure 502 {object} ErrorResponse "Link lookup failed"
// @Router /api/qr/{linkId} [get]
func (h *QR) Generate(w http.ResponseWriter, r *http.Request) {
	linkID, err := utils.ValidateID(mux.Vars(r)["linkId"], "linkId")
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, "INVALID_LINK_ID", err.Error())
		return
	}

	// Verify the token exists before rendering anything for it.
	var link *model.MagicLink
	if h.cache != nil {
		link = h.cache.GetLink(r.Context(), linkID)
	}
	if link == nil {
		link, err = h.client.LinkByID(r.Context(), linkID)
		if err != nil {
			var notFound *shortlink.NotFoundError
			if errors.As(err, &notFound) {
				log.Warn().Str("link_id", linkID).Msg("Link not found for QR generation")
				SendJSONError(w, http.StatusNotFound, "FAILED_TO_FETCH_LINK", "Short link does not exist")
				return
			}
			log.Error().Err(err).Str("link_id", linkID).Msg("Failed to verify link for QR")
			SendJSONError(w, http.StatusBadGateway, "FAILED_TO_FETCH_LINK", "Failed to verify link")
			return
		}
		if h.cache != nil {
			h.cache.SetLink(r.Context(), linkID, link)
		}
	}

	query := r.URL.Query()

	// Size parameter (default: 256, min: 128, max: 1024)
	size := 256
	if sizeStr := query.Get("size"); sizeStr != "" {
		parsedSize, err := strconv.Atoi(sizeStr)
		if err != nil {
			SendJSONError(w, http.StatusBadRequest, "INVALID_QR_SIZE", "Size must be a number")
			return
		}
		if parsedSize < 128 || parsedSize > 1024 {
			SendJSONError(w, http.StatusBadRequest, "INVALID_QR_SIZE", "Size must be between 128 and 1024")
			return
		}
		size = parsedSize
	}

	// Error correction level (default: medium)
	level := qrcode.Medium
	if levelStr := query.Get("level"); levelStr != "" {
		switch levelStr {
		case "low":
			level = qrcode.Low
		case "medium":
			level = qrcode.Medium
		case "high":
			level = qrcode.High
		case "highest":
			level = qrcode.Highest
		default:
			SendJSONError(w, http.StatusBadRequest, "INVALID_QR_LEVEL", "Level must be: low, medium, high, or highest")
			return
		}
	}

	fullURL := fmt.Sprintf("https://%s/%s", h.shortlinkHost, linkID)

	qrCode, err := qrcode.Encode(fullURL, level, size)
	if err != nil {
		log.Error().Err(err).Str("url", fullURL).Msg("Failed to generate QR code")
		SendJSONError(w, http.StatusInternalServerError, "FAILED_TO_GENERATE_QR", "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Content-Length", strconv.Itoa(len(qrCode)))

	if _, err := w.Write(qrCode); err != nil {
		log.Error().Err(err).Msg("Failed to write QR code response")
		return
	}

	log.Info().
		Str("link_id", linkID).
		Str("full_url", fullURL).
		Int("size", size).
		Msg("QR code generated")
}
