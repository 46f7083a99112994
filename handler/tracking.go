package handler

import (
	"net/http"

	"github.com/Maetry/website/tracking"
)

// GetTracking handles GET /api/tracking
// @Summary Current visitor attribution
// @Description Returns the request's decoded attribution cookie: UTM and referral data only, never timestamps or landing paths.
// @Tags Tracking
// @Produce json
// @Success 200 {object} model.PublicTracking "Attribution (empty object when none)"
// @Router /api/tracking [get]
func GetTracking(w http.ResponseWriter, r *http.Request) {
	raw := ""
	if cookie, err := r.Cookie(tracking.CookieName); err == nil {
		raw = cookie.Value
	}

	SendJSONSuccess(w, http.StatusOK, tracking.Public(tracking.Decode(raw)))
}
