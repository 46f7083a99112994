package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Maetry/website/i18n"
	"github.com/Maetry/website/tracking"
)

// EdgeRouter is the per-request front door: it merges marketing attribution
// into the tracking cookie, rewrites short-link-host requests onto the
// internal link-resolution route, and redirects bare paths to their
// locale-prefixed form. It never fails a request; malformed cookies and
// unknown locales degrade to defaults.
type EdgeRouter struct {
	shortlinkHost  string
	localeMaxAge   int
	trackingMaxAge int
	secureCookies  bool
	now            func() time.Time
}

// NewEdgeRouter creates the edge router middleware.
func NewEdgeRouter(shortlinkHost string, localeMaxAge, trackingMaxAge int, secureCookies bool) *EdgeRouter {
	return &EdgeRouter{
		shortlinkHost:  shortlinkHost,
		localeMaxAge:   localeMaxAge,
		trackingMaxAge: trackingMaxAge,
		secureCookies:  secureCookies,
		now:            time.Now,
	}
}

// Handle wraps the downstream router with edge routing.
func (e *EdgeRouter) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pathname := r.URL.Path

		classification := Classify(r.Host, pathname, e.shortlinkHost)
		if classification.Class == RouteSystem {
			next.ServeHTTP(w, r)
			return
		}

		// Attribution is merged before any rewrite/redirect so parameters
		// arriving on the short-link host are not lost.
		encodedTracking := e.processTrackingParams(r, pathname)

		switch classification.Class {
		case RouteShortlink:
			e.handleShortlinkHost(w, r, next, pathname, encodedTracking)
		case RouteLocalePrefixed:
			e.handleLocalePrefixed(w, r, next, classification.Locale, encodedTracking)
		default:
			e.handleBarePath(w, r, pathname, encodedTracking)
		}
	})
}

// processTrackingParams returns the new encoded tracking cookie, or "" when
// the request carries no attribution or the merge is a no-op.
func (e *EdgeRouter) processTrackingParams(r *http.Request, pathname string) string {
	utm, ref := tracking.Extract(r.URL.Query())
	if utm == nil && ref == nil {
		return ""
	}

	var existingRaw string
	if cookie, err := r.Cookie(tracking.CookieName); err == nil {
		existingRaw = cookie.Value
	}
	existing := tracking.Decode(existingRaw)

	merged := tracking.Merge(existing, utm, ref, pathname, e.now().UTC().Format(time.RFC3339))

	previousEncoded := ""
	if existing != nil {
		previousEncoded = tracking.Encode(*existing)
	}
	nextEncoded := tracking.Encode(merged)

	if nextEncoded == previousEncoded {
		return ""
	}
	return nextEncoded
}

func (e *EdgeRouter) handleShortlinkHost(w http.ResponseWriter, r *http.Request, next http.Handler, pathname, encodedTracking string) {
	// Already on the internal link route for some locale: pass through.
	if _, ok := localePrefix(pathname); ok && strings.Contains(pathname, "/link/") {
		e.setTrackingCookie(w, encodedTracking)
		next.ServeHTTP(w, r)
		return
	}

	locale := e.localeFromRequest(r)

	cleanPathname := pathname
	if cleanPathname != "/" {
		cleanPathname = strings.TrimSuffix(cleanPathname, "/")
	}

	var target string
	if strings.HasPrefix(pathname, "/link/") {
		target = "/" + string(locale) + "/link/" + strings.TrimPrefix(pathname, "/link/")
	} else {
		target = "/" + string(locale) + "/link" + cleanPathname
	}

	log.Debug().
		Str("host", r.Host).
		Str("path", pathname).
		Str("target", target).
		Msg("Rewriting shortlink host request")

	e.setLocaleCookie(w, locale)
	e.setTrackingCookie(w, encodedTracking)

	// Internal rewrite: the URL stays the same from the client's perspective.
	rewritten := r.Clone(r.Context())
	rewritten.URL.Path = target
	rewritten.URL.RawPath = ""
	next.ServeHTTP(w, rewritten)
}

func (e *EdgeRouter) handleLocalePrefixed(w http.ResponseWriter, r *http.Request, next http.Handler, locale i18n.Locale, encodedTracking string) {
	currentLocale := ""
	if cookie, err := r.Cookie(i18n.CookieName); err == nil {
		currentLocale = cookie.Value
	}
	if currentLocale != string(locale) {
		e.setLocaleCookie(w, locale)
	}
	e.setTrackingCookie(w, encodedTracking)
	next.ServeHTTP(w, r)
}

func (e *EdgeRouter) handleBarePath(w http.ResponseWriter, r *http.Request, pathname, encodedTracking string) {
	locale := e.localeFromRequest(r)

	target := *r.URL
	if pathname == "/" {
		target.Path = "/" + string(locale)
	} else {
		target.Path = "/" + string(locale) + pathname
	}

	// Consumed attribution parameters must not leak into the canonical URL.
	query := target.Query()
	tracking.StripParams(query)
	target.RawQuery = query.Encode()

	e.setLocaleCookie(w, locale)
	e.setTrackingCookie(w, encodedTracking)

	http.Redirect(w, r, target.RequestURI(), http.StatusTemporaryRedirect)
}

func (e *EdgeRouter) localeFromRequest(r *http.Request) i18n.Locale {
	cookieValue := ""
	if cookie, err := r.Cookie(i18n.CookieName); err == nil {
		cookieValue = cookie.Value
	}
	return i18n.Resolve(cookieValue, r.Header.Get("Accept-Language"))
}

func (e *EdgeRouter) setLocaleCookie(w http.ResponseWriter, locale i18n.Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:   i18n.CookieName,
		Value:  string(locale),
		Path:   "/",
		MaxAge: e.localeMaxAge,
	})
}

func (e *EdgeRouter) setTrackingCookie(w http.ResponseWriter, encoded string) {
	if encoded == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     tracking.CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   e.trackingMaxAge,
		HttpOnly: true,
		Secure:   e.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
