package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Maetry/website/i18n"
	"github.com/Maetry/website/model"
	"github.com/Maetry/website/tracking"
)

func newTestEdgeRouter() *EdgeRouter {
	e := NewEdgeRouter(testShortlinkHost, 3600, 3600, false)
	e.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return e
}

// capture records the request that made it past the middleware.
type capture struct {
	called bool
	path   string
}

func (c *capture) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.called = true
		c.path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
}

func findCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestEdgeRouter_SystemPathPassthrough(t *testing.T) {
	var next capture
	handler := newTestEdgeRouter().Handle(next.handler())

	req := httptest.NewRequest("GET", "http://maetry.com/api/tracking?utm_source=ig", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if !next.called {
		t.Fatal("system path did not reach downstream handler")
	}
	if len(w.Result().Cookies()) != 0 {
		t.Errorf("system path set cookies: %v", w.Result().Cookies())
	}
}

func TestEdgeRouter_BareRedirect(t *testing.T) {
	var next capture
	handler := newTestEdgeRouter().Handle(next.handler())

	req := httptest.NewRequest("GET", "http://maetry.com/pricing?utm_source=x&foo=bar", nil)
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	resp := w.Result()

	if next.called {
		t.Fatal("bare path reached downstream handler instead of redirecting")
	}
	if resp.StatusCode != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want 307", resp.StatusCode)
	}

	location, err := url.Parse(resp.Header.Get("Location"))
	if err != nil {
		t.Fatalf("bad Location header: %v", err)
	}
	if location.Path != "/ru/pricing" {
		t.Errorf("redirect path = %q, want /ru/pricing", location.Path)
	}
	query := location.Query()
	if query.Get("foo") != "bar" {
		t.Error("unrelated query parameter dropped from redirect target")
	}
	if query.Has("utm_source") {
		t.Error("tracking parameter leaked into redirect target")
	}

	localeCookie := findCookie(t, resp, i18n.CookieName)
	if localeCookie == nil || localeCookie.Value != "ru" {
		t.Errorf("locale cookie = %v, want ru", localeCookie)
	}
	trackingCookie := findCookie(t, resp, tracking.CookieName)
	if trackingCookie == nil {
		t.Fatal("tracking cookie not set on attribution-bearing request")
	}
	decoded := tracking.Decode(trackingCookie.Value)
	if decoded == nil || decoded.FirstTouch == nil || decoded.FirstTouch.UTM.Source != "x" {
		t.Errorf("tracking cookie decoded to %+v, want firstTouch utm source x", decoded)
	}
	if decoded.FirstTouch.LandingPath != "/pricing" {
		t.Errorf("landingPath = %q, want /pricing", decoded.FirstTouch.LandingPath)
	}
}

func TestEdgeRouter_BareRootRedirect(t *testing.T) {
	var next capture
	handler := newTestEdgeRouter().Handle(next.handler())

	req := httptest.NewRequest("GET", "http://maetry.com/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	resp := w.Result()

	if resp.StatusCode != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want 307", resp.StatusCode)
	}
	if got := resp.Header.Get("Location"); got != "/en" {
		t.Errorf("Location = %q, want /en", got)
	}
	if findCookie(t, resp, tracking.CookieName) != nil {
		t.Error("tracking cookie set without attribution parameters")
	}
}

func TestEdgeRouter_LocalePrefixedPassthrough(t *testing.T) {
	var next capture
	handler := newTestEdgeRouter().Handle(next.handler())

	req := httptest.NewRequest("GET", "http://maetry.com/es/pricing", nil)
	req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: "en"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	resp := w.Result()

	if !next.called || next.path != "/es/pricing" {
		t.Fatalf("downstream path = %q (called=%v), want /es/pricing", next.path, next.called)
	}
	localeCookie := findCookie(t, resp, i18n.CookieName)
	if localeCookie == nil || localeCookie.Value != "es" {
		t.Errorf("locale cookie not refreshed to path segment, got %v", localeCookie)
	}
}

func TestEdgeRouter_LocaleCookieUnchangedNoRewrite(t *testing.T) {
	var next capture
	handler := newTestEdgeRouter().Handle(next.handler())

	req := httptest.NewRequest("GET", "http://maetry.com/es/pricing", nil)
	req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: "es"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if findCookie(t, w.Result(), i18n.CookieName) != nil {
		t.Error("locale cookie rewritten although it matches the path segment")
	}
}

func TestEdgeRouter_ShortlinkRewrite(t *testing.T) {
	var next capture
	handler := newTestEdgeRouter().Handle(next.handler())

	req := httptest.NewRequest("GET", "http://link.maetry.com/abc123?utm_source=qr", nil)
	req.Header.Set("Accept-Language", "es")
	req.Host = "link.maetry.com"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	resp := w.Result()

	// A rewrite, not a redirect: the downstream handler serves it directly.
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (rewrite, not redirect)", resp.StatusCode)
	}
	if next.path != "/es/link/abc123" {
		t.Errorf("rewritten path = %q, want /es/link/abc123", next.path)
	}
	if cookie := findCookie(t, resp, i18n.CookieName); cookie == nil || cookie.Value != "es" {
		t.Errorf("locale cookie = %v, want es", cookie)
	}
	if findCookie(t, resp, tracking.CookieName) == nil {
		t.Error("tracking cookie not set on attribution-bearing shortlink request")
	}
}

func TestEdgeRouter_ShortlinkAlreadyLocalePrefixed(t *testing.T) {
	var next capture
	handler := newTestEdgeRouter().Handle(next.handler())

	req := httptest.NewRequest("GET", "http://link.maetry.com/ru/link/abc123", nil)
	req.Host = "link.maetry.com"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if next.path != "/ru/link/abc123" {
		t.Errorf("path = %q, want unchanged /ru/link/abc123", next.path)
	}
	if findCookie(t, w.Result(), i18n.CookieName) != nil {
		t.Error("pass-through set a locale cookie")
	}
}

func TestEdgeRouter_TrackingNoOpUpdate(t *testing.T) {
	e := newTestEdgeRouter()
	var next capture
	handler := e.Handle(next.handler())

	// Build the cookie the first request would have produced.
	merged := tracking.Merge(nil, &model.UTM{Source: "x"}, nil, "/en/pricing", e.now().UTC().Format(time.RFC3339))
	encoded := tracking.Encode(merged)

	req := httptest.NewRequest("GET", "http://maetry.com/en/pricing?utm_source=x", nil)
	req.AddCookie(&http.Cookie{Name: tracking.CookieName, Value: encoded})
	req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: "en"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if findCookie(t, w.Result(), tracking.CookieName) != nil {
		t.Error("identical attribution caused a redundant tracking cookie write")
	}
}

func TestEdgeRouter_MalformedTrackingCookie(t *testing.T) {
	var next capture
	handler := newTestEdgeRouter().Handle(next.handler())

	req := httptest.NewRequest("GET", "http://maetry.com/en/pricing?utm_source=x", nil)
	req.AddCookie(&http.Cookie{Name: tracking.CookieName, Value: "%%garbage%%"})
	req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: "en"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cookie := findCookie(t, w.Result(), tracking.CookieName)
	if cookie == nil {
		t.Fatal("malformed cookie plus new attribution must produce a fresh cookie")
	}
	decoded := tracking.Decode(cookie.Value)
	if decoded == nil || decoded.FirstTouch == nil || decoded.FirstTouch.UTM.Source != "x" {
		t.Errorf("fresh cookie = %+v, want firstTouch utm source x", decoded)
	}
}
