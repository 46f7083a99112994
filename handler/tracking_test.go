package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Maetry/website/model"
	"github.com/Maetry/website/tracking"
)

func TestGetTrackingWithoutCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/tracking", nil)
	rec := httptest.NewRecorder()
	GetTracking(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "{}" {
		t.Errorf("body = %q, want an empty object", body)
	}
}

func TestGetTrackingWithCookie(t *testing.T) {
	cookie := model.TrackingCookie{
		FirstTouch: &model.TrackingTouch{
			UTM:         &model.UTM{Source: "instagram", Campaign: "summer"},
			TS:          "2026-08-01T10:00:00.000Z",
			LandingPath: "/pricing",
		},
		LastTouch: &model.TrackingTouch{
			Ref:         &model.RefMeta{SalonID: "s1"},
			TS:          "2026-08-20T10:00:00.000Z",
			LandingPath: "/",
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/tracking", nil)
	req.AddCookie(&http.Cookie{Name: tracking.CookieName, Value: tracking.Encode(cookie)})
	rec := httptest.NewRecorder()
	GetTracking(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.PublicTracking
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.FirstTouch == nil || resp.FirstTouch.UTM == nil || resp.FirstTouch.UTM.Source != "instagram" {
		t.Errorf("firstTouch = %+v, want the UTM attribution", resp.FirstTouch)
	}
	if resp.LastTouch == nil || resp.LastTouch.Ref == nil || resp.LastTouch.Ref.SalonID != "s1" {
		t.Errorf("lastTouch = %+v, want the referral attribution", resp.LastTouch)
	}

	// Timestamps and landing paths stay server-side.
	raw := rec.Body.String()
	for _, private := range []string{`"ts"`, `"landingPath"`, "/pricing"} {
		if strings.Contains(raw, private) {
			t.Errorf("response leaks %q: %s", private, raw)
		}
	}
}

func TestGetTrackingWithGarbageCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/tracking", nil)
	req.AddCookie(&http.Cookie{Name: tracking.CookieName, Value: "%%%not-base64%%%"})
	rec := httptest.NewRecorder()
	GetTracking(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "{}" {
		t.Errorf("body = %q, want an empty object for an undecodable cookie", body)
	}
}
