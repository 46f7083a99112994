package tracking

import (
	"net/url"
	"testing"

	"github.com/Maetry/website/model"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		rawQuery string
		wantUTM bool
		wantRef bool
	}{
		{"No params", "foo=bar", false, false},
		{"UTM only", "utm_source=ig&utm_campaign=summer", true, false},
		{"Ref only", "ref=abc&salonId=s1", false, true},
		{"Extra mt_ param only", "mt_promo=x", false, true},
		{"Everything", "utm_medium=cpc&influencerId=i1&mt_a=1", true, true},
		{"Empty values ignored", "utm_source=&ref=", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.rawQuery)
			if err != nil {
				t.Fatalf("ParseQuery() error = %v", err)
			}
			utm, ref := Extract(query)
			if (utm != nil) != tt.wantUTM {
				t.Errorf("Extract() utm = %v, want present=%v", utm, tt.wantUTM)
			}
			if (ref != nil) != tt.wantRef {
				t.Errorf("Extract() ref = %v, want present=%v", ref, tt.wantRef)
			}
		})
	}
}

func TestExtract_Fields(t *testing.T) {
	query, _ := url.ParseQuery("utm_source=ig&utm_term=nails&ref=r1&channel=stories&mt_code=VIP")
	utm, ref := Extract(query)

	if utm == nil || utm.Source != "ig" || utm.Term != "nails" {
		t.Errorf("Extract() utm = %+v, want source=ig term=nails", utm)
	}
	if ref == nil || ref.Ref != "r1" || ref.Channel != "stories" {
		t.Errorf("Extract() ref = %+v, want ref=r1 channel=stories", ref)
	}
	if ref.Extra["mt_code"] != "VIP" {
		t.Errorf("Extract() extra = %v, want mt_code=VIP (prefix kept)", ref.Extra)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cookie := model.TrackingCookie{
		FirstTouch: &model.TrackingTouch{
			UTM:         &model.UTM{Source: "ig", Campaign: "summer"},
			TS:          "2025-06-01T10:00:00Z",
			LandingPath: "/pricing",
		},
		LastTouch: &model.TrackingTouch{
			Ref:         &model.RefMeta{SalonID: "s1", Extra: map[string]string{"mt_x": "1"}},
			TS:          "2025-06-02T10:00:00Z",
			LandingPath: "/",
		},
	}

	decoded := Decode(Encode(cookie))
	if decoded == nil {
		t.Fatal("Decode(Encode()) = nil, want cookie")
	}
	if decoded.FirstTouch == nil || decoded.FirstTouch.UTM.Source != "ig" {
		t.Errorf("round trip lost firstTouch: %+v", decoded.FirstTouch)
	}
	if decoded.LastTouch == nil || decoded.LastTouch.Ref.SalonID != "s1" {
		t.Errorf("round trip lost lastTouch: %+v", decoded.LastTouch)
	}
	if decoded.LastTouch.Ref.Extra["mt_x"] != "1" {
		t.Errorf("round trip lost extra params: %+v", decoded.LastTouch.Ref)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	cookie := model.TrackingCookie{
		LastTouch: &model.TrackingTouch{
			Ref: &model.RefMeta{Extra: map[string]string{"mt_b": "2", "mt_a": "1"}},
			TS:  "2025-06-01T10:00:00Z",
		},
	}
	if Encode(cookie) != Encode(cookie) {
		t.Error("Encode() not deterministic for equal input")
	}
}

func TestDecode_Garbage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Empty", ""},
		{"Not base64", "!!!not-base64!!!"},
		{"Base64 of non-JSON", "bm90IGpzb24"},
		{"Truncated JSON", "eyJmaXJzdFRvdWNoIjp7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.raw); got != nil {
				t.Errorf("Decode(%q) = %+v, want nil", tt.raw, got)
			}
		})
	}
}

func TestMerge_FirstTouchNeverOverwritten(t *testing.T) {
	first := Merge(nil, &model.UTM{Source: "ig"}, nil, "/landing", "2025-06-01T00:00:00Z")
	if first.FirstTouch == nil || first.LastTouch == nil {
		t.Fatal("Merge() on empty cookie must set both touches")
	}
	if first.FirstTouch.UTM.Source != "ig" {
		t.Errorf("firstTouch source = %q, want ig", first.FirstTouch.UTM.Source)
	}

	second := Merge(&first, &model.UTM{Source: "tiktok"}, nil, "/promo", "2025-06-02T00:00:00Z")
	if second.FirstTouch.UTM.Source != "ig" {
		t.Errorf("firstTouch overwritten: source = %q, want ig", second.FirstTouch.UTM.Source)
	}
	if second.LastTouch.UTM.Source != "tiktok" {
		t.Errorf("lastTouch not replaced: source = %q, want tiktok", second.LastTouch.UTM.Source)
	}
	if second.LastTouch.LandingPath != "/promo" {
		t.Errorf("lastTouch landingPath = %q, want /promo", second.LastTouch.LandingPath)
	}
}

func TestMerge_NothingToMerge(t *testing.T) {
	existing := Merge(nil, nil, &model.RefMeta{Ref: "r1"}, "/", "2025-06-01T00:00:00Z")

	merged := Merge(&existing, nil, nil, "/other", "2025-06-02T00:00:00Z")
	if Encode(merged) != Encode(existing) {
		t.Error("Merge() with no attribution changed the cookie")
	}

	empty := Merge(nil, nil, nil, "/", "2025-06-01T00:00:00Z")
	if empty.FirstTouch != nil || empty.LastTouch != nil {
		t.Errorf("Merge(nil, nil, nil) = %+v, want empty cookie", empty)
	}
}

func TestPublic_OmitsTimestampsAndPaths(t *testing.T) {
	cookie := Merge(nil, &model.UTM{Source: "ig"}, &model.RefMeta{SalonID: "s1"}, "/landing", "2025-06-01T00:00:00Z")

	public := Public(&cookie)
	if public.FirstTouch == nil || public.FirstTouch.UTM.Source != "ig" {
		t.Errorf("Public() firstTouch = %+v, want utm source ig", public.FirstTouch)
	}
	if public.LastTouch == nil || public.LastTouch.Ref.SalonID != "s1" {
		t.Errorf("Public() lastTouch = %+v, want ref salonId s1", public.LastTouch)
	}

	if got := Public(nil); got.FirstTouch != nil || got.LastTouch != nil {
		t.Errorf("Public(nil) = %+v, want empty", got)
	}
}

func TestStripParams(t *testing.T) {
	query, _ := url.ParseQuery("utm_source=x&ref=r&mt_promo=1&foo=bar&salonId=s1")
	StripParams(query)

	if query.Get("foo") != "bar" {
		t.Error("StripParams() removed an unrelated parameter")
	}
	for _, key := range []string{"utm_source", "ref", "mt_promo", "salonId"} {
		if query.Has(key) {
			t.Errorf("StripParams() left %q in the query", key)
		}
	}
}
