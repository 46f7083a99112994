// Package tracking implements the marketing-attribution cookie: extraction of
// UTM/referral parameters from a request query, the base64url(JSON) cookie
// codec, and the first-touch/last-touch merge rules.
package tracking

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/Maetry/website/model"
)

// CookieName is the attribution cookie set by the edge router.
const CookieName = "MT_TRACK"

// ExtraParamPrefix marks free-form attribution parameters collected verbatim.
const ExtraParamPrefix = "mt_"

// UTMParamKeys are the query parameters mapped onto model.UTM.
var UTMParamKeys = []string{
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"utm_term",
	"utm_content",
}

// RefParamKeys are the query parameters mapped onto model.RefMeta.
var RefParamKeys = []string{"ref", "salonId", "influencerId", "channel"}

// Extract scans query parameters for attribution data. Both results are nil
// when no relevant parameter is present; callers rely on nil (not an empty
// struct) to detect "nothing to merge".
func Extract(query url.Values) (*model.UTM, *model.RefMeta) {
	var utm *model.UTM
	var ref *model.RefMeta

	for _, key := range UTMParamKeys {
		value := query.Get(key)
		if value == "" {
			continue
		}
		if utm == nil {
			utm = &model.UTM{}
		}
		switch key {
		case "utm_source":
			utm.Source = value
		case "utm_medium":
			utm.Medium = value
		case "utm_campaign":
			utm.Campaign = value
		case "utm_term":
			utm.Term = value
		case "utm_content":
			utm.Content = value
		}
	}

	for _, key := range RefParamKeys {
		value := query.Get(key)
		if value == "" {
			continue
		}
		if ref == nil {
			ref = &model.RefMeta{}
		}
		switch key {
		case "ref":
			ref.Ref = value
		case "salonId":
			ref.SalonID = value
		case "influencerId":
			ref.InfluencerID = value
		case "channel":
			ref.Channel = value
		}
	}

	for key, values := range query {
		if !strings.HasPrefix(key, ExtraParamPrefix) || len(values) == 0 || values[0] == "" {
			continue
		}
		if ref == nil {
			ref = &model.RefMeta{}
		}
		if ref.Extra == nil {
			ref.Extra = make(map[string]string)
		}
		ref.Extra[key] = values[0]
	}

	return utm, ref
}

// Encode serializes a tracking cookie to URL-safe base64 of its JSON form.
// Deterministic for equal input, which the edge router uses to detect no-op
// cookie updates.
func Encode(cookie model.TrackingCookie) string {
	// struct field order makes json.Marshal deterministic here
	raw, err := json.Marshal(cookie)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode is the inverse of Encode. A missing or malformed payload decodes to
// nil: garbage in the cookie is treated as "no attribution", never an error.
func Decode(raw string) *model.TrackingCookie {
	if raw == "" {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		// tolerate padded variants written by other stacks
		data, err = base64.URLEncoding.DecodeString(raw)
		if err != nil {
			return nil
		}
	}
	var cookie model.TrackingCookie
	if err := json.Unmarshal(data, &cookie); err != nil {
		return nil
	}
	return &cookie
}

// Merge applies one attribution observation to an existing cookie. When both
// utm and ref are nil there is nothing to merge and the existing cookie is
// returned as is (empty cookie if none existed). Otherwise the observation
// becomes the last touch, and the first touch only if none was set before.
func Merge(existing *model.TrackingCookie, utm *model.UTM, ref *model.RefMeta, landingPath, nowISO string) model.TrackingCookie {
	if utm == nil && ref == nil {
		if existing == nil {
			return model.TrackingCookie{}
		}
		return *existing
	}

	touch := &model.TrackingTouch{
		UTM:         utm,
		Ref:         ref,
		TS:          nowISO,
		LandingPath: landingPath,
	}

	if existing == nil || existing.FirstTouch == nil {
		return model.TrackingCookie{
			FirstTouch: touch,
			LastTouch:  touch,
		}
	}

	return model.TrackingCookie{
		FirstTouch: existing.FirstTouch,
		LastTouch:  touch,
	}
}

// Public projects a tracking cookie to its externally visible shape:
// attribution only, no timestamps or landing paths.
func Public(cookie *model.TrackingCookie) model.PublicTracking {
	var public model.PublicTracking
	if cookie == nil {
		return public
	}
	if cookie.FirstTouch != nil {
		public.FirstTouch = &model.PublicTouch{UTM: cookie.FirstTouch.UTM, Ref: cookie.FirstTouch.Ref}
	}
	if cookie.LastTouch != nil {
		public.LastTouch = &model.PublicTouch{UTM: cookie.LastTouch.UTM, Ref: cookie.LastTouch.Ref}
	}
	return public
}

// StripParams deletes every attribution parameter from a query in place,
// leaving unrelated parameters untouched. Used when canonicalizing redirect
// targets so consumed tracking parameters do not leak into the final URL.
func StripParams(query url.Values) {
	for _, key := range UTMParamKeys {
		query.Del(key)
	}
	for _, key := range RefParamKeys {
		query.Del(key)
	}
	for key := range query {
		if strings.HasPrefix(key, ExtraParamPrefix) {
			query.Del(key)
		}
	}
}
