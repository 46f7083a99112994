package model

// UTM holds the standard utm_* campaign parameters observed on a request.
// All fields are optional; a nil *UTM means no UTM data was present.
type UTM struct {
	Source   string `json:"source,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Campaign string `json:"campaign,omitempty"`
	Term     string `json:"term,omitempty"`
	Content  string `json:"content,omitempty"`
}

// RefMeta holds referral attribution parameters. Extra collects any query
// parameter prefixed mt_ verbatim, key included.
type RefMeta struct {
	Ref          string            `json:"ref,omitempty"`
	SalonID      string            `json:"salonId,omitempty"`
	InfluencerID string            `json:"influencerId,omitempty"`
	Channel      string            `json:"channel,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
}

// TrackingTouch is a single observed attribution event.
type TrackingTouch struct {
	UTM         *UTM     `json:"utm,omitempty"`
	Ref         *RefMeta `json:"ref,omitempty"`
	TS          string   `json:"ts"`
	LandingPath string   `json:"landingPath"`
}

// TrackingCookie is the decoded payload of the MT_TRACK cookie.
// FirstTouch is written once and never overwritten; LastTouch is replaced
// on every attribution-bearing request.
type TrackingCookie struct {
	FirstTouch *TrackingTouch `json:"firstTouch,omitempty"`
	LastTouch  *TrackingTouch `json:"lastTouch,omitempty"`
}

// PublicTouch is the externally visible slice of a touch: attribution only,
// no timestamps or landing paths.
type PublicTouch struct {
	UTM *UTM     `json:"utm,omitempty"`
	Ref *RefMeta `json:"ref,omitempty"`
}

// PublicTracking is what GET /api/tracking returns.
type PublicTracking struct {
	FirstTouch *PublicTouch `json:"firstTouch,omitempty"`
	LastTouch  *PublicTouch `json:"lastTouch,omitempty"`
}
