package model

// LinkKind classifies what a short link resolves to.
type LinkKind string

const (
	LinkKindMarketing      LinkKind = "marketing"
	LinkKindEmployeeInvite LinkKind = "employeeInvite"
	LinkKindClientInvite   LinkKind = "clientInvite"
)

// MagicLink is the backend's classification of a short-link token,
// returned by the click-registration call. Immutable from our side.
type MagicLink struct {
	NanoID    string   `json:"nanoId"`
	Kind      LinkKind `json:"kind"`
	IsOneTime bool     `json:"isOneTime"`
	ExpiresAt *string  `json:"expiresAt"`
	UsedAt    *string  `json:"usedAt"`
	CreatedAt string   `json:"createdAt"`
}

// ClickRequest is the device fingerprint posted when registering a click.
type ClickRequest struct {
	Language     string   `json:"language"`
	Languages    []string `json:"languages"`
	Cores        int      `json:"cores"`
	Memory       int      `json:"memory"`
	ScreenWidth  int      `json:"screenWidth"`
	ScreenHeight int      `json:"screenHeight"`
	ColorDepth   int      `json:"colorDepth"`
	PixelRatio   float64  `json:"pixelRatio"`
	TimeZone     string   `json:"timeZone"`
}

// MarketingCampaign is fetched by nanoId once a link is classified as marketing.
type MarketingCampaign struct {
	ID                  string  `json:"id"`
	SalonID             string  `json:"salonId"`
	Type                string  `json:"type"`
	Name                string  `json:"name"`
	Description         *string `json:"description"`
	LinkID              string  `json:"linkId"`
	AffiliateOfferID    *string `json:"affiliateOfferId"`
	InfluencerContactID *string `json:"influencerContactId"`
	ClicksCount         int     `json:"clicksCount"`
	AppointmentsCreated int     `json:"appointmentsCreated"`
	CreatedAt           string  `json:"createdAt"`
	UpdatedAt           string  `json:"updatedAt"`
}
