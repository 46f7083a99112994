package model

// SlotInterval is a bookable time window, RFC 3339 timestamps.
type SlotInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CreateAppointmentPayload is the body of POST /api/booking/salon/{salonId}/appointment.
// TrackingID carries the short-link token that led to this booking, when any.
type CreateAppointmentPayload struct {
	ClientName  string       `json:"clientName"`
	ClientPhone string       `json:"clientPhone"`
	ProcedureID string       `json:"procedureId"`
	Time        SlotInterval `json:"time"`
	TrackingID  *string      `json:"trackingId,omitempty"`
}

// SearchSlotsPayload is the body of POST /api/booking/salon/{salonId}/search-slots.
type SearchSlotsPayload struct {
	ProcedureID string `json:"procedureId"`
	DaysAhead   int    `json:"daysAhead"`
}
