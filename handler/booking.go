package handler

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
)

// GetAppointment handles GET /api/booking/appointment/{appointmentId}
// @Summary Fetch an appointment
// @Description Fetches a public appointment by ID from the booking backend.
// @Tags Booking
// @Produce json
// @Param appointmentId path string true "Appointment ID"
// @Success 200 {object} map[string]interface{} "Appointment"
// @Failure 400 {object} ErrorResponse "Invalid appointment ID"
// @Failure 404 {object} ErrorResponse "Appointment not found"
// @Failure 500 {object} ErrorResponse "Backend unavailable"
// @Router /api/booking/appointment/{appointmentId} [get]
func (p *Proxy) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := validateParam(w, mux.Vars(r)["appointmentId"], "appointmentId", "INVALID_APPOINTMENT_ID")
	if appointmentID == "" {
		return
	}

	p.forward(w, r, proxyRequest{
		method:    http.MethodGet,
		path:      "/public/booking/appointment/" + url.PathEscape(appointmentID),
		errorCode: "FAILED_TO_FETCH_APPOINTMENT",
	})
}

// GetSalonAppointment handles GET /api/booking/salon/{salonId}/appointment/{appointmentId}
// @Summary Fetch an appointment within a salon
// @Tags Booking
// @Produce json
// @Param salonId path string true "Salon ID"
// @Param appointmentId path string true "Appointment ID"
// @Success 200 {object} map[string]interface{} "Appointment"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 500 {object} ErrorResponse "Backend unavailable"
// @Router /api/booking/salon/{salonId}/appointment/{appointmentId} [get]
func (p *Proxy) GetSalonAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID := validateParam(w, vars["salonId"], "salonId", "INVALID_ID")
	if salonID == "" {
		return
	}
	appointmentID := validateParam(w, vars["appointmentId"], "appointmentId", "INVALID_ID")
	if appointmentID == "" {
		return
	}

	p.forward(w, r, proxyRequest{
		method:    http.MethodGet,
		path:      "/public/booking/salon/" + url.PathEscape(salonID) + "/appointment/" + url.PathEscape(appointmentID),
		errorCode: "FAILED_TO_FETCH_APPOINTMENT",
	})
}

// CreateAppointment handles POST /api/booking/salon/{salonId}/appointment
// @Summary Create an appointment
// @Description Creates a booking for a salon. The body may carry a trackingId tying the appointment to a short-link campaign.
// @Tags Booking
// @Accept json
// @Produce json
// @Param salonId path string true "Salon ID"
// @Param request body model.CreateAppointmentPayload true "Appointment request"
// @Success 201 {object} map[string]interface{} "Created appointment"
// @Failure 400 {object} ErrorResponse "Invalid salon ID or body"
// @Failure 500 {object} ErrorResponse "Backend unavailable"
// @Router /api/booking/salon/{salonId}/appointment [post]
func (p *Proxy) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	salonID := validateParam(w, mux.Vars(r)["salonId"], "salonId", "INVALID_SALON_ID")
	if salonID == "" {
		return
	}
	body, ok := readBody(w, r, "FAILED_TO_CREATE_APPOINTMENT")
	if !ok {
		return
	}

	p.forward(w, r, proxyRequest{
		method:    http.MethodPost,
		path:      "/public/booking/salon/" + url.PathEscape(salonID) + "/appointment",
		body:      body,
		errorCode: "FAILED_TO_CREATE_APPOINTMENT",
	})
}

// GetProcedures handles GET /api/booking/salon/{salonId}/procedures
// @Summary List salon procedures
// @Description Lists bookable procedures for a salon. The languages header selects the catalog locale.
// @Tags Booking
// @Produce json
// @Param salonId path string true "Salon ID"
// @Param languages header string false "Locale for procedure titles"
// @Success 200 {object} map[string]interface{} "Procedures"
// @Failure 400 {object} ErrorResponse "Invalid salon ID"
// @Failure 500 {object} ErrorResponse "Backend unavailable"
// @Router /api/booking/salon/{salonId}/procedures [get]
func (p *Proxy) GetProcedures(w http.ResponseWriter, r *http.Request) {
	salonID := validateParam(w, mux.Vars(r)["salonId"], "salonId", "INVALID_SALON_ID")
	if salonID == "" {
		return
	}

	locale := r.Header.Get("languages")
	if locale == "" {
		locale = "en"
	}

	p.forward(w, r, proxyRequest{
		method:    http.MethodGet,
		path:      "/public/booking/salon/" + url.PathEscape(salonID) + "/procedures",
		headers:   map[string]string{"languages": locale},
		errorCode: "FAILED_TO_FETCH_PROCEDURES",
	})
}

// SearchSlots handles POST /api/booking/salon/{salonId}/search-slots
// @Summary Search bookable slots
// @Tags Booking
// @Accept json
// @Produce json
// @Param salonId path string true "Salon ID"
// @Param request body model.SearchSlotsPayload true "Slot search"
// @Success 200 {object} map[string]interface{} "Slot intervals"
// @Failure 400 {object} ErrorResponse "Invalid salon ID"
// @Failure 500 {object} ErrorResponse "Backend unavailable"
// @Router /api/booking/salon/{salonId}/search-slots [post]
func (p *Proxy) SearchSlots(w http.ResponseWriter, r *http.Request) {
	salonID := validateParam(w, mux.Vars(r)["salonId"], "salonId", "INVALID_SALON_ID")
	if salonID == "" {
		return
	}
	body, ok := readBody(w, r, "FAILED_TO_SEARCH_SLOTS")
	if !ok {
		return
	}

	p.forward(w, r, proxyRequest{
		method:    http.MethodPost,
		path:      "/public/booking/salon/" + url.PathEscape(salonID) + "/search-slots",
		body:      body,
		errorCode: "FAILED_TO_SEARCH_SLOTS",
	})
}
