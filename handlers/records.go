package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/toursproject/booking-backend/internal/records"
	"github.com/toursproject/booking-backend/pkg/logger"
	"github.com/toursproject/booking-backend/pkg/metrics"
)

// BookingRequest carries the booking form. The travel date arrives as a
// string and is coerced server-side, like the original form handler did.
type BookingRequest struct {
	FullName        string `json:"fullName"`
	Country         string `json:"country"`
	Email           string `json:"email"`
	TourDescription string `json:"tourDescription"`
	TravelDate      string `json:"travelDate"`
	Duration        int    `json:"duration"`
	NumPersons      int    `json:"numPersons"`
	ContactNo       string `json:"contactNo"`
}

// PaymentRequest carries the payment confirmation form.
type PaymentRequest struct {
	PickupLocation string              `json:"pickupLocation"`
	Mobile         string              `json:"mobile"`
	CardNumber     string              `json:"cardNumber"`
	Destination    string              `json:"destination"`
	Days           int                 `json:"days"`
	NumPeople      int                 `json:"numPeople"`
	TotalPrice     float64             `json:"totalPrice"`
	Passengers     []records.Passenger `json:"passengers"`
}

// ReviewRequest carries the review form.
type ReviewRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Review string `json:"review"`
}

// RecordHandler exposes the create-only record intake routes.
type RecordHandler struct {
	svc *records.Service
}

func NewRecordHandler(svc *records.Service) *RecordHandler {
	return &RecordHandler{svc: svc}
}

// Register wires the intake routes. The booking submission sits behind the
// gate because it is only reachable from the gated booking page;
// /confirmBooking is ungated in the original site and that asymmetry is
// preserved here.
func (h *RecordHandler) Register(r *gin.Engine, gate gin.HandlerFunc) {
	r.POST("/bookingPage", gate, h.CreateBooking)
	r.POST("/confirmBooking", h.ConfirmBooking)
	r.POST("/submit-review", h.SubmitReview)
}

// travelDateLayouts are the formats the booking form is known to send.
var travelDateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04"}

func parseTravelDate(s string) (time.Time, error) {
	for _, layout := range travelDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// CreateBooking validates and persists a booking, answering with the
// redirect target for the payment page on success.
func (h *RecordHandler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": "VALIDATION_FAILED", "message": "Unable to save booking"})
		return
	}

	var travelDate time.Time
	if req.TravelDate != "" {
		t, err := parseTravelDate(req.TravelDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": "VALIDATION_FAILED", "message": "Unable to save booking"})
			return
		}
		travelDate = t
	}

	b := &records.Booking{
		FullName:        req.FullName,
		Country:         req.Country,
		Email:           req.Email,
		TourDescription: req.TourDescription,
		TravelDate:      travelDate,
		Duration:        req.Duration,
		NumPersons:      req.NumPersons,
		ContactNo:       req.ContactNo,
	}
	if err := h.svc.CreateBooking(c.Request.Context(), b); err != nil {
		if errors.Is(err, records.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": "VALIDATION_FAILED", "message": "Unable to save booking"})
			return
		}
		logger.Errorf("error saving booking: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": "PERSISTENCE_FAILED", "message": "Unable to save booking"})
		return
	}

	metrics.RecordsCreated.WithLabelValues("booking").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Booking successful",
		"redirectUrl": "/mainPage/payment.html",
	})
}

// ConfirmBooking persists the payment record.
func (h *RecordHandler) ConfirmBooking(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_FAILED", "message": "Something went wrong."})
		return
	}

	p := &records.Payment{
		PickupLocation: req.PickupLocation,
		Mobile:         req.Mobile,
		CardNumber:     req.CardNumber,
		Destination:    req.Destination,
		Days:           req.Days,
		NumPeople:      req.NumPeople,
		TotalPrice:     req.TotalPrice,
		Passengers:     req.Passengers,
	}
	if err := h.svc.CreatePayment(c.Request.Context(), p); err != nil {
		logger.Errorf("error confirming tour: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "PERSISTENCE_FAILED", "message": "Something went wrong."})
		return
	}

	metrics.RecordsCreated.WithLabelValues("payment").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Tour confirmed!"})
}

// SubmitReview persists a review after presence checks.
func (h *RecordHandler) SubmitReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_FAILED", "message": "All fields are required."})
		return
	}

	r := &records.Review{Name: req.Name, Email: req.Email, Review: req.Review}
	if err := h.svc.CreateReview(c.Request.Context(), r); err != nil {
		if errors.Is(err, records.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_FAILED", "message": "All fields are required."})
			return
		}
		logger.Errorf("error saving review: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": "PERSISTENCE_FAILED", "message": "Server error. Please try again later."})
		return
	}

	metrics.RecordsCreated.WithLabelValues("review").Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted successfully!"})
}
