package booking

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"tripnest/models"
	"tripnest/mq"
	"tripnest/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

const dateLayout = "2006-01-02"

// Default lookback for the manage endpoint. -2000 days is effectively
// "all bookings ever"; documented as-is, no enforced bound.
const defaultDaysOffset = -2000

// UserSource resolves customer references at booking creation.
type UserSource interface {
	GetUser(ctx context.Context, email string) (*models.User, error)
}

// PackageSource resolves package references at booking creation.
type PackageSource interface {
	GetPackage(ctx context.Context, hotelName string) (*models.Package, error)
}

// Handlers serves the booking CRUD endpoints. All of them sit behind the
// auth gate, which puts the customer email on the request context.
type Handlers struct {
	Ledger   Ledger
	Users    UserSource
	Packages PackageSource
	Events   *mq.Emitter
}

func NewHandlers(ledger Ledger, users UserSource, packages PackageSource, events *mq.Emitter) *Handlers {
	return &Handlers{Ledger: ledger, Users: users, Packages: packages, Events: events}
}

// CreateBooking books a package for the authenticated user. Both the user
// and the package must resolve; repeated identical calls create distinct
// records.
func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fields := utils.FormOrJSON(r, "hotel_name", "check_in_date")
	hotelName := fields["hotel_name"]
	checkInDate := fields["check_in_date"]

	if hotelName == "" || checkInDate == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "hotel_name and check_in_date are required")
		return
	}
	if _, err := time.Parse(dateLayout, checkInDate); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "check_in_date must be YYYY-MM-DD")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.GetUser(ctx, utils.GetUserEmail(r))
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		log.Printf("user lookup failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	pkg, err := h.Packages.GetPackage(ctx, hotelName)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		log.Printf("package lookup failed for %s: %v", hotelName, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	if user == nil || pkg == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user or package")
		return
	}

	now := time.Now()
	b := models.Booking{
		ID:          uuid.NewString(),
		Customer:    user.Email,
		HotelName:   pkg.HotelName,
		CheckInDate: checkInDate,
		Cost:        pkg.Cost,
		CreatedAt:   now.Unix(),
	}
	if err := h.Ledger.CreateBooking(ctx, b); err != nil {
		log.Printf("booking insert failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	h.Events.EmitBooking(r.Context(), "created", b, now.Unix())

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Booking created successfully",
		"booking": utils.M{
			"hotel_name":    b.HotelName,
			"check_in_date": b.CheckInDate,
			"user":          b.Customer,
			"total_cost":    b.Cost,
		},
	})
}

// ManageBookings lists the user's bookings with check-in on or after
// today + days, ascending by date. days is a signed offset taken from
// the query string, default -2000.
func (h *Handlers) ManageBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	days := defaultDaysOffset
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = parsed
	}
	fromDate := time.Now().AddDate(0, 0, days).Format(dateLayout)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Ledger.BookingsFromDate(ctx, utils.GetUserEmail(r), fromDate)
	if err != nil {
		log.Printf("booking list failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	list := make([]utils.M, 0, len(bookings))
	for _, b := range bookings {
		list = append(list, utils.M{
			"hotel_name":    b.HotelName,
			"check_in_date": b.CheckInDate,
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":  "Bookings retrieved successfully",
		"bookings": list,
	})
}

// UpdateBooking moves a booking from old_check_in_date to check_in_date.
// The lookup is scoped to the authenticated user.
func (h *Handlers) UpdateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fields := utils.FormOrJSON(r, "hotel_name", "old_check_in_date", "check_in_date")
	hotelName := fields["hotel_name"]
	oldDate := fields["old_check_in_date"]
	newDate := fields["check_in_date"]

	if hotelName == "" || oldDate == "" || newDate == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "hotel_name, old_check_in_date and check_in_date are required")
		return
	}
	if _, err := time.Parse(dateLayout, newDate); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "check_in_date must be YYYY-MM-DD")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	customer := utils.GetUserEmail(r)
	ok, err := h.Ledger.UpdateBooking(ctx, customer, hotelName, oldDate, newDate)
	if err != nil {
		log.Printf("booking update failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Failed to update booking")
		return
	}

	h.Events.EmitBooking(r.Context(), "updated", models.Booking{
		Customer: customer, HotelName: hotelName, CheckInDate: newDate,
	}, time.Now().Unix())

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":           "Booking updated successfully",
		"hotel_name":        hotelName,
		"new_check_in_date": newDate,
	})
}

// DeleteBooking removes a booking permanently. Not idempotent: a second
// call for the same triple reports not found.
func (h *Handlers) DeleteBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fields := utils.FormOrJSON(r, "hotel_name", "check_in_date")
	hotelName := fields["hotel_name"]
	checkInDate := fields["check_in_date"]

	if hotelName == "" || checkInDate == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "hotel_name and check_in_date are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	customer := utils.GetUserEmail(r)
	ok, err := h.Ledger.DeleteBooking(ctx, customer, hotelName, checkInDate)
	if err != nil {
		log.Printf("booking delete failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete booking")
		return
	}
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Failed to delete booking")
		return
	}

	h.Events.EmitBooking(r.Context(), "deleted", models.Booking{
		Customer: customer, HotelName: hotelName, CheckInDate: checkInDate,
	}, time.Now().Unix())

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":       "Booking deleted successfully",
		"hotel_name":    hotelName,
		"check_in_date": checkInDate,
	})
}
