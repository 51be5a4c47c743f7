package booking

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"tripnest/models"
	"tripnest/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

func confirmationSecret() []byte {
	if s := os.Getenv("CONFIRMATION_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("tripnest-confirmation")
}

// signConfirmation produces the QR payload: the booking fields plus an
// HMAC so front-desk scanners can verify it offline.
func signConfirmation(customer, hotelName, date string) string {
	data := fmt.Sprintf("%s|%s|%s", customer, hotelName, date)
	h := hmac.New(sha256.New, confirmationSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// Confirmation renders a PDF confirmation for one of the user's bookings,
// identified by hotel_name and check_in_date query parameters.
func (h *Handlers) Confirmation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	hotelName := r.URL.Query().Get("hotel_name")
	checkInDate := r.URL.Query().Get("check_in_date")
	if hotelName == "" || checkInDate == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "hotel_name and check_in_date are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	customer := utils.GetUserEmail(r)
	b, err := h.Ledger.GetBooking(ctx, customer, hotelName, checkInDate)
	if errors.Is(err, models.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		log.Printf("booking lookup failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve booking")
		return
	}

	qrPNG, err := qrcode.Encode(signConfirmation(b.Customer, b.HotelName, b.CheckInDate), qrcode.Medium, 256)
	if err != nil {
		log.Printf("QR generation failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate confirmation")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Confirmation")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Hotel: %s", b.HotelName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Guest: %s", b.Customer))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Check-in: %s", b.CheckInDate))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Total cost: %.2f", b.Cost))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("PDF generation failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate confirmation")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=booking-"+b.ID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
