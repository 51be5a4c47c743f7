package routes

import (
	"tripnest/auth"
	"tripnest/booking"
	"tripnest/catalog"
	"tripnest/middleware"
	"tripnest/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, h *auth.Handlers, rl *ratelim.RateLimiter, gate *middleware.Gate) {
	router.POST("/api/user/gettoken", rl.Limit(h.GetToken))
	router.POST("/api/user/register", rl.Limit(h.Register))
	router.GET("/api/protected", gate.Authenticate(auth.Protected))
}

func AddPackageRoutes(router *httprouter.Router, h *catalog.Handlers, gate *middleware.Gate) {
	router.POST("/api/package/getAllPackages", gate.Authenticate(h.GetAllPackages))
	router.GET("/api/package/:hotelName", gate.Authenticate(h.GetPackage))
}

func AddBookingRoutes(router *httprouter.Router, h *booking.Handlers, rl *ratelim.RateLimiter, gate *middleware.Gate) {
	router.POST("/api/booking/create", rl.Limit(gate.Authenticate(h.CreateBooking)))
	router.GET("/api/booking/manage", gate.Authenticate(h.ManageBookings))
	router.POST("/api/booking/update", rl.Limit(gate.Authenticate(h.UpdateBooking)))
	router.POST("/api/booking/delete", rl.Limit(gate.Authenticate(h.DeleteBooking)))
	router.GET("/api/booking/confirmation", gate.Authenticate(h.Confirmation))
}
