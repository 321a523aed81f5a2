package handlers

import "cardoctor/middleware"

// HandlerBundle groups the endpoint handlers for route registration.
type HandlerBundle struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Services *ServiceHandler
	Bookings *BookingHandler

	// TokenValidator guards the authenticated booking routes.
	TokenValidator middleware.TokenValidator
}
