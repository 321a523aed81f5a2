package handlers

import (
	"net/http"

	bookingRepo "cardoctor/database/repository/booking"
	"cardoctor/middleware"
	"cardoctor/models"
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Repo bookingRepo.BookingRepository
}

func NewBookingHandler(repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Repo: repo}
}

// ownsEmail reports whether the token's email claim equals the email query
// parameter. Both being absent also counts as a match.
func ownsEmail(claims jwt.MapClaims, c *gin.Context) bool {
	raw, claimed := claims["email"]
	query, queried := c.GetQuery("email")
	if !claimed && !queried {
		return true
	}
	email, ok := raw.(string)
	return claimed && queried && ok && email == query
}

// ListBookings handles GET /bookings?email=. Requires VerifyJWT.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok || !ownsEmail(claims, c) {
		_ = c.Error(utils.ErrForbidden)
		return
	}

	bookings, err := h.Repo.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := bindJSONBody(c, &booking); err != nil {
		getLogger(c).Debug("CreateBooking: invalid body", zap.Error(err))
		_ = c.Error(utils.NewBadRequest("invalid booking body"))
		return
	}

	result, err := h.Repo.Create(c.Request.Context(), &booking)
	if err != nil {
		_ = c.Error(err)
		return
	}
	getLogger(c).Info("booking created", zap.Any("id", result.InsertedID), zap.String("email", booking.Email))
	c.JSON(http.StatusOK, result)
}

// UpdateBookingStatus handles PATCH /bookings/:id. Only status is written; an
// empty body clears it.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := objectIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var body models.StatusUpdate
	if err := bindJSONBody(c, &body); err != nil {
		getLogger(c).Debug("UpdateBookingStatus: invalid body", zap.Error(err))
		_ = c.Error(utils.NewBadRequest("invalid status body"))
		return
	}

	result, err := h.Repo.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteBooking handles DELETE /bookings/:id. Deleting twice is not an error.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := objectIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.Repo.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SearchBookings handles GET /bookingSearchServices/:text.
func (h *BookingHandler) SearchBookings(c *gin.Context) {
	bookings, err := h.Repo.Search(c.Request.Context(), c.Param("text"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
