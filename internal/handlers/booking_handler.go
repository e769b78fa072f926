package handlers

import (
	"errors"
	"net/http"

	"github.com/eventdesk/api/internal/models"
	"github.com/gin-gonic/gin"
)

func CreateBooking(bs BookingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			c.JSON(http.StatusBadRequest, models.Error(err.Error()))
			return
		}

		id, err := bs.CreateBooking(c.Request.Context(), &booking)
		if err != nil {
			c.JSON(statusFor(err), models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.Created("Booking successful", id))
	}
}

func ListBookings(bs BookingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := bs.ListBookings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, bookings)
	}
}

func UpdateBooking(bs BookingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := trimParam(c, "id")

		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			c.JSON(http.StatusBadRequest, models.Error(err.Error()))
			return
		}

		if err := bs.UpdateBooking(c.Request.Context(), id, &booking); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error("Booking not found"))
				return
			}
			c.JSON(statusFor(err), models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.Message("Booking updated"))
	}
}

func DeleteBooking(bs BookingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := trimParam(c, "id")

		if err := bs.DeleteBooking(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error("Booking not found"))
				return
			}
			c.JSON(statusFor(err), models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.Message("Booking deleted"))
	}
}
