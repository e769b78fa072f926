package handlers

import (
	"errors"
	"net/http"

	"github.com/eventdesk/api/internal/models"
	"github.com/gin-gonic/gin"
)

func CreateAttendee(as AttendeesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var attendee models.Attendee
		if err := c.ShouldBindJSON(&attendee); err != nil {
			c.JSON(http.StatusBadRequest, models.Error(err.Error()))
			return
		}

		id, err := as.CreateAttendee(c.Request.Context(), &attendee)
		if err != nil {
			c.JSON(statusFor(err), models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.Created("Attendee created", id))
	}
}

func ListAttendees(as AttendeesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		attendees, err := as.ListAttendees(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, attendees)
	}
}

func UpdateAttendee(as AttendeesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := trimParam(c, "id")

		var attendee models.Attendee
		if err := c.ShouldBindJSON(&attendee); err != nil {
			c.JSON(http.StatusBadRequest, models.Error(err.Error()))
			return
		}

		if err := as.UpdateAttendee(c.Request.Context(), id, &attendee); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error("Attendee not found"))
				return
			}
			c.JSON(statusFor(err), models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.Message("Attendee updated"))
	}
}

func DeleteAttendee(as AttendeesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := trimParam(c, "id")

		if err := as.DeleteAttendee(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error("Attendee not found"))
				return
			}
			c.JSON(statusFor(err), models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.Message("Attendee deleted"))
	}
}
