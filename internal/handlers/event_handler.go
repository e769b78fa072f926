package handlers

import (
	"errors"
	"net/http"

	"github.com/eventdesk/api/internal/models"
	"github.com/gin-gonic/gin"
)

func CreateEvent(es EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, models.Error(err.Error()))
			return
		}

		id, err := es.CreateEvent(c.Request.Context(), &event)
		if err != nil {
			c.JSON(statusFor(err), models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.Created("Event created", id))
	}
}

func ListEvents(es EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := es.ListEvents(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, events)
	}
}

func UpdateEvent(es EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := trimParam(c, "id")

		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, models.Error(err.Error()))
			return
		}

		if err := es.UpdateEvent(c.Request.Context(), id, &event); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error("Event not found"))
				return
			}
			c.JSON(statusFor(err), models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.Message("Event updated"))
	}
}

func DeleteEvent(es EventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := trimParam(c, "id")

		if err := es.DeleteEvent(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error("Event not found"))
				return
			}
			c.JSON(statusFor(err), models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.Message("Event deleted"))
	}
}
