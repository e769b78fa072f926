package handlers

import (
	"errors"
	"net/http"

	"github.com/eventdesk/api/internal/models"
	"github.com/gin-gonic/gin"
)

func CreateVenue(vs VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var venue models.Venue
		if err := c.ShouldBindJSON(&venue); err != nil {
			c.JSON(http.StatusBadRequest, models.Error(err.Error()))
			return
		}

		id, err := vs.CreateVenue(c.Request.Context(), &venue)
		if err != nil {
			c.JSON(statusFor(err), models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.Created("Venue created", id))
	}
}

func ListVenues(vs VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venues, err := vs.ListVenues(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, venues)
	}
}

func UpdateVenue(vs VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := trimParam(c, "id")

		var venue models.Venue
		if err := c.ShouldBindJSON(&venue); err != nil {
			c.JSON(http.StatusBadRequest, models.Error(err.Error()))
			return
		}

		if err := vs.UpdateVenue(c.Request.Context(), id, &venue); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error("Venue not found"))
				return
			}
			c.JSON(statusFor(err), models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.Message("Venue updated"))
	}
}

func DeleteVenue(vs VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := trimParam(c, "id")

		if err := vs.DeleteVenue(c.Request.Context(), id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error("Venue not found"))
				return
			}
			c.JSON(statusFor(err), models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.Message("Venue deleted"))
	}
}
