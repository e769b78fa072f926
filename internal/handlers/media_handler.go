package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/eventdesk/api/internal/models"
	"github.com/gin-gonic/gin"
)

// UploadMedia reads the entire multipart file into memory and stores it as a
// single document. There is no size limit and no content-type check; the
// declared MIME type is stored as-is and echoed back on download.
func UploadMedia(ms MediaService, ownerParam, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerId := trimParam(c, ownerParam)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Error("file is required"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error(err.Error()))
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error(err.Error()))
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")
		id, err := ms.Upload(c.Request.Context(), ownerId, fileHeader.Filename, contentType, content)
		if err != nil {
			c.JSON(statusFor(err), models.Error(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.Created(message, id))
	}
}

func DownloadMedia(ms MediaService, ownerParam, notFoundMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerId := trimParam(c, ownerParam)

		attachment, err := ms.Download(c.Request.Context(), ownerId)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error(notFoundMessage))
				return
			}
			c.JSON(http.StatusInternalServerError, models.Error(err.Error()))
			return
		}

		c.Data(http.StatusOK, attachment.ContentType, attachment.Content)
	}
}
