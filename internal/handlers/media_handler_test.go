package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/eventdesk/api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockMediaService struct {
	mock.Mock
}

func (m *mockMediaService) Upload(ctx context.Context, ownerId, filename, contentType string, content []byte) (string, error) {
	args := m.Called(ctx, ownerId, filename, contentType, content)
	return args.String(0), args.Error(1)
}

func (m *mockMediaService) Download(ctx context.Context, ownerId string) (*models.Attachment, error) {
	args := m.Called(ctx, ownerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attachment), args.Error(1)
}

func newMediaRouter(svc MediaService) *gin.Engine {
	r := gin.New()
	r.POST("/upload_event_poster/:event_id", UploadMedia(svc, "event_id", "Event poster uploaded"))
	r.GET("/get_poster/:event_id", DownloadMedia(svc, "event_id", "File not found"))
	return r
}

func multipartFile(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadMedia(t *testing.T) {
	t.Run("stores file bytes with declared content type", func(t *testing.T) {
		svc := new(mockMediaService)
		oid := primitive.NewObjectID()
		content := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}
		svc.On("Upload", mock.Anything, "68b1c2d3e4f5a6b7c8d9e0f1", "poster.png", "image/png", content).
			Return(oid.Hex(), nil)

		body, formContentType := multipartFile(t, "poster.png", "image/png", content)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/upload_event_poster/68b1c2d3e4f5a6b7c8d9e0f1", body)
		req.Header.Set("Content-Type", formContentType)
		newMediaRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.CreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Event poster uploaded", resp.Message)
		assert.Equal(t, oid.Hex(), resp.ID)
		svc.AssertExpectations(t)
	})

	t.Run("missing file field rejected", func(t *testing.T) {
		svc := new(mockMediaService)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/upload_event_poster/68b1c2d3e4f5a6b7c8d9e0f1", nil)
		newMediaRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDownloadMedia(t *testing.T) {
	t.Run("streams back byte-identical content", func(t *testing.T) {
		svc := new(mockMediaService)
		content := []byte("binary poster payload")
		svc.On("Download", mock.Anything, "68b1c2d3e4f5a6b7c8d9e0f1").Return(&models.Attachment{
			OwnerId:     "68b1c2d3e4f5a6b7c8d9e0f1",
			Filename:    "poster.png",
			ContentType: "image/png",
			Content:     content,
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/get_poster/68b1c2d3e4f5a6b7c8d9e0f1", nil)
		newMediaRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, content, rec.Body.Bytes())
	})

	t.Run("no attachment is a 404, never an empty 200", func(t *testing.T) {
		svc := new(mockMediaService)
		svc.On("Download", mock.Anything, "ghost").Return(nil, models.ErrNotFound)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/get_poster/ghost", nil)
		newMediaRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"File not found"}`, rec.Body.String())
	})
}
