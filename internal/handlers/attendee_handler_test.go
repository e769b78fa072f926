package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eventdesk/api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockAttendeesService struct {
	mock.Mock
}

func (m *mockAttendeesService) CreateAttendee(ctx context.Context, attendee *models.Attendee) (string, error) {
	args := m.Called(ctx, attendee)
	return args.String(0), args.Error(1)
}

func (m *mockAttendeesService) ListAttendees(ctx context.Context) ([]*models.Attendee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Attendee), args.Error(1)
}

func (m *mockAttendeesService) UpdateAttendee(ctx context.Context, id string, attendee *models.Attendee) error {
	args := m.Called(ctx, id, attendee)
	return args.Error(0)
}

func (m *mockAttendeesService) DeleteAttendee(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newAttendeeRouter(svc AttendeesService) *gin.Engine {
	r := gin.New()
	r.POST("/attendees", CreateAttendee(svc))
	r.GET("/attendees", ListAttendees(svc))
	r.PUT("/attendees/:id", UpdateAttendee(svc))
	r.DELETE("/attendees/:id", DeleteAttendee(svc))
	return r
}

const attendeeBody = `{"name":"Ama Serwaa","email":"ama@example.com","phone":"+233201234567"}`

func TestAttendeeLifecycle(t *testing.T) {
	svc := new(mockAttendeesService)
	oid := primitive.NewObjectID()

	svc.On("CreateAttendee", mock.Anything, mock.AnythingOfType("*models.Attendee")).Return(oid.Hex(), nil)
	svc.On("ListAttendees", mock.Anything).Return([]*models.Attendee{{
		ID:    oid,
		Name:  "Ama Serwaa",
		Email: "ama@example.com",
		Phone: "+233201234567",
	}}, nil)
	svc.On("DeleteAttendee", mock.Anything, oid.Hex()).Return(nil)

	router := newAttendeeRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attendees", strings.NewReader(attendeeBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var created models.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Attendee created", created.Message)
	assert.Equal(t, oid.Hex(), created.ID)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/attendees", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var attendees []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &attendees))
	require.Len(t, attendees, 1)
	assert.Equal(t, created.ID, attendees[0]["id"])
	assert.Equal(t, "ama@example.com", attendees[0]["email"])

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/attendees/"+created.ID, nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Attendee deleted"}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestUpdateAttendeeNotFound(t *testing.T) {
	svc := new(mockAttendeesService)
	svc.On("UpdateAttendee", mock.Anything, mock.Anything, mock.Anything).Return(models.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/attendees/"+primitive.NewObjectID().Hex(),
		strings.NewReader(attendeeBody))
	req.Header.Set("Content-Type", "application/json")
	newAttendeeRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Attendee not found"}`, rec.Body.String())
}

func TestDeleteAttendeeNotFound(t *testing.T) {
	svc := new(mockAttendeesService)
	svc.On("DeleteAttendee", mock.Anything, mock.Anything).Return(models.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/attendees/"+primitive.NewObjectID().Hex(), nil)
	newAttendeeRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Attendee not found"}`, rec.Body.String())
}

func TestCreateAttendeeValidation(t *testing.T) {
	svc := new(mockAttendeesService)

	// phone is optional, email is not
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attendees", strings.NewReader(`{"name":"Ama Serwaa"}`))
	req.Header.Set("Content-Type", "application/json")
	newAttendeeRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateAttendee", mock.Anything, mock.Anything)
}
