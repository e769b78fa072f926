package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const docsPage = `<!DOCTYPE html>
<html>
<head><title>Eventdesk API</title></head>
<body>
<h1>Eventdesk API</h1>
<p>Record store for events, attendees, venues and bookings, plus binary media
attachments. All bodies are JSON unless noted.</p>
<h2>Entities</h2>
<ul>
<li>POST /events &mdash; create; GET /events &mdash; list (max 100);
PUT /events/{id}; DELETE /events/{id}</li>
<li>POST /attendees; GET /attendees; PUT /attendees/{id}; DELETE /attendees/{id}</li>
<li>POST /venues; GET /venues; PUT /venues/{id}; DELETE /venues/{id}</li>
<li>POST /bookings; GET /bookings; PUT /bookings/{id}; DELETE /bookings/{id}</li>
</ul>
<h2>Media (multipart field "file")</h2>
<ul>
<li>POST /upload_event_poster/{event_id}; GET /get_poster/{event_id}</li>
<li>POST /upload_promo_video/{event_id}; GET /get_promo_video/{event_id}</li>
<li>POST /upload_venue_photo/{venue_id}; GET /get_venue_photo/{venue_id}</li>
</ul>
</body>
</html>`

func RedirectToDocs() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/docs")
	}
}

func DocsPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsPage))
	}
}
