package services

import (
	"context"
	"time"

	"github.com/eventdesk/api/internal/models"
)

// MediaService stores binary attachments for one collection (posters, promo
// videos or venue photos). The owner id is taken as-is; whether the owning
// event or venue exists is never checked.
type MediaService struct {
	mediaRepo models.MediaRepo
	colName   string
}

func NewMediaService(mediaRepo models.MediaRepo, colName string) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
		colName:   colName,
	}
}

func (ms *MediaService) Upload(ctx context.Context, ownerId, filename, contentType string, content []byte) (string, error) {
	attachment := &models.Attachment{
		OwnerId:     ownerId,
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
		UploadedAt:  time.Now().UTC(),
	}
	id, err := ms.mediaRepo.SaveAttachment(ctx, ms.colName, attachment)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (ms *MediaService) Download(ctx context.Context, ownerId string) (*models.Attachment, error) {
	return ms.mediaRepo.LatestAttachment(ctx, ms.colName, ownerId)
}
