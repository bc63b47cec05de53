package upload_controller

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/utils"
)

// Uploader stores an image and returns its Cloudinary public ID.
type Uploader interface {
	UploadImage(ctx context.Context, file io.Reader, sub string) (string, error)
}

// Handler serves /api/admin/uploads. A nil uploader answers 503.
type Handler struct {
	uploader Uploader
	images   *utils.ImageResolver
	log      *zap.Logger
	maxBytes int64
}

func NewHandler(uploader Uploader, images *utils.ImageResolver, log *zap.Logger) *Handler {
	return &Handler{uploader: uploader, images: images, log: log, maxBytes: 5 << 20}
}
