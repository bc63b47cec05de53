package services

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService uploads catalogue images and renders delivery URLs for
// the public IDs stored as "cloudinary:<public-id>".
type CloudinaryService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return &CloudinaryService{cld: cld, folder: "federalparts"}, nil
}

// ImageURL renders the https delivery URL of an uploaded image.
func (s *CloudinaryService) ImageURL(publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("build image asset: %w", err)
	}
	return img.String()
}

// UploadImage stores one image under folder/sub and returns its public ID.
func (s *CloudinaryService) UploadImage(ctx context.Context, file io.Reader, sub string) (string, error) {
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         s.folder + "/" + sub,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("upload successful but no public id returned")
	}
	return result.PublicID, nil
}

// DeleteImage deletes an image from Cloudinary using its public ID
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}
