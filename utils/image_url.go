package utils

import (
	"strings"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// CloudinaryURLer renders delivery URLs for Cloudinary public IDs.
type CloudinaryURLer interface {
	ImageURL(publicID string) (string, error)
}

// ImageResolver turns stored image fields into URLs a browser can load.
type ImageResolver struct {
	baseURL     string
	placeholder string
	cloudinary  CloudinaryURLer
}

// NewImageResolver joins relative paths onto baseURL. cloudinary may be nil,
// in which case cloudinary:<id> values resolve to the placeholder.
func NewImageResolver(baseURL, placeholder string, cloudinary CloudinaryURLer) *ImageResolver {
	return &ImageResolver{
		baseURL:     strings.TrimRight(baseURL, "/"),
		placeholder: placeholder,
		cloudinary:  cloudinary,
	}
}

// Resolve rewrites one raw image value:
//
//	""                      -> placeholder
//	http(s)://...           -> unchanged
//	//cdn.host/x.png        -> https://cdn.host/x.png
//	cloudinary:<public-id>  -> Cloudinary delivery URL
//	uploads/x.png, /x.png   -> baseURL + "/" + path
func (r *ImageResolver) Resolve(raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return r.placeholder
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return raw
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	case strings.HasPrefix(raw, models.CloudinaryScheme):
		if r.cloudinary == nil {
			return r.placeholder
		}
		u, err := r.cloudinary.ImageURL(strings.TrimPrefix(raw, models.CloudinaryScheme))
		if err != nil || u == "" {
			return r.placeholder
		}
		return u
	}
	return r.baseURL + "/" + strings.TrimLeft(raw, "/")
}

func (r *ImageResolver) Product(p *models.Product) {
	p.ImageURL = r.Resolve(p.Image)
}

func (r *ImageResolver) Category(c *models.Category) {
	c.ImageURL = r.Resolve(c.Image)
}

func (r *ImageResolver) Brand(b *models.Brand) {
	b.LogoURL = r.Resolve(b.Logo)
}
