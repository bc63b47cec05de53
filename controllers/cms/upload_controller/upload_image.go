package upload_controller

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

var (
	allowedFolders = map[string]bool{"products": true, "categories": true, "brands": true}
	allowedExts    = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true}
)

// UploadResult is what the panel stores back into an entity's image field.
type UploadResult struct {
	PublicID string `json:"publicId"`
	Image    string `json:"image"`
	ImageURL string `json:"imageUrl"`
}

// UploadImage godoc
// @Summary Upload a catalogue image to Cloudinary
// @Tags CMS - Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file (jpg, png, webp, gif; max 5MB)"
// @Param folder formData string false "Target folder" Enums(products, categories, brands)
// @Success 201 {object} models.ApiResponse{data=UploadResult}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "Image storage not configured"
// @Router /api/admin/uploads [post]
func (h *Handler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image storage is not configured"))
		return
	}

	// Step 1: Validate the form
	folder := c.DefaultPostForm("folder", "products")
	if !allowedFolders[folder] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "folder must be products, categories or brands"))
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "image file is required"))
		return
	}
	if file.Size > h.maxBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, fmt.Sprintf("image must be at most %d MB", h.maxBytes>>20)))
		return
	}
	if ext := strings.ToLower(filepath.Ext(file.Filename)); !allowedExts[ext] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "image must be a jpg, png, webp or gif file"))
		return
	}

	// Step 2: Upload
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read image"))
		return
	}
	defer f.Close()

	publicID, err := h.uploader.UploadImage(c.Request.Context(), f, folder)
	if err != nil {
		h.log.Error("[upload.image] cloudinary upload failed", zap.String("file", file.Filename), zap.Error(err))
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	// Step 3: Answer with the stored reference and its URL
	ref := models.CloudinaryScheme + publicID
	h.log.Info("[upload.image] uploaded", zap.String("public_id", publicID), zap.Int64("bytes", file.Size))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Image uploaded successfully", UploadResult{
		PublicID: publicID,
		Image:    ref,
		ImageURL: h.images.Resolve(ref),
	}))
}
