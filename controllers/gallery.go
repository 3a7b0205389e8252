package controllers

import (
	"net/http"
	"strings"
	"time"

	"clinicflash-backend/models"
	"clinicflash-backend/storage"
	"clinicflash-backend/utils"

	"github.com/gin-gonic/gin"
)

type GalleryController struct {
	Gallery *storage.GalleryStore
}

type SavePhotoInput struct {
	Type               models.PhotoType     `json:"type" binding:"required"`
	Area               models.TreatmentArea `json:"area" binding:"required"`
	Date               string               `json:"date"`
	ImageData          string               `json:"imageData" binding:"required"`
	ThumbnailData      string               `json:"thumbnailData"`
	TreatmentHistoryID string               `json:"treatmentHistoryId"`
	Notes              string               `json:"notes"`
}

type SavePairInput struct {
	BeforePhotoID      string               `json:"beforePhotoId" binding:"required"`
	AfterPhotoID       string               `json:"afterPhotoId" binding:"required"`
	Area               models.TreatmentArea `json:"area" binding:"required"`
	TreatmentHistoryID string               `json:"treatmentHistoryId"`
	Notes              string               `json:"notes"`
}

func (ctl *GalleryController) GetPhotos(c *gin.Context) {
	photos, err := ctl.Gallery.LoadPhotos()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load photos")
		return
	}
	if area := c.Query("area"); area != "" {
		filtered := photos[:0]
		for _, p := range photos {
			if p.Area == models.TreatmentArea(area) {
				filtered = append(filtered, p)
			}
		}
		photos = filtered
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

// SavePhoto stores one base64 image. The payload must be a data URL of
// an allowed type and fit the size cap; the store enforces the photo
// count cap.
func (ctl *GalleryController) SavePhoto(c *gin.Context) {
	var input SavePhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Type != models.PhotoBefore && input.Type != models.PhotoAfter {
		utils.RespondWithError(c, http.StatusBadRequest, "type must be before or after")
		return
	}
	if !strings.HasPrefix(input.ImageData, "data:image/jpeg;base64,") &&
		!strings.HasPrefix(input.ImageData, "data:image/png;base64,") &&
		!strings.HasPrefix(input.ImageData, "data:image/webp;base64,") {
		utils.RespondWithError(c, http.StatusBadRequest, "imageData must be a JPEG, PNG or WebP data URL")
		return
	}
	// base64 text is ~4/3 of the decoded size
	if len(input.ImageData) > models.ImageMaxSizeBytes*4/3 {
		utils.RespondWithError(c, http.StatusRequestEntityTooLarge, "画像サイズが大きすぎます（1MB以下にしてください）")
		return
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	photo := models.GalleryPhoto{
		ID:                 ctl.Gallery.GeneratePhotoID(),
		Type:               input.Type,
		Area:               input.Area,
		Date:               date,
		ImageData:          input.ImageData,
		ThumbnailData:      input.ThumbnailData,
		TreatmentHistoryID: input.TreatmentHistoryID,
		Notes:              input.Notes,
		CreatedAt:          time.Now().Format(time.RFC3339),
	}
	if err := ctl.Gallery.SavePhoto(photo); err != nil {
		utils.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// DeletePhoto removes a photo and any pairs referencing it.
func (ctl *GalleryController) DeletePhoto(c *gin.Context) {
	if err := ctl.Gallery.DeletePhoto(c.Param("id")); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted"})
}

func (ctl *GalleryController) GetPairs(c *gin.Context) {
	pairs, err := ctl.Gallery.LoadPairs()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load pairs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pairs": pairs})
}

// SavePair links an existing before photo with an after photo.
func (ctl *GalleryController) SavePair(c *gin.Context) {
	var input SavePairInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	for _, photoID := range []string{input.BeforePhotoID, input.AfterPhotoID} {
		if _, ok, err := ctl.Gallery.PhotoByID(photoID); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load photos")
			return
		} else if !ok {
			utils.RespondWithError(c, http.StatusNotFound, "Photo not found: "+photoID)
			return
		}
	}

	pair := models.BeforeAfterPair{
		ID:                 ctl.Gallery.GeneratePairID(),
		BeforePhotoID:      input.BeforePhotoID,
		AfterPhotoID:       input.AfterPhotoID,
		Area:               input.Area,
		TreatmentHistoryID: input.TreatmentHistoryID,
		Notes:              input.Notes,
		CreatedAt:          time.Now().Format(time.RFC3339),
	}
	if err := ctl.Gallery.SavePair(pair); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save pair")
		return
	}
	c.JSON(http.StatusCreated, pair)
}

func (ctl *GalleryController) DeletePair(c *gin.Context) {
	if err := ctl.Gallery.DeletePair(c.Param("id")); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete pair")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pair deleted"})
}

func (ctl *GalleryController) GetSettings(c *gin.Context) {
	settings, err := ctl.Gallery.LoadSettings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (ctl *GalleryController) UpdateSettings(c *gin.Context) {
	var input models.GallerySettings
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := ctl.Gallery.SaveSettings(input); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, input)
}

// GetUsage reports how close the gallery is to the photo cap.
func (ctl *GalleryController) GetUsage(c *gin.Context) {
	count, err := ctl.Gallery.PhotoCount()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count photos")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"photoCount": count,
		"maxPhotos":  models.MaxGalleryPhotos,
		"remaining":  models.MaxGalleryPhotos - count,
	})
}
