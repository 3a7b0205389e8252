package models

// PhotoType distinguishes before and after shots.
type PhotoType string

const (
	PhotoBefore PhotoType = "before"
	PhotoAfter  PhotoType = "after"
)

// TreatmentArea is the facial area a photo documents.
type TreatmentArea string

const (
	AreaUpperLip TreatmentArea = "upper_lip"
	AreaChin     TreatmentArea = "chin"
	AreaCheekPic TreatmentArea = "cheek"
	AreaNeckPic  TreatmentArea = "neck"
	AreaFullFace TreatmentArea = "full_face"
)

// TreatmentAreaLabels maps areas to their Japanese display names.
var TreatmentAreaLabels = map[TreatmentArea]string{
	AreaUpperLip: "口上",
	AreaChin:     "アゴ",
	AreaCheekPic: "頬",
	AreaNeckPic:  "首",
	AreaFullFace: "全顔",
}

// GalleryPhoto is one before/after image with base64 payload.
type GalleryPhoto struct {
	ID                 string        `json:"id"`
	Type               PhotoType     `json:"type"`
	TreatmentHistoryID string        `json:"treatmentHistoryId,omitempty"`
	Date               string        `json:"date"` // YYYY-MM-DD
	Area               TreatmentArea `json:"area"`
	ImageData          string        `json:"imageData"`
	ThumbnailData      string        `json:"thumbnailData,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	CreatedAt          string        `json:"createdAt"`
}

// BeforeAfterPair links two photos of the same area.
type BeforeAfterPair struct {
	ID                 string        `json:"id"`
	BeforePhotoID      string        `json:"beforePhotoId"`
	AfterPhotoID       string        `json:"afterPhotoId"`
	Area               TreatmentArea `json:"area"`
	TreatmentHistoryID string        `json:"treatmentHistoryId,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	CreatedAt          string        `json:"createdAt"`
}

// GallerySettings is the per-browser gallery preference record.
type GallerySettings struct {
	DefaultArea       TreatmentArea `json:"defaultArea"`
	AutoLinkToHistory bool          `json:"autoLinkToHistory"`
}

// DefaultGallerySettings is the out-of-box gallery configuration.
var DefaultGallerySettings = GallerySettings{
	DefaultArea:       AreaFullFace,
	AutoLinkToHistory: true,
}

// Image constraints; MaxPhotos keeps the store under the client quota.
const (
	ImageMaxWidth     = 1200
	ImageMaxHeight    = 1200
	ImageMaxSizeBytes = 1024 * 1024
	ThumbnailSize     = 200
	MaxGalleryPhotos  = 30
)
