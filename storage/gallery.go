// storage/gallery.go
package storage

import (
	"fmt"
	"math/rand"
	"time"

	"clinicflash-backend/models"
)

// GalleryStore persists progress photos, before/after pairs and the
// gallery preferences.
type GalleryStore struct {
	kv  KV
	now func() time.Time
}

func NewGalleryStore(kv KV) *GalleryStore {
	return &GalleryStore{kv: kv, now: time.Now}
}

// ========== 写真 ==========

// SavePhoto inserts or replaces one photo. Inserting past the cap fails.
func (s *GalleryStore) SavePhoto(photo models.GalleryPhoto) error {
	photos, err := s.LoadPhotos()
	if err != nil {
		return err
	}

	for i := range photos {
		if photos[i].ID == photo.ID {
			photos[i] = photo
			return setJSON(s.kv, KeyGalleryPhotos, photos)
		}
	}

	if len(photos) >= models.MaxGalleryPhotos {
		return fmt.Errorf("写真の保存上限（%d枚）に達しています", models.MaxGalleryPhotos)
	}
	photos = append(photos, photo)
	return setJSON(s.kv, KeyGalleryPhotos, photos)
}

func (s *GalleryStore) LoadPhotos() ([]models.GalleryPhoto, error) {
	var photos []models.GalleryPhoto
	ok, err := getJSON(s.kv, KeyGalleryPhotos, &photos)
	if err != nil || !ok {
		return []models.GalleryPhoto{}, err
	}
	return photos, nil
}

// DeletePhoto removes a photo and every pair referencing it.
func (s *GalleryStore) DeletePhoto(photoID string) error {
	photos, err := s.LoadPhotos()
	if err != nil {
		return err
	}
	kept := photos[:0]
	for _, p := range photos {
		if p.ID != photoID {
			kept = append(kept, p)
		}
	}
	if err := setJSON(s.kv, KeyGalleryPhotos, kept); err != nil {
		return err
	}

	pairs, err := s.LoadPairs()
	if err != nil {
		return err
	}
	keptPairs := pairs[:0]
	for _, p := range pairs {
		if p.BeforePhotoID != photoID && p.AfterPhotoID != photoID {
			keptPairs = append(keptPairs, p)
		}
	}
	return setJSON(s.kv, KeyGalleryPairs, keptPairs)
}

func (s *GalleryStore) PhotoByID(photoID string) (models.GalleryPhoto, bool, error) {
	photos, err := s.LoadPhotos()
	if err != nil {
		return models.GalleryPhoto{}, false, err
	}
	for _, p := range photos {
		if p.ID == photoID {
			return p, true, nil
		}
	}
	return models.GalleryPhoto{}, false, nil
}

func (s *GalleryStore) PhotoCount() (int, error) {
	photos, err := s.LoadPhotos()
	return len(photos), err
}

// ========== ペア ==========

func (s *GalleryStore) SavePair(pair models.BeforeAfterPair) error {
	pairs, err := s.LoadPairs()
	if err != nil {
		return err
	}
	for i := range pairs {
		if pairs[i].ID == pair.ID {
			pairs[i] = pair
			return setJSON(s.kv, KeyGalleryPairs, pairs)
		}
	}
	return setJSON(s.kv, KeyGalleryPairs, append(pairs, pair))
}

func (s *GalleryStore) LoadPairs() ([]models.BeforeAfterPair, error) {
	var pairs []models.BeforeAfterPair
	ok, err := getJSON(s.kv, KeyGalleryPairs, &pairs)
	if err != nil || !ok {
		return []models.BeforeAfterPair{}, err
	}
	return pairs, nil
}

func (s *GalleryStore) DeletePair(pairID string) error {
	pairs, err := s.LoadPairs()
	if err != nil {
		return err
	}
	kept := pairs[:0]
	for _, p := range pairs {
		if p.ID != pairID {
			kept = append(kept, p)
		}
	}
	return setJSON(s.kv, KeyGalleryPairs, kept)
}

// ========== 設定 ==========

func (s *GalleryStore) SaveSettings(settings models.GallerySettings) error {
	return setJSON(s.kv, KeyGallerySettings, settings)
}

// LoadSettings fills missing fields from the defaults.
func (s *GalleryStore) LoadSettings() (models.GallerySettings, error) {
	var settings models.GallerySettings
	ok, err := getJSON(s.kv, KeyGallerySettings, &settings)
	if err != nil || !ok {
		return models.DefaultGallerySettings, err
	}
	if settings.DefaultArea == "" {
		settings.DefaultArea = models.DefaultGallerySettings.DefaultArea
	}
	return settings, nil
}

// ========== ID生成 ==========

func (s *GalleryStore) GeneratePhotoID() string {
	return fmt.Sprintf("photo_%d_%06d", s.now().UnixMilli(), rand.Intn(1000000))
}

func (s *GalleryStore) GeneratePairID() string {
	return fmt.Sprintf("pair_%d_%06d", s.now().UnixMilli(), rand.Intn(1000000))
}
