package storage

import (
	"fmt"
	"strings"
	"testing"

	"clinicflash-backend/models"
)

func TestSavePhotoEnforcesCap(t *testing.T) {
	store := NewGalleryStore(NewMemoryKV())

	for i := 0; i < models.MaxGalleryPhotos; i++ {
		err := store.SavePhoto(models.GalleryPhoto{
			ID:   fmt.Sprintf("photo-%02d", i),
			Type: "before",
			Area: "cheek",
		})
		if err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	err := store.SavePhoto(models.GalleryPhoto{ID: "photo-overflow", Type: "before"})
	if err == nil {
		t.Fatal("expected cap error")
	}
	if !strings.Contains(err.Error(), "上限") {
		t.Errorf("unexpected error: %v", err)
	}

	// Replacing an existing photo bypasses the cap check.
	if err := store.SavePhoto(models.GalleryPhoto{ID: "photo-00", Type: "after", Area: "chin"}); err != nil {
		t.Errorf("in-place update failed: %v", err)
	}
	photo, found, _ := store.PhotoByID("photo-00")
	if !found || photo.Type != "after" {
		t.Errorf("updated photo = %+v found=%v", photo, found)
	}
}

func TestDeletePhotoCascadesPairs(t *testing.T) {
	store := NewGalleryStore(NewMemoryKV())

	for _, id := range []string{"photo-a", "photo-b", "photo-c"} {
		if err := store.SavePhoto(models.GalleryPhoto{ID: id, Type: "before"}); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.SavePair(models.BeforeAfterPair{ID: "pair-1", BeforePhotoID: "photo-a", AfterPhotoID: "photo-b"}); err != nil {
		t.Fatal(err)
	}
	if err := store.SavePair(models.BeforeAfterPair{ID: "pair-2", BeforePhotoID: "photo-b", AfterPhotoID: "photo-c"}); err != nil {
		t.Fatal(err)
	}

	if err := store.DeletePhoto("photo-a"); err != nil {
		t.Fatal(err)
	}

	if _, found, _ := store.PhotoByID("photo-a"); found {
		t.Error("photo survived delete")
	}
	pairs, _ := store.LoadPairs()
	if len(pairs) != 1 || pairs[0].ID != "pair-2" {
		t.Errorf("pairs after cascade: %+v", pairs)
	}
}

func TestGallerySettingsDefaults(t *testing.T) {
	store := NewGalleryStore(NewMemoryKV())

	settings, err := store.LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.DefaultArea == "" {
		t.Error("defaults should carry an area")
	}

	settings.AutoLinkToHistory = !settings.AutoLinkToHistory
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	reloaded, _ := store.LoadSettings()
	if reloaded.AutoLinkToHistory != settings.AutoLinkToHistory {
		t.Error("settings round trip lost a field")
	}
}
