// storage/kv.go
package storage

import "encoding/json"

// Storage keys. These match the clinic_* namespace the web client has
// always written, so existing records keep working.
const (
	KeyBookings                = "clinic_bookings"
	KeyChatHistory             = "clinic_chat_history"
	KeyCustomerSession         = "clinic_customer_session"
	KeyRememberedPatientNumber = "clinic_remembered_patient_number"
	KeySavedPhrases            = "clinic_saved_phrases"
	KeyGalleryPhotos           = "clinic_gallery_photos"
	KeyGalleryPairs            = "clinic_gallery_pairs"
	KeyGallerySettings         = "clinic_gallery_settings"
	KeyNotificationSettings    = "clinic_notification_settings"
	KeyCustomerPoints          = "clinic_customer_points"
	KeyCouponsUsed             = "clinic_customer_coupons_used"
	KeyCustomerReferral        = "clinic_customer_referral"
)

// KV is the minimal record store the persistence adapters run on. The
// gorm implementation backs it with a jsonb table; tests use the
// in-memory one.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

func getJSON(kv KV, key string, out interface{}) (bool, error) {
	raw, ok, err := kv.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func setJSON(kv KV, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return kv.Set(key, raw)
}
