// storage/session.go
package storage

import (
	"time"

	"clinicflash-backend/models"
)

// SessionExpiryHours is how long a customer session stays valid.
const SessionExpiryHours = 24

// SessionStore persists the authenticated patient session plus the
// remembered patient number for the next login.
type SessionStore struct {
	kv  KV
	now func() time.Time
}

func NewSessionStore(kv KV) *SessionStore {
	return &SessionStore{kv: kv, now: time.Now}
}

func (s *SessionStore) Save(session models.CustomerSession) error {
	return setJSON(s.kv, KeyCustomerSession, session)
}

// Load returns the stored session. An expired session is cleared and
// reported as absent.
func (s *SessionStore) Load() (models.CustomerSession, bool, error) {
	var session models.CustomerSession
	ok, err := getJSON(s.kv, KeyCustomerSession, &session)
	if err != nil || !ok {
		return models.CustomerSession{}, false, err
	}

	if session.AuthenticatedAt != "" {
		authTime, err := time.Parse(time.RFC3339, session.AuthenticatedAt)
		if err == nil && s.now().Sub(authTime) > SessionExpiryHours*time.Hour {
			_ = s.Clear()
			return models.CustomerSession{}, false, nil
		}
	}
	return session, true, nil
}

func (s *SessionStore) Clear() error {
	return s.kv.Delete(KeyCustomerSession)
}

func (s *SessionStore) IsAuthenticated() bool {
	session, ok, err := s.Load()
	return err == nil && ok && session.IsAuthenticated
}

// Create builds, stores and returns a fresh authenticated session.
func (s *SessionStore) Create(customerID, patientNumber, customerName string) (models.CustomerSession, error) {
	session := models.CustomerSession{
		CustomerID:      customerID,
		PatientNumber:   patientNumber,
		CustomerName:    customerName,
		IsAuthenticated: true,
		AuthenticatedAt: s.now().Format(time.RFC3339),
	}
	if err := s.Save(session); err != nil {
		return models.CustomerSession{}, err
	}
	return session, nil
}

func (s *SessionStore) SaveRememberedPatientNumber(patientNumber string) error {
	return setJSON(s.kv, KeyRememberedPatientNumber, patientNumber)
}

func (s *SessionStore) LoadRememberedPatientNumber() (string, bool, error) {
	var patientNumber string
	ok, err := getJSON(s.kv, KeyRememberedPatientNumber, &patientNumber)
	if err != nil || !ok {
		return "", false, err
	}
	return patientNumber, true, nil
}

func (s *SessionStore) ClearRememberedPatientNumber() error {
	return s.kv.Delete(KeyRememberedPatientNumber)
}
