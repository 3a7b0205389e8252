// data/store.go
package data

import (
	"sort"
	"strings"
	"sync"
	"time"

	"clinicflash-backend/models"
	"clinicflash-backend/utils"
)

// TreatmentIntervalDays is the recommended minimum gap between sessions.
const TreatmentIntervalDays = 28

// IntervalCheck is the result of the treatment spacing check.
type IntervalCheck struct {
	IsWarning     bool `json:"isWarning"`
	DaysSinceLast int  `json:"daysSinceLast"`
	HasHistory    bool `json:"hasHistory"`
}

// Store holds the seeded clinic dataset behind an injectable handle.
// Reads return copies of the slices; mutations hold the lock.
type Store struct {
	mu              sync.RWMutex
	customers       []models.Customer
	contracts       []models.CourseContract
	sharedContracts []models.CourseContract
	history         []models.TreatmentHistory
	sharedHistory   []models.TreatmentHistory
	nearbyClinics   []models.NearbyClinic
	points          []models.CustomerPoints
	coupons         []models.Coupon
	customerCoupons map[string][]string
	referrals       []models.ReferralProgram
	address         models.CustomerAddress
}

// NewStore builds a store seeded with the fixture dataset.
func NewStore() *Store {
	s := &Store{
		customers:       append([]models.Customer(nil), Customers...),
		contracts:       append([]models.CourseContract(nil), CustomerContracts...),
		sharedContracts: append([]models.CourseContract(nil), CourseContracts...),
		history:         append([]models.TreatmentHistory(nil), CustomerHistory...),
		sharedHistory:   append([]models.TreatmentHistory(nil), TreatmentHistorySeed...),
		nearbyClinics:   append([]models.NearbyClinic(nil), NearbyClinics...),
		points:          append([]models.CustomerPoints(nil), CustomerPointsSeed...),
		coupons:         append([]models.Coupon(nil), Coupons...),
		referrals:       append([]models.ReferralProgram(nil), ReferralPrograms...),
		address: models.CustomerAddress{
			HomeStation: "池袋",
			WorkStation: "品川",
		},
	}
	s.customerCoupons = make(map[string][]string, len(CustomerCoupons))
	for id, ids := range CustomerCoupons {
		s.customerCoupons[id] = append([]string(nil), ids...)
	}
	return s
}

// ========== 顧客 ==========

// FindCustomerByPatientNumber looks up a customer by the normalized
// patient number.
func (s *Store) FindCustomerByPatientNumber(patientNumber string) (models.Customer, bool) {
	normalized := utils.NormalizePatientNumber(patientNumber)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.PatientNumber == normalized {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (s *Store) FindCustomerByID(customerID string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == customerID {
			return c, true
		}
	}
	return models.Customer{}, false
}

// SearchCustomers filters by name, kana, phone, patient number or email.
// An empty query returns everyone.
func (s *Store) SearchCustomers(query string) []models.Customer {
	normalized := strings.ToLower(strings.TrimSpace(query))
	s.mu.RLock()
	defer s.mu.RUnlock()
	if normalized == "" {
		return append([]models.Customer(nil), s.customers...)
	}
	var out []models.Customer
	for _, c := range s.customers {
		if strings.Contains(strings.ToLower(c.Name), normalized) ||
			strings.Contains(strings.ToLower(c.NameKana), normalized) ||
			strings.Contains(c.Phone, normalized) ||
			strings.Contains(strings.ToLower(c.PatientNumber), normalized) ||
			strings.Contains(strings.ToLower(c.Email), normalized) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) AllCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer(nil), s.customers...)
}

// ========== 施術履歴 ==========

// CustomerHistoryByID merges both history tables for one customer,
// de-duplicated by record id and sorted newest first.
func (s *Store) CustomerHistoryByID(customerID string) []models.TreatmentHistory {
	customer, ok := s.FindCustomerByID(customerID)
	if !ok {
		return nil
	}

	wanted := make(map[string]bool, len(customer.HistoryIDs))
	for _, id := range customer.HistoryIDs {
		wanted[id] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var merged []models.TreatmentHistory
	seen := make(map[string]bool)
	for _, h := range s.history {
		if wanted[h.ID] && !seen[h.ID] {
			merged = append(merged, h)
			seen[h.ID] = true
		}
	}
	for _, h := range s.sharedHistory {
		if wanted[h.ID] && !seen[h.ID] {
			merged = append(merged, h)
			seen[h.ID] = true
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Date > merged[j].Date
	})
	return merged
}

// SharedHistory is the default patient's treatment log, newest last.
func (s *Store) SharedHistory() []models.TreatmentHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TreatmentHistory(nil), s.sharedHistory...)
}

// LastTreatmentDate returns the most recent date in the shared log.
func (s *Store) LastTreatmentDate() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.sharedHistory) == 0 {
		return time.Time{}, false
	}
	latest := ""
	for _, h := range s.sharedHistory {
		if h.Date > latest {
			latest = h.Date
		}
	}
	t, err := time.Parse("2006-01-02", latest)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CheckTreatmentInterval warns when the gap since the last treatment is
// shorter than the recommended 4 weeks.
func (s *Store) CheckTreatmentInterval(now time.Time) IntervalCheck {
	last, ok := s.LastTreatmentDate()
	if !ok {
		return IntervalCheck{}
	}
	days := utils.DaysBetween(last, now)
	return IntervalCheck{
		IsWarning:     days < TreatmentIntervalDays,
		DaysSinceLast: days,
		HasHistory:    true,
	}
}

func (s *Store) TreatmentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sharedHistory)
}

// UpdateTreatmentNotes replaces the notes of one history record.
func (s *Store) UpdateTreatmentNotes(historyID, notes string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sharedHistory {
		if s.sharedHistory[i].ID == historyID {
			s.sharedHistory[i].Notes = notes
			return true
		}
	}
	for i := range s.history {
		if s.history[i].ID == historyID {
			s.history[i].Notes = notes
			return true
		}
	}
	return false
}

// SaveTreatmentFeedback attaches a feedback record to one visit.
func (s *Store) SaveTreatmentFeedback(historyID string, fb models.TreatmentFeedback) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sharedHistory {
		if s.sharedHistory[i].ID == historyID {
			s.sharedHistory[i].Feedback = &fb
			return true
		}
	}
	for i := range s.history {
		if s.history[i].ID == historyID {
			s.history[i].Feedback = &fb
			return true
		}
	}
	return false
}

// ========== コース契約 ==========

// UnusedCourses returns the default patient's contracts with sessions
// remaining.
func (s *Store) UnusedCourses() []models.CourseContract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CourseContract
	for _, c := range s.sharedContracts {
		if c.RemainingSessions > 0 {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) CustomerContracts(customerID string) []models.CourseContract {
	customer, ok := s.FindCustomerByID(customerID)
	if !ok {
		return nil
	}
	wanted := make(map[string]bool, len(customer.ContractIDs))
	for _, id := range customer.ContractIDs {
		wanted[id] = true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CourseContract
	for _, c := range s.contracts {
		if wanted[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) CustomerUnusedCourses(customerID string) []models.CourseContract {
	var out []models.CourseContract
	for _, c := range s.CustomerContracts(customerID) {
		if c.RemainingSessions > 0 {
			out = append(out, c)
		}
	}
	return out
}

// AllContracts returns every per-customer contract (admin view).
func (s *Store) AllContracts() []models.CourseContract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CourseContract(nil), s.contracts...)
}

// ========== 近隣クリニック ==========

func (s *Store) CustomerAddress() models.CustomerAddress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.address
}

// UpdateCustomerAddress overwrites only the fields that are set.
func (s *Store) UpdateCustomerAddress(addr models.CustomerAddress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if addr.PostalCode != "" {
		s.address.PostalCode = addr.PostalCode
	}
	if addr.Prefecture != "" {
		s.address.Prefecture = addr.Prefecture
	}
	if addr.City != "" {
		s.address.City = addr.City
	}
	if addr.Street != "" {
		s.address.Street = addr.Street
	}
	if addr.Building != "" {
		s.address.Building = addr.Building
	}
	if addr.HomeStation != "" {
		s.address.HomeStation = addr.HomeStation
	}
	if addr.WorkStation != "" {
		s.address.WorkStation = addr.WorkStation
	}
}

// SetHomeAndWorkStation replaces both stations. An empty work station
// clears the previous one.
func (s *Store) SetHomeAndWorkStation(home, work string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.address.HomeStation = home
	s.address.WorkStation = work
}

// NearbyClinicAvailability lists clinics within an hour of the customer
// with open slots today, sorted by travel time. Home wins over work when
// both are in range.
func (s *Store) NearbyClinicAvailability() []models.ClinicAvailability {
	s.mu.RLock()
	addr := s.address
	clinics := append([]models.NearbyClinic(nil), s.nearbyClinics...)
	s.mu.RUnlock()

	const maxTravelTime = 60
	var result []models.ClinicAvailability

	for _, clinic := range clinics {
		var availableSlots []models.TimeSlot
		for _, slot := range clinic.TodaySlots {
			if slot.Available {
				availableSlots = append(availableSlots, slot)
			}
		}
		if len(availableSlots) == 0 {
			continue
		}

		if addr.HomeStation != "" {
			if t := TravelTime(addr.HomeStation, clinic.Station); t <= maxTravelTime {
				result = append(result, models.ClinicAvailability{
					ClinicID:       clinic.ID,
					ClinicName:     clinic.Name,
					Address:        clinic.Address,
					Station:        clinic.Station,
					TravelTime:     t,
					TravelFrom:     "home",
					AvailableSlots: availableSlots,
				})
				continue
			}
		}

		if addr.WorkStation != "" {
			if t := TravelTime(addr.WorkStation, clinic.Station); t <= maxTravelTime {
				result = append(result, models.ClinicAvailability{
					ClinicID:       clinic.ID,
					ClinicName:     clinic.Name,
					Address:        clinic.Address,
					Station:        clinic.Station,
					TravelTime:     t,
					TravelFrom:     "work",
					AvailableSlots: availableSlots,
				})
			}
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TravelTime < result[j].TravelTime
	})
	return result
}

func (s *Store) NearbyClinicList() []models.NearbyClinic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.NearbyClinic(nil), s.nearbyClinics...)
}

func (s *Store) ClinicSlots(clinicID string) []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.nearbyClinics {
		if c.ID == clinicID {
			return append([]models.TimeSlot(nil), c.TodaySlots...)
		}
	}
	return nil
}

// NearbyClinicName resolves a branch id to its display name.
func (s *Store) NearbyClinicName(clinicID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.nearbyClinics {
		if c.ID == clinicID {
			return c.Name
		}
	}
	return "不明なクリニック"
}

// ========== ポイント・クーポン・紹介 ==========

func (s *Store) CustomerPoints(customerID string) (models.CustomerPoints, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.points {
		if p.CustomerID == customerID {
			return p, true
		}
	}
	return models.CustomerPoints{}, false
}

// CustomerCoupons lists the customer's unused coupons.
func (s *Store) CustomerCoupons(customerID string) []models.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[string]bool)
	for _, id := range s.customerCoupons[customerID] {
		wanted[id] = true
	}
	var out []models.Coupon
	for _, c := range s.coupons {
		if wanted[c.ID] && !c.IsUsed {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) AllCoupons() []models.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Coupon(nil), s.coupons...)
}

func (s *Store) CustomerReferral(customerID string) (models.ReferralProgram, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.referrals {
		if r.CustomerID == customerID {
			return r, true
		}
	}
	return models.ReferralProgram{}, false
}

func (s *Store) FindReferralByCode(code string) (models.ReferralProgram, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.referrals {
		if strings.EqualFold(r.ReferralCode, code) {
			return r, true
		}
	}
	return models.ReferralProgram{}, false
}

// ExpiringPointsWarning returns the first tranche expiring within 30
// days of now.
func (s *Store) ExpiringPointsWarning(customerID string, now time.Time) (models.ExpiringPoints, bool) {
	points, ok := s.CustomerPoints(customerID)
	if !ok {
		return models.ExpiringPoints{}, false
	}
	limit := now.AddDate(0, 0, 30)
	for _, ep := range points.ExpiringPoints {
		expiry, err := time.Parse("2006-01-02", ep.ExpiryDate)
		if err != nil {
			continue
		}
		if !expiry.After(limit) {
			return ep, true
		}
	}
	return models.ExpiringPoints{}, false
}
