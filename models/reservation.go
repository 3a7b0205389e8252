package models

// TreatmentCategory classifies a treatment menu.
type TreatmentCategory string

const (
	CategoryBeard        TreatmentCategory = "beard"
	CategoryOption       TreatmentCategory = "option"
	CategoryConsultation TreatmentCategory = "consultation"
)

// TreatmentMenu is one bookable menu item (area x course count).
type TreatmentMenu struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    TreatmentCategory `json:"category"`
	Description string            `json:"description"`
	Duration    int               `json:"duration"` // minutes
	Price       int               `json:"price"`    // tax included
	PriceNote   string            `json:"priceNote,omitempty"`
	IsPopular   bool              `json:"isPopular"`
}

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// CustomerInfo is the minimal identity attached to a booking.
type CustomerInfo struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	IsFirstVisit bool   `json:"isFirstVisit"`
}

// Booking is one reservation persisted under clinic_bookings.
type Booking struct {
	ID        string        `json:"id"`
	MenuID    string        `json:"menuId"`
	MenuName  string        `json:"menuName"`
	Date      string        `json:"date"` // YYYY-MM-DD
	Time      string        `json:"time"` // HH:mm
	Duration  int           `json:"duration"`
	Customer  CustomerInfo  `json:"customer"`
	Status    BookingStatus `json:"status"`
	CreatedAt string        `json:"createdAt"`
}

// TimeSlot is one selectable slot in an availability grid.
type TimeSlot struct {
	Time      string `json:"time"` // HH:mm
	Available bool   `json:"available"`
}

// BusinessHours describes one weekday's opening hours.
type BusinessHours struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0=Sunday
	Open      string `json:"open"`
	Close     string `json:"close"`
	IsClosed  bool   `json:"isClosed"`
}

// ClinicInfo is the home clinic profile.
type ClinicInfo struct {
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	BusinessHours []BusinessHours `json:"businessHours"`
	SlotDuration  int             `json:"slotDuration"` // minutes
}

// MenuOption is a structured selectable choice rendered as a button.
// Value is the string the client sends back verbatim when tapped.
type MenuOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
	Price string `json:"price,omitempty"`
}

// BookingConfirmation is the confirmation card shown before payment.
type BookingConfirmation struct {
	CustomerID     string `json:"customerId"`
	CustomerName   string `json:"customerName"`
	CustomerPhone  string `json:"customerPhone"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Menu           string `json:"menu"`
	Price          int    `json:"price"`
	WithAnesthesia bool   `json:"withAnesthesia"`
}

// WaitlistEntry is a queued request for a fully booked time slot.
type WaitlistEntry struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customerId"`
	CustomerName   string `json:"customerName"`
	CustomerPhone  string `json:"customerPhone"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Menu           string `json:"menu"`
	Position       int    `json:"position"`
	WithAnesthesia bool   `json:"withAnesthesia"`
}

// TreatmentFeedback is the patient's rating of one completed visit.
// 照射漏れ (leakage) is an area accidentally missed during laser application.
type TreatmentFeedback struct {
	SatisfactionRating int    `json:"satisfactionRating"` // 1-5
	HasLeakage         bool   `json:"hasLeakage"`
	LeakageDetail      string `json:"leakageDetail,omitempty"`
	Comment            string `json:"comment,omitempty"`
	CreatedAt          string `json:"createdAt"`
}

// TreatmentHistory is one completed visit.
type TreatmentHistory struct {
	ID             string             `json:"id"`
	Date           string             `json:"date"`
	Menu           string             `json:"menu"`
	Price          int                `json:"price"`
	WithAnesthesia bool               `json:"withAnesthesia"`
	Notes          string             `json:"notes,omitempty"`
	ClinicName     string             `json:"clinicName,omitempty"`
	LaserType      string             `json:"laserType,omitempty"`
	NurseName      string             `json:"nurseName,omitempty"`
	Feedback       *TreatmentFeedback `json:"feedback,omitempty"`
}

// CourseContract is a pre-paid bundle of treatment sessions.
// UsedSessions + RemainingSessions == TotalSessions by construction.
type CourseContract struct {
	ID                string `json:"id"`
	CourseName        string `json:"courseName"`
	TotalSessions     int    `json:"totalSessions"`
	UsedSessions      int    `json:"usedSessions"`
	RemainingSessions int    `json:"remainingSessions"`
	StartDate         string `json:"startDate"`
	ExpiryDate        string `json:"expiryDate"`
	LastTreatmentDate string `json:"lastTreatmentDate,omitempty"`
}

// NearbyClinic is a branch clinic with its today-only slot list.
type NearbyClinic struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	Station    string     `json:"station"`
	TodaySlots []TimeSlot `json:"todaySlots"`
}

// ClinicAvailability is a nearby clinic with open slots, annotated with
// travel time from the customer's home or work station.
type ClinicAvailability struct {
	ClinicID       string     `json:"clinicId"`
	ClinicName     string     `json:"clinicName"`
	Address        string     `json:"address"`
	Station        string     `json:"station"`
	TravelTime     int        `json:"travelTime"` // minutes
	TravelFrom     string     `json:"travelFrom"` // "home" or "work"
	AvailableSlots []TimeSlot `json:"availableSlots"`
}

// MessageRole distinguishes the two chat participants.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is one chat bubble. Whichever optional affordance fields are
// set determines what the client renders beneath the text.
type ChatMessage struct {
	ID                     string               `json:"id"`
	Role                   MessageRole          `json:"role"`
	Content                string               `json:"content"`
	Timestamp              string               `json:"timestamp"`
	QuickReplies           []string             `json:"quickReplies,omitempty"`
	TimeSlots              []TimeSlot           `json:"timeSlots,omitempty"`
	MenuOptions            []MenuOption         `json:"menuOptions,omitempty"`
	ShowCalendar           bool                 `json:"showCalendar,omitempty"`
	ShowCustomerConfirm    *BookingConfirmation `json:"showCustomerConfirm,omitempty"`
	ShowPayment            *BookingConfirmation `json:"showPayment,omitempty"`
	ShowCustomerForm       bool                 `json:"showCustomerForm,omitempty"`
	ShowWaitlistConfirm    *WaitlistEntry       `json:"showWaitlistConfirm,omitempty"`
	ShowIntervalWarning    bool                 `json:"showIntervalWarning,omitempty"`
	ShowNearbyClinicSlots  []ClinicAvailability `json:"showNearbyClinicSlots,omitempty"`
	ShowAddressForm        bool                 `json:"showAddressForm,omitempty"`
	ShowPatientNumberInput bool                 `json:"showPatientNumberInput,omitempty"`
	IsReminder             bool                 `json:"isReminder,omitempty"`
}

// SavedPhrase is one reusable input phrase, ranked by usage.
type SavedPhrase struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	UsageCount int    `json:"usageCount"`
	CreatedAt  string `json:"createdAt"`
}

// IntentType is the coarse classification produced by the intent parser.
type IntentType string

const (
	IntentBookingRequest IntentType = "booking_request"
	IntentMenuInquiry    IntentType = "menu_inquiry"
	IntentPriceInquiry   IntentType = "price_inquiry"
	IntentHoursInquiry   IntentType = "hours_inquiry"
	IntentGreeting       IntentType = "greeting"
	IntentConfirmation   IntentType = "confirmation"
	IntentUnknown        IntentType = "unknown"
)
