package models

// CustomerAddress holds the postal address plus the nearest-station hints
// used by the nearby-clinic search.
type CustomerAddress struct {
	PostalCode  string `json:"postalCode,omitempty"`
	Prefecture  string `json:"prefecture"`
	City        string `json:"city"`
	Street      string `json:"street"`
	Building    string `json:"building,omitempty"`
	HomeStation string `json:"homeStation,omitempty"`
	WorkStation string `json:"workStation,omitempty"`
}

// VisitRecord marks the first or most recent visit of a customer.
type VisitRecord struct {
	Date     string `json:"date"`
	ClinicID string `json:"clinicId"`
}

// Customer is the clinic customer master record. The patient number is the
// clinic-issued identifier in the form SBC-######, unique across customers
// and uppercase-normalized at lookup time.
type Customer struct {
	ID            string          `json:"id"`
	PatientNumber string          `json:"patientNumber"`
	Name          string          `json:"name"`
	NameKana      string          `json:"nameKana,omitempty"`
	Gender        string          `json:"gender"`
	BirthDate     string          `json:"birthDate"`
	Age           int             `json:"age"`
	Address       CustomerAddress `json:"address"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	FirstVisit    VisitRecord     `json:"firstVisit"`
	LastVisit     VisitRecord     `json:"lastVisit"`
	ContractIDs   []string        `json:"contractIds"`
	HistoryIDs    []string        `json:"historyIds"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

// CustomerSession is the ephemeral authentication record persisted under
// clinic_customer_session. It expires 24 hours after AuthenticatedAt.
type CustomerSession struct {
	CustomerID      string `json:"customerId"`
	PatientNumber   string `json:"patientNumber"`
	CustomerName    string `json:"customerName"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	AuthenticatedAt string `json:"authenticatedAt"`
}
