package directory

import "time"

const (
	StatusActive  = "Active"
	StatusExiting = "Exiting"
)

// Employee is the persisted record. The credential hash and binary documents
// never leave the package through Info.
type Employee struct {
	ID                int64
	FirstName         string
	LastName          string
	MobileNumber      string
	AlternateMobile   string
	Status            string
	PasswordHash      string
	DateOfJoining     *time.Time
	Salary            float64
	EmailID           string
	Role              string
	OfficialEmail     string
	OrientationDate   *time.Time
	LaptopAssigned    bool
	KnowledgeTransfer bool
	IDReturned        bool
	ExitInterview     bool
	PayRoll           bool
	ManagerID         *int64
	AadhaarPan        []byte
	ProfilePic        []byte
	CreatedAt         time.Time
}

// Info is the outward-facing shape of an employee record.
type Info struct {
	ID                int64      `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	MobileNumber      string     `json:"mobileNumber"`
	AlternateMobile   string     `json:"alternateMobileNumber"`
	Status            string     `json:"status"`
	DateOfJoining     *time.Time `json:"dateOfJoining,omitempty"`
	Salary            float64    `json:"salary"`
	EmailID           string     `json:"emailId"`
	Role              string     `json:"role"`
	OfficialEmail     string     `json:"officialEmail"`
	OrientationDate   *time.Time `json:"orientationDate,omitempty"`
	LaptopAssigned    bool       `json:"laptopAssigned"`
	KnowledgeTransfer bool       `json:"knowledgeTransfer"`
	IDReturned        bool       `json:"idReturned"`
	ExitInterview     bool       `json:"exitInterview"`
	PayRoll           bool       `json:"payRoll"`
	ManagerID         *int64     `json:"managerId,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func (e Employee) Info() Info {
	return Info{
		ID:                e.ID,
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		MobileNumber:      e.MobileNumber,
		AlternateMobile:   e.AlternateMobile,
		Status:            e.Status,
		DateOfJoining:     e.DateOfJoining,
		Salary:            e.Salary,
		EmailID:           e.EmailID,
		Role:              e.Role,
		OfficialEmail:     e.OfficialEmail,
		OrientationDate:   e.OrientationDate,
		LaptopAssigned:    e.LaptopAssigned,
		KnowledgeTransfer: e.KnowledgeTransfer,
		IDReturned:        e.IDReturned,
		ExitInterview:     e.ExitInterview,
		PayRoll:           e.PayRoll,
		ManagerID:         e.ManagerID,
		CreatedAt:         e.CreatedAt,
	}
}

func (e Employee) DisplayName() string {
	return e.FirstName + " " + e.LastName
}
