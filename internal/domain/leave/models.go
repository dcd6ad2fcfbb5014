package leave

import "time"

// Leave is the persisted record. SubmittedDate is stamped at creation and
// never changes afterwards.
type Leave struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employeeId"`
	LeaveType     string    `json:"leaveType"`
	Status        string    `json:"status"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	SubmittedDate time.Time `json:"submittedDate"`
	Reason        string    `json:"reason"`
	Attachment    []byte    `json:"-"`
}

// HistoryEntry is a leave denormalized with the employee's display identity.
// Unresolvable references leave the identity fields empty instead of failing
// the whole listing.
type HistoryEntry struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employeeId"`
	LeaveType     string    `json:"leaveType"`
	Status        string    `json:"status"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	SubmittedDate time.Time `json:"submittedDate"`
	Reason        string    `json:"reason"`
	Name          string    `json:"name,omitempty"`
	EmailID       string    `json:"emailId,omitempty"`
	ManagerID     *int64    `json:"managerId,omitempty"`
}
