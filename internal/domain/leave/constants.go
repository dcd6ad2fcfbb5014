package leave

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"

	TypeCasual = "CASUAL"
	TypeSick   = "SICK"
	TypeEarned = "EARNED"
)

// Statuses is the closed status enumeration. ChangeStatus accepts every
// member, including PENDING: there is no forward-only guard and a terminal
// leave can be reopened.
var Statuses = []string{StatusPending, StatusApproved, StatusRejected, StatusCancelled}

var Types = []string{TypeCasual, TypeSick, TypeEarned}
