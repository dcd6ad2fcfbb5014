package review

import "time"

// Review is one employee's record within a cycle. Subscores are pointers so
// an unrated dimension is distinguishable from a zero rating; the overall
// formula treats nil as absent and collapses the rating to 0.00.
type Review struct {
	ID            int64     `json:"reviewId"`
	EmployeeID    int64     `json:"employeeId"`
	ReviewerID    int64     `json:"reviewerId"`
	PeriodStart   time.Time `json:"reviewPeriodStart"`
	PeriodEnd     time.Time `json:"reviewPeriodEnd"`
	GoalsAchieved *int      `json:"goalsAchieved"`
	Communication *int      `json:"communication"`
	Technical     *int      `json:"technicalSkills"`
	Teamwork      *int      `json:"teamwork"`
	Leadership    *int      `json:"leadership"`
	Punctuality   *int      `json:"punctuality"`
	OverallRating float64   `json:"overallRating"`
	Comments      string    `json:"comments"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NamedReview is a review denormalized with the employee's and reviewer's
// display identities. Unresolvable references keep the identity fields empty.
type NamedReview struct {
	Review
	EmployeeName  string `json:"employeeName,omitempty"`
	EmployeeEmail string `json:"employeeEmail,omitempty"`
	ReviewerName  string `json:"reviewerName,omitempty"`
}
