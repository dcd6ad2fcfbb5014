package directory

import (
	"fmt"
	"strconv"
	"time"
)

// Field setters replace the reflective field update of earlier revisions with
// a closed mapping from field name to typed setter. Credential and document
// fields are deliberately absent.
var fieldSetters = map[string]func(*Employee, string) error{
	"firstName":             func(e *Employee, v string) error { e.FirstName = v; return nil },
	"lastName":              func(e *Employee, v string) error { e.LastName = v; return nil },
	"mobileNumber":          func(e *Employee, v string) error { e.MobileNumber = v; return nil },
	"alternateMobileNumber": func(e *Employee, v string) error { e.AlternateMobile = v; return nil },
	"status":                func(e *Employee, v string) error { e.Status = v; return nil },
	"emailId":               func(e *Employee, v string) error { e.EmailID = v; return nil },
	"role":                  func(e *Employee, v string) error { e.Role = v; return nil },
	"officialEmail":         func(e *Employee, v string) error { e.OfficialEmail = v; return nil },
	"salary": func(e *Employee, v string) error {
		parsed, err := parseDecimal("salary", v)
		if err != nil {
			return err
		}
		e.Salary = parsed
		return nil
	},
	"dateOfJoining": func(e *Employee, v string) error {
		parsed, err := parseDate("dateOfJoining", v)
		if err != nil {
			return err
		}
		e.DateOfJoining = &parsed
		return nil
	},
	"orientationDate": func(e *Employee, v string) error {
		parsed, err := parseDate("orientationDate", v)
		if err != nil {
			return err
		}
		e.OrientationDate = &parsed
		return nil
	},
	"managerId": func(e *Employee, v string) error {
		parsed, err := parseInt64("managerId", v)
		if err != nil {
			return err
		}
		e.ManagerID = &parsed
		return nil
	},
	"laptopAssigned":    boolSetter("laptopAssigned", func(e *Employee, v bool) { e.LaptopAssigned = v }),
	"knowledgeTransfer": boolSetter("knowledgeTransfer", func(e *Employee, v bool) { e.KnowledgeTransfer = v }),
	"idReturned":        boolSetter("idReturned", func(e *Employee, v bool) { e.IDReturned = v }),
	"exitInterview":     boolSetter("exitInterview", func(e *Employee, v bool) { e.ExitInterview = v }),
	"payRoll":           boolSetter("payRoll", func(e *Employee, v bool) { e.PayRoll = v }),
}

// ApplyField coerces value into the named attribute's type and sets it on emp.
// Unknown names and coercion mismatches fail with ErrInvalid.
func ApplyField(emp *Employee, name, value string) error {
	setter, ok := fieldSetters[name]
	if !ok {
		return fmt.Errorf("%w: unknown field %q", ErrInvalid, name)
	}
	return setter(emp, value)
}

func boolSetter(field string, assign func(*Employee, bool)) func(*Employee, string) error {
	return func(e *Employee, v string) error {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be a boolean", ErrInvalid, field)
		}
		assign(e, parsed)
		return nil
	}
}

func parseDecimal(field, value string) (float64, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a decimal number", ErrInvalid, field)
	}
	return parsed, nil
}

func parseInt64(field, value string) (int64, error) {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalid, field)
	}
	return parsed, nil
}

func parseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date in yyyy-MM-dd format", ErrInvalid, field)
	}
	return parsed, nil
}
