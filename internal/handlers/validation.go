package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Harshadsshinde/hospital-management-system/internal/apierr"
)

// bindJSON decodes and validates a request body, turning validator failures
// into one concatenated human-readable message.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apierr.BadRequest(validationMessage(err))
	}
	return nil
}

// bindForm is bindJSON for multipart form bodies (doctor creation).
func bindForm(c *gin.Context, req any) error {
	if err := c.ShouldBind(req); err != nil {
		return apierr.BadRequest(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Malformed JSON and type mismatches get the catch-all message.
		return "Please Fill Full Form!"
	}

	var parts []string
	missing := false
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = true
			continue
		}
		parts = append(parts, fieldMessage(fe))
	}
	if missing {
		parts = append([]string{"Please Fill Full Form!"}, parts...)
	}
	if len(parts) == 0 {
		return "Please Fill Full Form!"
	}
	return strings.Join(parts, " ")
}

// fieldMessage mirrors the per-field validation messages of the public API.
// Phone is exactly 10 characters and NIC is 2 to 13 characters; the messages
// state those bounds.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "FirstName":
		return "First Name Must Contain At Least 3 Characters!"
	case "LastName":
		return "Last Name Must Contain At Least 3 Characters!"
	case "Email":
		return "Provide A Valid Email!"
	case "Phone":
		if fe.Tag() == "min" {
			return "Phone Number Must Contain At Least 10 Digits!"
		}
		return "Phone Number Must Contain Exact 10 Digits!"
	case "NIC":
		return "NIC Must Contain Between 2 And 13 Characters!"
	case "Gender":
		return "Gender Must Be Either Male Or Female!"
	case "Password":
		return "Password Must Contain At Least 8 Characters!"
	case "Message":
		return "Message Must Contain At Least 10 Characters!"
	case "Status":
		return "Status Must Be Pending, Accepted Or Rejected!"
	case "Role":
		return "Provide A Valid Role!"
	default:
		return fmt.Sprintf("%s Is Invalid!", fe.Field())
	}
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate accepts the two date shapes the frontends send.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
