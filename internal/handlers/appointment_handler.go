package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Harshadsshinde/hospital-management-system/internal/apierr"
	"github.com/Harshadsshinde/hospital-management-system/internal/middleware"
	"github.com/Harshadsshinde/hospital-management-system/internal/models"
	"github.com/Harshadsshinde/hospital-management-system/internal/store"
)

type appointmentRequest struct {
	FirstName       string `json:"firstName" binding:"required,min=3"`
	LastName        string `json:"lastName" binding:"required,min=3"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required,len=10"`
	NIC             string `json:"nic" binding:"required,min=2,max=13"`
	DOB             string `json:"dob" binding:"required"`
	Gender          string `json:"gender" binding:"required,oneof=Male Female"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	Department      string `json:"department" binding:"required"`
	DoctorFirstName string `json:"doctor_firstName" binding:"required"`
	DoctorLastName  string `json:"doctor_lastName" binding:"required"`
	HasVisited      bool   `json:"hasVisited"`
	Address         string `json:"address" binding:"required"`
}

// appointmentPatch re-runs the creation validators on whatever fields the
// admin supplies. Absent fields stay untouched.
type appointmentPatch struct {
	FirstName       *string `json:"firstName" binding:"omitempty,min=3"`
	LastName        *string `json:"lastName" binding:"omitempty,min=3"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Phone           *string `json:"phone" binding:"omitempty,len=10"`
	NIC             *string `json:"nic" binding:"omitempty,min=2,max=13"`
	DOB             *string `json:"dob" binding:"omitempty"`
	Gender          *string `json:"gender" binding:"omitempty,oneof=Male Female"`
	AppointmentDate *string `json:"appointment_date" binding:"omitempty"`
	Department      *string `json:"department" binding:"omitempty"`
	Address         *string `json:"address" binding:"omitempty"`
	HasVisited      *bool   `json:"hasVisited"`
	Status          *string `json:"status" binding:"omitempty,oneof=Pending Accepted Rejected"`
}

// resolveDoctor looks up exactly one Doctor with the requested name and
// department. Multiple matches mean duplicate doctor records; the booking is
// rejected rather than auto-selecting among them.
func (h *Handler) resolveDoctor(ctx context.Context, firstName, lastName, department string) (primitive.ObjectID, error) {
	doctors, err := h.Users.MatchDoctors(ctx, firstName, lastName, department)
	if err != nil {
		return primitive.NilObjectID, err
	}
	switch len(doctors) {
	case 0:
		return primitive.NilObjectID, apierr.BadRequest("Doctor Not Found!")
	case 1:
		return doctors[0].ID, nil
	default:
		return primitive.NilObjectID, apierr.BadRequest("Doctors Conflict! Please Contact Through Email Or Phone!")
	}
}

// PostAppointment handles POST /api/v1/appointment/post. The patient id
// always comes from the authenticated session, never from the request body.
func (h *Handler) PostAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}
	dob, err := parseDate(req.DOB)
	if err != nil {
		fail(c, apierr.BadRequest("Provide A Valid DOB!"))
		return
	}

	patient, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, apierr.BadRequest("User is not authenticated!"))
		return
	}

	doctorID, err := h.resolveDoctor(c.Request.Context(), req.DoctorFirstName, req.DoctorLastName, req.Department)
	if err != nil {
		fail(c, err)
		return
	}

	apt := &models.Appointment{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		NIC:             req.NIC,
		DOB:             dob,
		Gender:          req.Gender,
		AppointmentDate: req.AppointmentDate,
		Department:      req.Department,
		Doctor: models.DoctorName{
			FirstName: req.DoctorFirstName,
			LastName:  req.DoctorLastName,
		},
		HasVisited: req.HasVisited,
		Address:    req.Address,
		DoctorID:   doctorID,
		PatientID:  patient.ID,
		Status:     models.StatusPending,
	}

	if err := h.Appointments.Create(c.Request.Context(), apt); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"appointment": apt,
		"message":     "Appointment Sent!",
	})
}

// GetAllAppointments handles GET /api/v1/appointment/getall.
func (h *Handler) GetAllAppointments(c *gin.Context) {
	appointments, err := h.Appointments.All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointments": appointments})
}

// UpdateAppointment handles PUT /api/v1/appointment/update/:id. Only an
// acknowledgement is returned, not the mutated document.
func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, apierr.BadRequest("Invalid Appointment Id!"))
		return
	}

	var patch appointmentPatch
	if err := bindJSON(c, &patch); err != nil {
		fail(c, err)
		return
	}

	if _, err := h.Appointments.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, apierr.NotFound("Appointment Not Found!"))
			return
		}
		fail(c, err)
		return
	}

	fields, err := patchFields(&patch)
	if err != nil {
		fail(c, err)
		return
	}
	if len(fields) > 0 {
		if err := h.Appointments.Update(c.Request.Context(), id, fields); err != nil {
			fail(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Appointment Status Updated!",
	})
}

// DeleteAppointment handles DELETE /api/v1/appointment/delete/:id. Hard
// delete; nothing else references an appointment, so no cleanup follows.
func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, apierr.BadRequest("Invalid Appointment Id!"))
		return
	}

	if err := h.Appointments.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, apierr.NotFound("Appointment Not Found!"))
			return
		}
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Appointment Deleted!",
	})
}

func patchFields(patch *appointmentPatch) (map[string]any, error) {
	fields := make(map[string]any)
	if patch.FirstName != nil {
		fields["firstName"] = *patch.FirstName
	}
	if patch.LastName != nil {
		fields["lastName"] = *patch.LastName
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.Phone != nil {
		fields["phone"] = *patch.Phone
	}
	if patch.NIC != nil {
		fields["nic"] = *patch.NIC
	}
	if patch.DOB != nil {
		dob, err := parseDate(*patch.DOB)
		if err != nil {
			return nil, apierr.BadRequest("Provide A Valid DOB!")
		}
		fields["dob"] = dob
	}
	if patch.Gender != nil {
		fields["gender"] = *patch.Gender
	}
	if patch.AppointmentDate != nil {
		fields["appointment_date"] = *patch.AppointmentDate
	}
	if patch.Department != nil {
		fields["department"] = *patch.Department
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if patch.HasVisited != nil {
		fields["hasVisited"] = *patch.HasVisited
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	return fields, nil
}
