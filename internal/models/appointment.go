package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppointmentStatus tracks the lifecycle of a booking request.
type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "Pending"
	StatusAccepted AppointmentStatus = "Accepted"
	StatusRejected AppointmentStatus = "Rejected"
)

// DoctorName is the doctor identity as requested by the patient, captured
// at booking time. The resolved reference lives in Appointment.DoctorID.
type DoctorName struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
}

type Appointment struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Patient contact fields, duplicated from the user record at booking time.
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	NIC       string    `bson:"nic" json:"nic"`
	DOB       time.Time `bson:"dob" json:"dob"`
	Gender    string    `bson:"gender" json:"gender"`

	AppointmentDate string             `bson:"appointment_date" json:"appointment_date"`
	Department      string             `bson:"department" json:"department"`
	Doctor          DoctorName         `bson:"doctor" json:"doctor"`
	HasVisited      bool               `bson:"hasVisited" json:"hasVisited"`
	Address         string             `bson:"address" json:"address"`
	DoctorID        primitive.ObjectID `bson:"doctorId" json:"doctorId"`
	PatientID       primitive.ObjectID `bson:"patientId" json:"patientId"`
	Status          AppointmentStatus  `bson:"status" json:"status"`
}
