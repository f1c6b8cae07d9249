package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role determines which operations a session may invoke.
type Role string

const (
	RolePatient Role = "Patient"
	RoleDoctor  Role = "Doctor"
	RoleAdmin   Role = "Admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor || r == RoleAdmin
}

// Avatar holds the external-storage reference for a doctor's picture.
type Avatar struct {
	PublicID string `bson:"publicId" json:"public_id"`
	URL      string `bson:"url" json:"url"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	NIC       string             `bson:"nic" json:"nic"`
	DOB       time.Time          `bson:"dob" json:"dob"`
	Gender    string             `bson:"gender" json:"gender"` // "Male" or "Female"
	Password  string             `bson:"password" json:"-"`    // Hide from JSON responses
	Role      Role               `bson:"role" json:"role"`
	// Doctor-only fields.
	DoctorDepartment string  `bson:"doctorDepartment,omitempty" json:"doctorDepartment,omitempty"`
	DocAvatar        *Avatar `bson:"docAvatar,omitempty" json:"docAvatar,omitempty"`
}
