// Package store persists users, appointments and contact messages in the
// document database. Handlers depend on the interfaces below; the Mongo
// implementations live alongside them in this package.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Harshadsshinde/hospital-management-system/internal/models"
)

// UserStore is the credential store. FindByEmail is the only read that
// includes the password hash; every other read strips it.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Doctors(ctx context.Context) ([]models.User, error)
	// MatchDoctors returns every Doctor with the exact given name and
	// department. The caller decides what zero or multiple matches mean.
	MatchDoctors(ctx context.Context, firstName, lastName, department string) ([]models.User, error)
}

// AppointmentStore is the appointment ledger's persistence.
type AppointmentStore interface {
	Create(ctx context.Context, apt *models.Appointment) error
	Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	All(ctx context.Context) ([]models.Appointment, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MessageStore is the contact-message inbox.
type MessageStore interface {
	Create(ctx context.Context, msg *models.Message) error
	All(ctx context.Context) ([]models.Message, error)
}
