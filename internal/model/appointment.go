package model

import (
	"time"

	"dermclinic/internal/i18n"
)

type AppointmentStatus string

const (
	AppointmentNew       AppointmentStatus = "new"
	AppointmentContacted AppointmentStatus = "contacted"
	AppointmentBooked    AppointmentStatus = "booked"
	AppointmentClosed    AppointmentStatus = "closed"
)

// IsValidAppointmentStatus reports whether s is a known status value.
func IsValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentNew, AppointmentContacted, AppointmentBooked, AppointmentClosed:
		return true
	}
	return false
}

// Appointment is a request for a clinic visit submitted from the website.
type Appointment struct {
	ID        string            `json:"id" bson:"_id"`
	CreatedAt time.Time         `json:"createdAt" bson:"createdAt"`
	Name      string            `json:"name" bson:"name"`
	Phone     string            `json:"phone" bson:"phone"`
	Email     string            `json:"email,omitempty" bson:"email,omitempty"`
	Condition string            `json:"condition" bson:"condition"`
	Preferred string            `json:"preferred" bson:"preferred"`
	Status    AppointmentStatus `json:"status" bson:"status"`
	Locale    i18n.Locale       `json:"locale,omitempty" bson:"locale,omitempty"`
}
