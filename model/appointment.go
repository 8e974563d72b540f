package model

import "gorm.io/gorm"

// Appointment status values. Status only ever moves from Scheduled to
// Cancelled; a cancelled appointment stays cancelled.
const (
	StatusScheduled = "Scheduled"
	StatusCancelled = "Cancelled"
)

// Appointment represents a booking between a doctor and a patient.
// @Description Appointment information
type Appointment struct {
	gorm.Model
	DoctorName  string `json:"doctor_name" gorm:"type:varchar(100);not null" example:"Dr. Smith"`
	PatientName string `json:"patient_name" gorm:"type:varchar(100);not null" example:"John Doe"`
	Date        string `json:"date" gorm:"type:varchar(100);not null" example:"2024-10-20"`
	Status      string `json:"status" gorm:"type:varchar(20);default:'Scheduled'" example:"Scheduled"`
	Notes       []Note `json:"notes" gorm:"foreignKey:AppointmentID"`
}

// Note is a single entry in an appointment's append-only note log.
type Note struct {
	gorm.Model
	AppointmentID uint   `json:"appointment_id" gorm:"not null;index"`
	Author        string `json:"author" gorm:"type:varchar(100)" example:"doctor"`
	Text          string `json:"text" gorm:"type:text;not null" example:"Follow-up"`
}

// NoteResponse is the wire shape of a note inside an appointment listing.
type NoteResponse struct {
	Author string `json:"author" example:"doctor"`
	Text   string `json:"text" example:"Follow-up"`
}

// AppointmentResponse is the wire shape of a listed appointment.
type AppointmentResponse struct {
	ID          uint           `json:"id" example:"1"`
	DoctorName  string         `json:"doctor_name" example:"Dr. Smith"`
	PatientName string         `json:"patient_name" example:"John Doe"`
	Date        string         `json:"date" example:"2024-10-20"`
	Status      string         `json:"status" example:"Scheduled"`
	Notes       []NoteResponse `json:"notes"`
}

// ToResponse flattens an appointment and its note rows into the wire shape.
// The notes slice is never nil so an empty log serializes as [].
func (a Appointment) ToResponse() AppointmentResponse {
	notes := make([]NoteResponse, 0, len(a.Notes))
	for _, n := range a.Notes {
		notes = append(notes, NoteResponse{Author: n.Author, Text: n.Text})
	}
	return AppointmentResponse{
		ID:          a.ID,
		DoctorName:  a.DoctorName,
		PatientName: a.PatientName,
		Date:        a.Date,
		Status:      a.Status,
		Notes:       notes,
	}
}
