package model

import (
	"errors"
	"fmt"

	"github.com/clinicore/hpms/util"
	"gorm.io/gorm"
)

// Appointment statuses. New appointments always start as Scheduled;
// the remaining statuses are reached through updates.
const (
	StatusScheduled = "Scheduled"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusNoShow    = "No Show"
	StatusCompleted = "Completed"
)

// AppointmentStatuses lists every valid appointment status.
var AppointmentStatuses = []string{
	StatusScheduled,
	StatusConfirmed,
	StatusCancelled,
	StatusNoShow,
	StatusCompleted,
}

// Appointment represents an appointment entity
// @Description Appointment information
type Appointment struct {
	ID              uint   `json:"appointment_id" gorm:"column:AppointmentID;primaryKey"`
	PatientID       uint   `json:"patient_id" gorm:"column:PatientID" example:"1"`
	DoctorID        uint   `json:"doctor_id" gorm:"column:DoctorID" example:"1"`
	AppointmentDate string `json:"appointment_date" gorm:"column:AppointmentDate" example:"2024-05-20"`
	AppointmentTime string `json:"appointment_time" gorm:"column:AppointmentTime" example:"14:30:00"`
	Status          string `json:"status" gorm:"column:Status" example:"Scheduled"`
	Location        string `json:"location" gorm:"column:Location" example:"Clinic 01"`
}

// TableName keeps the table name compatible with stores written by the
// original application.
func (Appointment) TableName() string { return "Appointments" }

// CreateAppointment persists a new appointment and returns the assigned
// id. Date and time are normalized to the storage formats and the status
// is always Scheduled, regardless of what the caller supplied.
// PatientID and DoctorID are stored as given without checking that the
// referenced rows exist; the store permits dangling references.
func CreateAppointment(db *gorm.DB, a Appointment) (uint, error) {
	date, err := util.NormalizeDate(a.AppointmentDate)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	clock, err := util.NormalizeTime(a.AppointmentTime)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	a.ID = 0
	a.AppointmentDate = date
	a.AppointmentTime = clock
	a.Status = StatusScheduled
	if err := db.Create(&a).Error; err != nil {
		return 0, err
	}
	return a.ID, nil
}

// UpdateAppointment overwrites the mutable fields of the appointment
// row: date, time, status and location. The patient and doctor bindings
// are fixed at creation. Returns ErrNotFound when the id does not exist.
func UpdateAppointment(db *gorm.DB, id uint, a Appointment) error {
	date, err := util.NormalizeDate(a.AppointmentDate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	clock, err := util.NormalizeTime(a.AppointmentTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !util.Contains(a.Status, AppointmentStatuses) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, a.Status)
	}

	res := db.Model(&Appointment{}).Where("AppointmentID = ?", id).Updates(map[string]interface{}{
		"AppointmentDate": date,
		"AppointmentTime": clock,
		"Status":          a.Status,
		"Location":        a.Location,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: appointment %d", ErrNotFound, id)
	}
	return nil
}

// DeleteAppointment removes the appointment row by id. Medical records
// referencing the appointment keep their AppointmentID; deletes never
// cascade.
func DeleteAppointment(db *gorm.DB, id uint) error {
	res := db.Delete(&Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: appointment %d", ErrNotFound, id)
	}
	return nil
}

// GetAppointment fetches a single appointment by id.
func GetAppointment(db *gorm.DB, id uint) (Appointment, error) {
	var a Appointment
	if err := db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Appointment{}, fmt.Errorf("%w: appointment %d", ErrNotFound, id)
		}
		return Appointment{}, err
	}
	return a, nil
}

// ListAppointments returns all appointment rows ordered by id ascending,
// without joining patient or doctor data.
func ListAppointments(db *gorm.DB) ([]Appointment, error) {
	var appointments []Appointment
	if err := db.Order("AppointmentID").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}
