package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/clinicore/hpms/util"
	"gorm.io/gorm"
)

// Patient represents a patient entity
// @Description Patient information
type Patient struct {
	ID            uint   `json:"patient_id" gorm:"column:PatientID;primaryKey"`
	FirstName     string `json:"first_name" gorm:"column:FirstName" example:"Jane"`
	LastName      string `json:"last_name" gorm:"column:LastName" example:"Doe"`
	DateOfBirth   string `json:"date_of_birth" gorm:"column:DateOfBirth" example:"1990-04-21"`
	ContactNumber string `json:"contact_number" gorm:"column:ContactNumber" example:"081234567890"`
}

// TableName keeps the table name compatible with stores written by the
// original application.
func (Patient) TableName() string { return "Patients" }

// CreatePatient persists a new patient and returns the assigned id.
// The date of birth is normalized to YYYY-MM-DD and must not be in the
// future.
func CreatePatient(db *gorm.DB, p Patient) (uint, error) {
	dob, err := util.NormalizeDate(p.DateOfBirth)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if dob > util.Today(time.Now()) {
		return 0, fmt.Errorf("%w: date of birth %s is in the future", ErrValidation, dob)
	}

	p.ID = 0
	p.DateOfBirth = dob
	if err := db.Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

// UpdatePatient overwrites all mutable fields of the patient row.
// Returns ErrNotFound when the id does not exist.
func UpdatePatient(db *gorm.DB, id uint, p Patient) error {
	dob, err := util.NormalizeDate(p.DateOfBirth)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if dob > util.Today(time.Now()) {
		return fmt.Errorf("%w: date of birth %s is in the future", ErrValidation, dob)
	}

	res := db.Model(&Patient{}).Where("PatientID = ?", id).Updates(map[string]interface{}{
		"FirstName":     p.FirstName,
		"LastName":      p.LastName,
		"DateOfBirth":   dob,
		"ContactNumber": p.ContactNumber,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: patient %d", ErrNotFound, id)
	}
	return nil
}

// DeletePatient removes the patient row by id. Dependent appointments
// are left untouched; deletes never cascade.
func DeletePatient(db *gorm.DB, id uint) error {
	res := db.Delete(&Patient{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: patient %d", ErrNotFound, id)
	}
	return nil
}

// GetPatient fetches a single patient by id.
func GetPatient(db *gorm.DB, id uint) (Patient, error) {
	var p Patient
	if err := db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Patient{}, fmt.Errorf("%w: patient %d", ErrNotFound, id)
		}
		return Patient{}, err
	}
	return p, nil
}

// ListPatients returns all patients ordered by id ascending.
func ListPatients(db *gorm.DB) ([]Patient, error) {
	var patients []Patient
	if err := db.Order("PatientID").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}
