package model

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// MedicalRecord represents a medical record entity. Records are keyed to
// the appointment (clinical encounter) they were produced by; several
// records per appointment are permitted.
// @Description Medical record information
type MedicalRecord struct {
	ID            uint   `json:"record_id" gorm:"column:RecordID;primaryKey"`
	AppointmentID uint   `json:"appointment_id" gorm:"column:AppointmentID" example:"1"`
	Diagnosis     string `json:"diagnosis" gorm:"column:Diagnosis" example:"Hypertension"`
	Details       string `json:"details" gorm:"column:Details" example:"Headaches, shortness of breath"`
}

// TableName keeps the table name compatible with stores written by the
// original application.
func (MedicalRecord) TableName() string { return "MedicalRecords" }

// CreateMedicalRecord persists a new medical record and returns the
// assigned id. AppointmentID is stored as given without checking that
// the appointment exists; the store permits dangling references.
func CreateMedicalRecord(db *gorm.DB, r MedicalRecord) (uint, error) {
	r.ID = 0
	if err := db.Create(&r).Error; err != nil {
		return 0, err
	}
	return r.ID, nil
}

// UpdateMedicalRecord overwrites the mutable fields of the record row:
// diagnosis and details. Returns ErrNotFound when the id does not exist.
func UpdateMedicalRecord(db *gorm.DB, id uint, r MedicalRecord) error {
	res := db.Model(&MedicalRecord{}).Where("RecordID = ?", id).Updates(map[string]interface{}{
		"Diagnosis": r.Diagnosis,
		"Details":   r.Details,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: medical record %d", ErrNotFound, id)
	}
	return nil
}

// DeleteMedicalRecord removes the record row by id.
func DeleteMedicalRecord(db *gorm.DB, id uint) error {
	res := db.Delete(&MedicalRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: medical record %d", ErrNotFound, id)
	}
	return nil
}

// GetMedicalRecord fetches a single medical record by id.
func GetMedicalRecord(db *gorm.DB, id uint) (MedicalRecord, error) {
	var r MedicalRecord
	if err := db.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MedicalRecord{}, fmt.Errorf("%w: medical record %d", ErrNotFound, id)
		}
		return MedicalRecord{}, err
	}
	return r, nil
}

// ListMedicalRecords returns all record rows ordered by id ascending,
// without joining appointment data.
func ListMedicalRecords(db *gorm.DB) ([]MedicalRecord, error) {
	var records []MedicalRecord
	if err := db.Order("RecordID").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
