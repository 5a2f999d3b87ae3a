package model

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Doctor represents a doctor entity
// @Description Doctor information
type Doctor struct {
	ID            uint   `json:"doctor_id" gorm:"column:DoctorID;primaryKey"`
	FirstName     string `json:"first_name" gorm:"column:FirstName" example:"Ana"`
	LastName      string `json:"last_name" gorm:"column:LastName" example:"Smith"`
	Department    string `json:"department" gorm:"column:Department" example:"Cardiology"`
	ContactNumber string `json:"contact_number" gorm:"column:ContactNumber" example:"081234567890"`
}

// TableName keeps the table name compatible with stores written by the
// original application.
func (Doctor) TableName() string { return "Doctors" }

// CreateDoctor persists a new doctor and returns the assigned id.
func CreateDoctor(db *gorm.DB, d Doctor) (uint, error) {
	d.ID = 0
	if err := db.Create(&d).Error; err != nil {
		return 0, err
	}
	return d.ID, nil
}

// UpdateDoctor overwrites all mutable fields of the doctor row.
// Returns ErrNotFound when the id does not exist.
func UpdateDoctor(db *gorm.DB, id uint, d Doctor) error {
	res := db.Model(&Doctor{}).Where("DoctorID = ?", id).Updates(map[string]interface{}{
		"FirstName":     d.FirstName,
		"LastName":      d.LastName,
		"Department":    d.Department,
		"ContactNumber": d.ContactNumber,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: doctor %d", ErrNotFound, id)
	}
	return nil
}

// DeleteDoctor removes the doctor row by id. Appointments referencing
// the doctor keep their DoctorID; deletes never cascade.
func DeleteDoctor(db *gorm.DB, id uint) error {
	res := db.Delete(&Doctor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: doctor %d", ErrNotFound, id)
	}
	return nil
}

// GetDoctor fetches a single doctor by id.
func GetDoctor(db *gorm.DB, id uint) (Doctor, error) {
	var d Doctor
	if err := db.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Doctor{}, fmt.Errorf("%w: doctor %d", ErrNotFound, id)
		}
		return Doctor{}, err
	}
	return d, nil
}

// ListDoctors returns all doctors ordered by id ascending.
func ListDoctors(db *gorm.DB) ([]Doctor, error) {
	var doctors []Doctor
	if err := db.Order("DoctorID").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}
