package model

import "gorm.io/gorm"

// EnsureSchema creates the four entity tables if they are absent. It is
// safe to call on every process start: existing tables and their data
// are left untouched, nothing is dropped or migrated away.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&Patient{},
		&Doctor{},
		&Appointment{},
		&MedicalRecord{},
	)
}
