package model

import (
	"time"

	"github.com/clinicore/hpms/util"
	"gorm.io/gorm"
)

// Summary holds the on-demand per-table counts for the dashboard. The
// volumes here are small and reads infrequent, so nothing is cached.
type Summary struct {
	Patients             int64 `json:"patients"`
	Doctors              int64 `json:"doctors"`
	Appointments         int64 `json:"appointments"`
	UpcomingAppointments int64 `json:"upcoming_appointments"`
	MedicalRecords       int64 `json:"medical_records"`
}

// SummaryCounts computes row counts per entity table. Upcoming counts
// every appointment dated today or later, regardless of status.
func SummaryCounts(db *gorm.DB, now time.Time) (Summary, error) {
	var s Summary
	if err := db.Model(&Patient{}).Count(&s.Patients).Error; err != nil {
		return Summary{}, err
	}
	if err := db.Model(&Doctor{}).Count(&s.Doctors).Error; err != nil {
		return Summary{}, err
	}
	if err := db.Model(&Appointment{}).Count(&s.Appointments).Error; err != nil {
		return Summary{}, err
	}
	if err := db.Model(&Appointment{}).
		Where("AppointmentDate >= ?", util.Today(now)).
		Count(&s.UpcomingAppointments).Error; err != nil {
		return Summary{}, err
	}
	if err := db.Model(&MedicalRecord{}).Count(&s.MedicalRecords).Error; err != nil {
		return Summary{}, err
	}
	return s, nil
}

// PatientSummary is one row of the per-patient overview: age and
// appointment counts computed at read time, never persisted.
type PatientSummary struct {
	PatientID            uint   `json:"patient_id" gorm:"column:PatientID"`
	PatientName          string `json:"patient_name" gorm:"column:PatientName"`
	DateOfBirth          string `json:"date_of_birth" gorm:"column:DateOfBirth"`
	Age                  int    `json:"age" gorm:"-"`
	ContactNumber        string `json:"contact_number" gorm:"column:ContactNumber"`
	Appointments         int64  `json:"appointments" gorm:"column:Appointments"`
	UpcomingAppointments int64  `json:"upcoming_appointments" gorm:"column:Upcoming"`
}

// PatientOverview returns every patient with their current age, total
// appointment count and upcoming appointment count (dated today or
// later, any status). Patients without appointments appear with zero
// counts.
func PatientOverview(db *gorm.DB, now time.Time) ([]PatientSummary, error) {
	var rows []PatientSummary
	err := db.Table("Patients").
		Select(`Patients.PatientID,
			`+patientNameExpr+` AS PatientName,
			Patients.DateOfBirth, Patients.ContactNumber,
			COUNT(Appointments.AppointmentID) AS Appointments,
			COALESCE(SUM(CASE WHEN Appointments.AppointmentDate >= ? THEN 1 ELSE 0 END), 0) AS Upcoming`,
			util.Today(now)).
		Joins("LEFT JOIN Appointments ON Appointments.PatientID = Patients.PatientID").
		Group("Patients.PatientID").
		Order("Patients.PatientID").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		age, err := util.Age(rows[i].DateOfBirth, now)
		if err != nil {
			// Rows predating normalization may carry a malformed date.
			age = 0
		}
		rows[i].Age = age
	}
	return rows, nil
}
