package model

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// matchKind selects the comparison applied to a search field.
type matchKind int

const (
	// matchExact compares with equality; used for ids and exact dates.
	matchExact matchKind = iota
	// matchPartial is a case-insensitive substring test; used for
	// names, free text and contact numbers.
	matchPartial
)

// fieldSpec maps a user-facing search field to the SQL column or
// expression it filters on. The tables below are fixed at compile time;
// user input only ever selects an entry, it is never spliced into the
// query text.
type fieldSpec struct {
	expr string
	kind matchKind
}

const (
	patientNameExpr = "Patients.FirstName || ' ' || Patients.LastName"
	doctorNameExpr  = "Doctors.FirstName || ' ' || Doctors.LastName"
)

var patientSearchFields = map[string]fieldSpec{
	"Patient ID":     {"Patients.PatientID", matchExact},
	"First Name":     {"Patients.FirstName", matchPartial},
	"Last Name":      {"Patients.LastName", matchPartial},
	"Patient Name":   {patientNameExpr, matchPartial},
	"Date of Birth":  {"Patients.DateOfBirth", matchExact},
	"Contact Number": {"Patients.ContactNumber", matchPartial},
}

var doctorSearchFields = map[string]fieldSpec{
	"Doctor ID":      {"Doctors.DoctorID", matchExact},
	"First Name":     {"Doctors.FirstName", matchPartial},
	"Last Name":      {"Doctors.LastName", matchPartial},
	"Doctor Name":    {doctorNameExpr, matchPartial},
	"Department":     {"Doctors.Department", matchPartial},
	"Contact Number": {"Doctors.ContactNumber", matchPartial},
}

var appointmentSearchFields = map[string]fieldSpec{
	"Appointment ID":   {"Appointments.AppointmentID", matchExact},
	"Patient ID":       {"Appointments.PatientID", matchExact},
	"Patient Name":     {patientNameExpr, matchPartial},
	"Doctor Name":      {doctorNameExpr, matchPartial},
	"Appointment Date": {"Appointments.AppointmentDate", matchExact},
	"Status":           {"Appointments.Status", matchPartial},
	"Location":         {"Appointments.Location", matchPartial},
}

var medicalRecordSearchFields = map[string]fieldSpec{
	"Record ID":      {"MedicalRecords.RecordID", matchExact},
	"Appointment ID": {"MedicalRecords.AppointmentID", matchExact},
	"Diagnosis":      {"MedicalRecords.Diagnosis", matchPartial},
	"Details":        {"MedicalRecords.Details", matchPartial},
	"Patient Name":   {patientNameExpr, matchPartial},
	"Doctor Name":    {doctorNameExpr, matchPartial},
}

var databaseSearchFields = map[string]fieldSpec{
	"Patient ID":       {"Patients.PatientID", matchExact},
	"Patient Name":     {patientNameExpr, matchPartial},
	"Doctor Name":      {doctorNameExpr, matchPartial},
	"Department":       {"Doctors.Department", matchPartial},
	"Diagnosis":        {"MedicalRecords.Diagnosis", matchPartial},
	"Status":           {"Appointments.Status", matchPartial},
	"Location":         {"Appointments.Location", matchPartial},
	"Appointment Date": {"Appointments.AppointmentDate", matchExact},
}

// SearchFields returns the selectable search field names per view, for
// the front-end to populate its field pickers.
func SearchFields() map[string][]string {
	views := map[string]map[string]fieldSpec{
		"patients":        patientSearchFields,
		"doctors":         doctorSearchFields,
		"appointments":    appointmentSearchFields,
		"medical_records": medicalRecordSearchFields,
		"database":        databaseSearchFields,
	}
	out := make(map[string][]string, len(views))
	for view, fields := range views {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		out[view] = names
	}
	return out
}

// applyFieldFilter narrows the base query by the selected field. An
// empty query string is the browse default and leaves the listing
// unfiltered. User input is always passed as a bound parameter; the
// builder appends LIKE wildcards itself.
func applyFieldFilter(q *gorm.DB, fields map[string]fieldSpec, field, query string) (*gorm.DB, error) {
	if query == "" {
		return q, nil
	}
	spec, ok := fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: unknown search field %q", ErrValidation, field)
	}
	if spec.kind == matchExact {
		return q.Where(spec.expr+" = ?", query), nil
	}
	return q.Where("LOWER("+spec.expr+") LIKE ?", "%"+strings.ToLower(query)+"%"), nil
}

// SearchPatients filters the patient listing by the selected field.
func SearchPatients(db *gorm.DB, field, query string) ([]Patient, error) {
	q := db.Model(&Patient{}).Order("Patients.PatientID")
	q, err := applyFieldFilter(q, patientSearchFields, field, query)
	if err != nil {
		return nil, err
	}
	var patients []Patient
	if err := q.Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// SearchDoctors filters the doctor listing by the selected field.
func SearchDoctors(db *gorm.DB, field, query string) ([]Doctor, error) {
	q := db.Model(&Doctor{}).Order("Doctors.DoctorID")
	q, err := applyFieldFilter(q, doctorSearchFields, field, query)
	if err != nil {
		return nil, err
	}
	var doctors []Doctor
	if err := q.Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

// AppointmentDetail is the human-readable appointment row with patient
// and doctor names resolved.
type AppointmentDetail struct {
	AppointmentID   uint   `json:"appointment_id" gorm:"column:AppointmentID"`
	PatientID       uint   `json:"patient_id" gorm:"column:PatientID"`
	PatientName     string `json:"patient_name" gorm:"column:PatientName"`
	DoctorID        uint   `json:"doctor_id" gorm:"column:DoctorID"`
	DoctorName      string `json:"doctor_name" gorm:"column:DoctorName"`
	Department      string `json:"department" gorm:"column:Department"`
	AppointmentDate string `json:"appointment_date" gorm:"column:AppointmentDate"`
	AppointmentTime string `json:"appointment_time" gorm:"column:AppointmentTime"`
	Status          string `json:"status" gorm:"column:Status"`
	Location        string `json:"location" gorm:"column:Location"`
}

func appointmentDetailQuery(db *gorm.DB) *gorm.DB {
	return db.Table("Appointments").
		Select(`Appointments.AppointmentID, Appointments.PatientID,
			` + patientNameExpr + ` AS PatientName,
			Appointments.DoctorID,
			` + doctorNameExpr + ` AS DoctorName,
			Doctors.Department,
			Appointments.AppointmentDate, Appointments.AppointmentTime,
			Appointments.Status, Appointments.Location`).
		Joins("JOIN Patients ON Patients.PatientID = Appointments.PatientID").
		Joins("JOIN Doctors ON Doctors.DoctorID = Appointments.DoctorID").
		Order("Appointments.AppointmentID")
}

// SearchAppointments filters the joined appointment view by the selected
// field. The joins are inner: an appointment whose patient or doctor no
// longer resolves is excluded from this view.
func SearchAppointments(db *gorm.DB, field, query string) ([]AppointmentDetail, error) {
	q, err := applyFieldFilter(appointmentDetailQuery(db), appointmentSearchFields, field, query)
	if err != nil {
		return nil, err
	}
	var details []AppointmentDetail
	if err := q.Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

// MedicalRecordDetail is the human-readable medical record row with the
// encounter's patient and doctor resolved through the appointment.
type MedicalRecordDetail struct {
	RecordID        uint   `json:"record_id" gorm:"column:RecordID"`
	AppointmentID   uint   `json:"appointment_id" gorm:"column:AppointmentID"`
	PatientName     string `json:"patient_name" gorm:"column:PatientName"`
	DoctorName      string `json:"doctor_name" gorm:"column:DoctorName"`
	AppointmentDate string `json:"appointment_date" gorm:"column:AppointmentDate"`
	Diagnosis       string `json:"diagnosis" gorm:"column:Diagnosis"`
	Details         string `json:"details" gorm:"column:Details"`
}

func medicalRecordDetailQuery(db *gorm.DB) *gorm.DB {
	return db.Table("MedicalRecords").
		Select(`MedicalRecords.RecordID, MedicalRecords.AppointmentID,
			` + patientNameExpr + ` AS PatientName,
			` + doctorNameExpr + ` AS DoctorName,
			Appointments.AppointmentDate,
			MedicalRecords.Diagnosis, MedicalRecords.Details`).
		Joins("JOIN Appointments ON Appointments.AppointmentID = MedicalRecords.AppointmentID").
		Joins("JOIN Patients ON Patients.PatientID = Appointments.PatientID").
		Joins("JOIN Doctors ON Doctors.DoctorID = Appointments.DoctorID").
		Order("MedicalRecords.RecordID")
}

// SearchMedicalRecords filters the joined medical record view by the
// selected field. Records whose appointment chain no longer resolves are
// excluded here; ListMedicalRecords still returns the raw rows.
func SearchMedicalRecords(db *gorm.DB, field, query string) ([]MedicalRecordDetail, error) {
	q, err := applyFieldFilter(medicalRecordDetailQuery(db), medicalRecordSearchFields, field, query)
	if err != nil {
		return nil, err
	}
	var details []MedicalRecordDetail
	if err := q.Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

// DatabaseRow is one row of the combined Patient/Appointment/Doctor/
// MedicalRecord view. Columns right of the patient are nullable because
// the joins are left-outer: a patient with no appointments still
// produces a row.
type DatabaseRow struct {
	PatientID       uint    `json:"patient_id" gorm:"column:PatientID"`
	PatientName     string  `json:"patient_name" gorm:"column:PatientName"`
	DateOfBirth     string  `json:"date_of_birth" gorm:"column:DateOfBirth"`
	ContactNumber   string  `json:"contact_number" gorm:"column:ContactNumber"`
	AppointmentID   *uint   `json:"appointment_id" gorm:"column:AppointmentID"`
	AppointmentDate *string `json:"appointment_date" gorm:"column:AppointmentDate"`
	AppointmentTime *string `json:"appointment_time" gorm:"column:AppointmentTime"`
	Status          *string `json:"status" gorm:"column:Status"`
	Location        *string `json:"location" gorm:"column:Location"`
	DoctorName      *string `json:"doctor_name" gorm:"column:DoctorName"`
	Department      *string `json:"department" gorm:"column:Department"`
	RecordID        *uint   `json:"record_id" gorm:"column:RecordID"`
	Diagnosis       *string `json:"diagnosis" gorm:"column:Diagnosis"`
	Details         *string `json:"details" gorm:"column:Details"`
}

func databaseQuery(db *gorm.DB) *gorm.DB {
	return db.Table("Patients").
		Select(`Patients.PatientID,
			` + patientNameExpr + ` AS PatientName,
			Patients.DateOfBirth, Patients.ContactNumber,
			Appointments.AppointmentID, Appointments.AppointmentDate,
			Appointments.AppointmentTime, Appointments.Status, Appointments.Location,
			` + doctorNameExpr + ` AS DoctorName,
			Doctors.Department,
			MedicalRecords.RecordID, MedicalRecords.Diagnosis, MedicalRecords.Details`).
		Joins("LEFT JOIN Appointments ON Appointments.PatientID = Patients.PatientID").
		Joins("LEFT JOIN Doctors ON Doctors.DoctorID = Appointments.DoctorID").
		Joins("LEFT JOIN MedicalRecords ON MedicalRecords.AppointmentID = Appointments.AppointmentID").
		Order("Patients.PatientID, Appointments.AppointmentID, MedicalRecords.RecordID")
}

// SearchDatabase filters the combined cross-entity view by the selected
// field. With an empty query it returns the full left-joined listing.
func SearchDatabase(db *gorm.DB, field, query string) ([]DatabaseRow, error) {
	q, err := applyFieldFilter(databaseQuery(db), databaseSearchFields, field, query)
	if err != nil {
		return nil, err
	}
	var rows []DatabaseRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
