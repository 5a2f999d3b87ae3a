// Package seed bulk-generates consistent cross-referencing sample rows
// for manual testing and demos. It writes through the same model
// functions the interactive layer uses, so normalization and status
// rules apply to generated data too.
package seed

import (
	"fmt"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/clinicore/hpms/model"
	"github.com/clinicore/hpms/util"
	"gorm.io/gorm"
)

// Options controls the volume of generated data.
type Options struct {
	Doctors            int
	Patients           int
	PastAppointments   int
	FutureAppointments int
	Now                time.Time
	// Seed for the random source; 0 picks a random seed.
	Seed uint64
}

// DefaultOptions mirrors the volumes of the original sample generator.
func DefaultOptions() Options {
	return Options{
		Doctors:            10,
		Patients:           200,
		PastAppointments:   300,
		FutureAppointments: 50,
		Now:                time.Now(),
	}
}

// departmentDetails maps department -> diagnosis -> typical symptoms.
var departmentDetails = map[string]map[string][]string{
	"Cardiology": {
		"Hypertension":            {"Headaches", "Shortness of breath", "Nosebleeds"},
		"Coronary Artery Disease": {"Chest pain", "Nausea", "Extreme fatigue"},
		"Heart Failure":           {"Swelling in legs", "Irregular heartbeat", "Coughing"},
	},
	"Neurology": {
		"Epilepsy":            {"Seizures", "Temporary confusion", "Uncontrollable jerking"},
		"Migraines":           {"Severe headache", "Nausea", "Sensitivity to light"},
		"Alzheimer's Disease": {"Memory loss", "Difficulty planning", "Confusion"},
	},
	"Orthopedics": {
		"Arthritis":    {"Joint pain", "Swelling", "Decreased range of motion"},
		"Osteoporosis": {"Back pain", "Stooped posture", "Easily fractured bones"},
		"Fracture":     {"Pain", "Swelling", "Bruising around the injured area"},
	},
	"Pediatrics": {
		"Asthma":     {"Wheezing", "Coughing", "Chest tightness"},
		"Chickenpox": {"Itchy rash", "Fever", "Loss of appetite"},
		"Measles":    {"Fever", "Dry cough", "Runny nose"},
	},
	"Oncology": {
		"Breast Cancer": {"Lump in breast", "Change in breast shape", "Pain in any area of the breast"},
		"Lung Cancer":   {"Coughing blood", "Chest pain", "Weight loss"},
		"Leukemia":      {"Fever or chills", "Persistent fatigue", "Frequent infections"},
	},
}

var clinics = []string{"Clinic 01", "Clinic 02", "Clinic 03", "Clinic 04", "Clinic 05"}

var pastStatuses = []string{model.StatusCompleted, model.StatusCancelled, model.StatusNoShow}
var futureStatuses = []string{model.StatusScheduled, model.StatusCancelled}

// Run wipes the four tables and repopulates them. Doctors are spread
// evenly over the departments; past appointments get a terminal status
// and, when Completed, a medical record with a department-consistent
// diagnosis.
func Run(db *gorm.DB, opt Options) error {
	faker := gofakeit.New(opt.Seed)
	now := opt.Now
	if now.IsZero() {
		now = time.Now()
	}

	if err := clearData(db); err != nil {
		return fmt.Errorf("clearing existing data: %w", err)
	}

	doctorIDs, doctorDepts, err := generateDoctors(db, faker, opt.Doctors)
	if err != nil {
		return fmt.Errorf("generating doctors: %w", err)
	}

	patientIDs, err := generatePatients(db, faker, opt.Patients, now)
	if err != nil {
		return fmt.Errorf("generating patients: %w", err)
	}

	if err := generateAppointments(db, faker, opt, now, doctorIDs, doctorDepts, patientIDs); err != nil {
		return fmt.Errorf("generating appointments: %w", err)
	}

	return nil
}

func clearData(db *gorm.DB) error {
	for _, m := range []interface{}{
		&model.MedicalRecord{},
		&model.Appointment{},
		&model.Doctor{},
		&model.Patient{},
	} {
		if err := db.Where("1 = 1").Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func departments() []string {
	depts := make([]string, 0, len(departmentDetails))
	for dept := range departmentDetails {
		depts = append(depts, dept)
	}
	sort.Strings(depts)
	return depts
}

func generateDoctors(db *gorm.DB, faker *gofakeit.Faker, n int) ([]uint, map[uint]string, error) {
	depts := departments()
	perDept := n / len(depts)
	if perDept == 0 {
		perDept = 1
	}

	ids := make([]uint, 0, n)
	deptByID := make(map[uint]string)
	for _, dept := range depts {
		for i := 0; i < perDept; i++ {
			id, err := model.CreateDoctor(db, model.Doctor{
				FirstName:     faker.FirstName(),
				LastName:      faker.LastName(),
				Department:    dept,
				ContactNumber: faker.Phone(),
			})
			if err != nil {
				return nil, nil, err
			}
			ids = append(ids, id)
			deptByID[id] = dept
		}
	}
	return ids, deptByID, nil
}

func generatePatients(db *gorm.DB, faker *gofakeit.Faker, n int, now time.Time) ([]uint, error) {
	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		dob := faker.DateRange(now.AddDate(-100, 0, 0), now)
		id, err := model.CreatePatient(db, model.Patient{
			FirstName:     faker.FirstName(),
			LastName:      faker.LastName(),
			DateOfBirth:   dob.Format(util.DateFormat),
			ContactNumber: faker.Phone(),
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func generateAppointments(db *gorm.DB, faker *gofakeit.Faker, opt Options, now time.Time, doctorIDs []uint, doctorDepts map[uint]string, patientIDs []uint) error {
	if len(doctorIDs) == 0 || len(patientIDs) == 0 {
		return nil
	}

	for i := 0; i < opt.PastAppointments; i++ {
		date := now.AddDate(0, 0, -faker.Number(1, 365))
		doctorID := doctorIDs[faker.Number(0, len(doctorIDs)-1)]
		status := pastStatuses[faker.Number(0, len(pastStatuses)-1)]

		id, err := createAppointment(db, faker, patientIDs, doctorID, date, status)
		if err != nil {
			return err
		}

		// A medical record exists only for completed encounters.
		if status == model.StatusCompleted {
			diagnosis, symptom := pickDiagnosis(faker, doctorDepts[doctorID])
			if _, err := model.CreateMedicalRecord(db, model.MedicalRecord{
				AppointmentID: id,
				Diagnosis:     diagnosis,
				Details:       symptom,
			}); err != nil {
				return err
			}
		}
	}

	for i := 0; i < opt.FutureAppointments; i++ {
		date := now.AddDate(0, 0, faker.Number(1, 365))
		doctorID := doctorIDs[faker.Number(0, len(doctorIDs)-1)]
		status := futureStatuses[faker.Number(0, len(futureStatuses)-1)]

		if _, err := createAppointment(db, faker, patientIDs, doctorID, date, status); err != nil {
			return err
		}
	}

	return nil
}

// createAppointment schedules through the normal write path, then moves
// the appointment to the target status with a regular update, the same
// way the interactive layer changes status.
func createAppointment(db *gorm.DB, faker *gofakeit.Faker, patientIDs []uint, doctorID uint, date time.Time, status string) (uint, error) {
	clock := fmt.Sprintf("%02d:%02d:00", faker.Number(8, 16), faker.Number(0, 59))
	a := model.Appointment{
		PatientID:       patientIDs[faker.Number(0, len(patientIDs)-1)],
		DoctorID:        doctorID,
		AppointmentDate: date.Format(util.DateFormat),
		AppointmentTime: clock,
		Location:        clinics[faker.Number(0, len(clinics)-1)],
	}

	id, err := model.CreateAppointment(db, a)
	if err != nil {
		return 0, err
	}

	if status != model.StatusScheduled {
		a.Status = status
		if err := model.UpdateAppointment(db, id, a); err != nil {
			return 0, err
		}
	}
	return id, nil
}

func pickDiagnosis(faker *gofakeit.Faker, dept string) (diagnosis, symptom string) {
	diagnoses := departmentDetails[dept]
	if diagnoses == nil {
		return "General checkup", "No notable findings"
	}

	names := make([]string, 0, len(diagnoses))
	for name := range diagnoses {
		names = append(names, name)
	}
	sort.Strings(names)

	diagnosis = names[faker.Number(0, len(names)-1)]
	symptoms := diagnoses[diagnosis]
	symptom = symptoms[faker.Number(0, len(symptoms)-1)]
	return diagnosis, symptom
}
