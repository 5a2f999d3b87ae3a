package seed

import (
	"fmt"
	"testing"
	"time"

	"github.com/clinicore/hpms/model"
	"github.com/clinicore/hpms/util"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb_seed_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := model.EnsureSchema(db); err != nil {
		t.Fatalf("failed to provision schema: %v", err)
	}
	return db
}

func smallOptions() Options {
	return Options{
		Doctors:            5,
		Patients:           12,
		PastAppointments:   20,
		FutureAppointments: 6,
		Now:                time.Now(),
		Seed:               42,
	}
}

func TestRunGeneratesExpectedVolumes(t *testing.T) {
	db := setupSeedTestDB(t)

	assert.NoError(t, Run(db, smallOptions()))

	summary, err := model.SummaryCounts(db, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(5), summary.Doctors)
	assert.Equal(t, int64(12), summary.Patients)
	assert.Equal(t, int64(26), summary.Appointments)
}

func TestRunWipesPreviousData(t *testing.T) {
	db := setupSeedTestDB(t)

	_, err := model.CreatePatient(db, model.Patient{FirstName: "Stale", LastName: "Row", DateOfBirth: "1990-01-01"})
	assert.NoError(t, err)

	opt := smallOptions()
	opt.Patients = 3
	assert.NoError(t, Run(db, opt))

	patients, err := model.ListPatients(db)
	assert.NoError(t, err)
	assert.Len(t, patients, 3)
	for _, p := range patients {
		assert.NotEqual(t, "Stale", p.FirstName)
	}
}

func TestRunStatusesAndRecordsAreConsistent(t *testing.T) {
	db := setupSeedTestDB(t)

	assert.NoError(t, Run(db, smallOptions()))

	appointments, err := model.ListAppointments(db)
	assert.NoError(t, err)

	statusByID := map[uint]string{}
	for _, a := range appointments {
		assert.True(t, util.Contains(a.Status, model.AppointmentStatuses), "unexpected status %q", a.Status)
		statusByID[a.ID] = a.Status

		_, err := time.Parse("2006-01-02", a.AppointmentDate)
		assert.NoError(t, err, "date %q not normalized", a.AppointmentDate)
		_, err = time.Parse("15:04:05", a.AppointmentTime)
		assert.NoError(t, err, "time %q not normalized", a.AppointmentTime)
	}

	// Records exist only for completed encounters.
	records, err := model.ListMedicalRecords(db)
	assert.NoError(t, err)
	for _, rec := range records {
		assert.Equal(t, model.StatusCompleted, statusByID[rec.AppointmentID])
		assert.NotEmpty(t, rec.Diagnosis)
	}
}

func TestRunReferencesResolve(t *testing.T) {
	db := setupSeedTestDB(t)

	assert.NoError(t, Run(db, smallOptions()))

	// Every generated appointment must join to a live patient and doctor.
	details, err := model.SearchAppointments(db, "", "")
	assert.NoError(t, err)

	appointments, err := model.ListAppointments(db)
	assert.NoError(t, err)
	assert.Len(t, details, len(appointments))
}
