package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreatePatientNormalizesDOB(t *testing.T) {
	db := setupTestDB(t, "patient_create")

	id, err := CreatePatient(db, Patient{
		FirstName:     "Jane",
		LastName:      "Doe",
		DateOfBirth:   "1990-4-2",
		ContactNumber: "081234567890",
	})
	assert.NoError(t, err)
	assert.NotZero(t, id)

	found, err := GetPatient(db, id)
	assert.NoError(t, err)
	assert.Equal(t, "Jane", found.FirstName)
	assert.Equal(t, "Doe", found.LastName)
	assert.Equal(t, "1990-04-02", found.DateOfBirth)
	assert.Equal(t, "081234567890", found.ContactNumber)
}

func TestCreatePatientRejectsFutureDOB(t *testing.T) {
	db := setupTestDB(t, "patient_future_dob")

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	_, err := CreatePatient(db, Patient{FirstName: "Jane", LastName: "Doe", DateOfBirth: future})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreatePatientRejectsMalformedDOB(t *testing.T) {
	db := setupTestDB(t, "patient_bad_dob")

	_, err := CreatePatient(db, Patient{FirstName: "Jane", LastName: "Doe", DateOfBirth: "yesterday"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPatientIDsAreMonotonic(t *testing.T) {
	db := setupTestDB(t, "patient_ids")

	first, err := CreatePatient(db, Patient{FirstName: "A", LastName: "One", DateOfBirth: "1980-01-01"})
	assert.NoError(t, err)
	second, err := CreatePatient(db, Patient{FirstName: "B", LastName: "Two", DateOfBirth: "1981-01-01"})
	assert.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestUpdatePatientOverwritesAllFields(t *testing.T) {
	db := setupTestDB(t, "patient_update")

	id, err := CreatePatient(db, Patient{
		FirstName:     "Original",
		LastName:      "Name",
		DateOfBirth:   "1970-06-15",
		ContactNumber: "111",
	})
	assert.NoError(t, err)

	err = UpdatePatient(db, id, Patient{
		FirstName:     "Updated",
		LastName:      "Person",
		DateOfBirth:   "1971-07-16",
		ContactNumber: "222",
	})
	assert.NoError(t, err)

	found, err := GetPatient(db, id)
	assert.NoError(t, err)
	assert.Equal(t, "Updated", found.FirstName)
	assert.Equal(t, "Person", found.LastName)
	assert.Equal(t, "1971-07-16", found.DateOfBirth)
	assert.Equal(t, "222", found.ContactNumber)
}

func TestUpdatePatientNotFound(t *testing.T) {
	db := setupTestDB(t, "patient_update_missing")

	err := UpdatePatient(db, 9999, Patient{FirstName: "X", LastName: "Y", DateOfBirth: "1990-01-01"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePatientNotFoundLeavesCountsUnchanged(t *testing.T) {
	db := setupTestDB(t, "patient_delete_missing")

	_, err := CreatePatient(db, Patient{FirstName: "Keep", LastName: "Me", DateOfBirth: "1990-01-01"})
	assert.NoError(t, err)

	err = DeletePatient(db, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	patients, err := ListPatients(db)
	assert.NoError(t, err)
	assert.Len(t, patients, 1)
}

func TestDeletePatient(t *testing.T) {
	db := setupTestDB(t, "patient_delete")

	id, err := CreatePatient(db, Patient{FirstName: "Gone", LastName: "Soon", DateOfBirth: "1990-01-01"})
	assert.NoError(t, err)

	assert.NoError(t, DeletePatient(db, id))

	_, err = GetPatient(db, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPatientsOrderedByID(t *testing.T) {
	db := setupTestDB(t, "patient_list")

	for _, name := range []string{"C", "A", "B"} {
		_, err := CreatePatient(db, Patient{FirstName: name, LastName: "Test", DateOfBirth: "1990-01-01"})
		assert.NoError(t, err)
	}

	patients, err := ListPatients(db)
	assert.NoError(t, err)
	assert.Len(t, patients, 3)
	for i := 1; i < len(patients); i++ {
		assert.Greater(t, patients[i].ID, patients[i-1].ID)
	}
}
