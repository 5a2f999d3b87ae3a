package endpoint

import (
	"net/http"
	"testing"
	"time"

	"github.com/clinicore/hpms/model"
	"github.com/stretchr/testify/assert"
)

func TestGetSummaryEndpoint(t *testing.T) {
	r, db := setupEndpointTest(t)
	r.GET("/dashboard/summary", GetSummary)

	pid, err := model.CreatePatient(db, model.Patient{FirstName: "Jane", LastName: "Doe", DateOfBirth: "1990-01-01"})
	assert.NoError(t, err)
	_, err = model.CreateAppointment(db, model.Appointment{
		PatientID: pid, DoctorID: 1,
		AppointmentDate: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		AppointmentTime: "10:00:00",
	})
	assert.NoError(t, err)

	w := performJSON(r, http.MethodGet, "/dashboard/summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["patients"])
	assert.Equal(t, float64(1), data["appointments"])
	assert.Equal(t, float64(1), data["upcoming_appointments"])
	assert.Equal(t, float64(0), data["medical_records"])
}

func TestSearchDatabaseEndpoint(t *testing.T) {
	r, db := setupEndpointTest(t)
	r.GET("/search", SearchDatabase)

	pid, err := model.CreatePatient(db, model.Patient{FirstName: "Alice", LastName: "Nguyen", DateOfBirth: "1985-02-10"})
	assert.NoError(t, err)
	did, err := model.CreateDoctor(db, model.Doctor{FirstName: "Ana", LastName: "Smith", Department: "Cardiology"})
	assert.NoError(t, err)
	aid, err := model.CreateAppointment(db, model.Appointment{
		PatientID: pid, DoctorID: did,
		AppointmentDate: "2024-01-10", AppointmentTime: "09:00:00",
	})
	assert.NoError(t, err)
	_, err = model.CreateMedicalRecord(db, model.MedicalRecord{
		AppointmentID: aid, Diagnosis: "Hypertension", Details: "Headaches",
	})
	assert.NoError(t, err)

	w := performJSON(r, http.MethodGet, "/search?field=Diagnosis&q=hyper", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	row := data[0].(map[string]interface{})
	assert.Equal(t, "Alice Nguyen", row["patient_name"])
	assert.Equal(t, "Ana Smith", row["doctor_name"])
	assert.Equal(t, "Hypertension", row["diagnosis"])
}

func TestSearchDatabaseEndpointUnknownField(t *testing.T) {
	r, _ := setupEndpointTest(t)
	r.GET("/search", SearchDatabase)

	w := performJSON(r, http.MethodGet, "/search?field=Blood+Type&q=AB", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSearchFieldsEndpoint(t *testing.T) {
	r, _ := setupEndpointTest(t)
	r.GET("/search/fields", ListSearchFields)

	w := performJSON(r, http.MethodGet, "/search/fields", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Contains(t, data, "patients")
	assert.Contains(t, data, "database")
}

func TestListPatientOverviewEndpoint(t *testing.T) {
	r, db := setupEndpointTest(t)
	r.GET("/dashboard/patients", ListPatientOverview)

	_, err := model.CreatePatient(db, model.Patient{FirstName: "Jane", LastName: "Doe", DateOfBirth: "1990-01-01"})
	assert.NoError(t, err)

	w := performJSON(r, http.MethodGet, "/dashboard/patients", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	row := data[0].(map[string]interface{})
	assert.Equal(t, "Jane Doe", row["patient_name"])
	assert.Equal(t, float64(0), row["appointments"])
}
