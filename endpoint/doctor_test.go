package endpoint

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/clinicore/hpms/model"
	"github.com/stretchr/testify/assert"
)

func TestCreateDoctorEndpoint(t *testing.T) {
	r, db := setupEndpointTest(t)
	r.POST("/doctor", CreateDoctor)

	w := performJSON(r, http.MethodPost, "/doctor", map[string]interface{}{
		"first_name":     "  Ana ",
		"last_name":      "Smith",
		"department":     " Cardiology ",
		"contact_number": "081234567890",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	doctors, err := model.ListDoctors(db)
	assert.NoError(t, err)
	assert.Len(t, doctors, 1)
	assert.Equal(t, "Ana", doctors[0].FirstName)
	assert.Equal(t, "Smith", doctors[0].LastName)
	assert.Equal(t, "Cardiology", doctors[0].Department)
}

func TestListDoctorsEndpointSearchByDepartment(t *testing.T) {
	r, db := setupEndpointTest(t)
	r.GET("/doctor", ListDoctors)

	for _, d := range []model.Doctor{
		{FirstName: "Ana", LastName: "Smith", Department: "Cardiology"},
		{FirstName: "Bob", LastName: "Lee", Department: "Neurology"},
	} {
		_, err := model.CreateDoctor(db, d)
		assert.NoError(t, err)
	}

	w := performJSON(r, http.MethodGet, "/doctor?field=Department&q=cardio", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	row := data[0].(map[string]interface{})
	assert.Equal(t, "Ana", row["first_name"])
}

func TestUpdateDoctorEndpoint(t *testing.T) {
	r, db := setupEndpointTest(t)
	r.PATCH("/doctor/:id", UpdateDoctor)

	id, err := model.CreateDoctor(db, model.Doctor{FirstName: "Ana", LastName: "Smith", Department: "Cardiology"})
	assert.NoError(t, err)

	w := performJSON(r, http.MethodPatch, fmt.Sprintf("/doctor/%d", id), map[string]interface{}{
		"first_name": "Ana",
		"last_name":  "Smith",
		"department": "Oncology",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	doctor, err := model.GetDoctor(db, id)
	assert.NoError(t, err)
	assert.Equal(t, "Oncology", doctor.Department)
}

func TestDeleteDoctorEndpointNotFound(t *testing.T) {
	r, _ := setupEndpointTest(t)
	r.DELETE("/doctor/:id", DeleteDoctor)

	w := performJSON(r, http.MethodDelete, "/doctor/424242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
