package endpoint

import (
	"github.com/clinicore/hpms/model"
	"github.com/clinicore/hpms/util"
	"github.com/gin-gonic/gin"
)

type patientRequest struct {
	FirstName     string `json:"first_name" example:"Jane"`
	LastName      string `json:"last_name" example:"Doe"`
	DateOfBirth   string `json:"date_of_birth" example:"1990-04-21"`
	ContactNumber string `json:"contact_number" example:"081234567890"`
}

func (r patientRequest) toModel() model.Patient {
	return model.Patient{
		FirstName:     util.NormalizeName(r.FirstName),
		LastName:      util.NormalizeName(r.LastName),
		DateOfBirth:   r.DateOfBirth,
		ContactNumber: r.ContactNumber,
	}
}

// ListPatients godoc
// @Summary      List or search patients
// @Description  Get all patients, optionally filtered by a search field and query
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        field query string false "Search field (Patient ID, First Name, Last Name, Patient Name, Date of Birth, Contact Number)"
// @Param        q query string false "Search query; empty returns the full listing"
// @Success      200 {object} util.APIResponse{data=[]model.Patient} "Patients retrieved"
// @Failure      400 {object} util.APIResponse "Unknown search field"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient [get]
func ListPatients(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	field, query := getSearchParams(c)
	patients, err := model.SearchPatients(db, field, query)
	if err != nil {
		respondError(c, "Failed to retrieve patients", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patients retrieved",
		Data: patients,
	})
}

// GetPatientInfo godoc
// @Summary      Get patient information
// @Description  Get a single patient by ID
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient retrieved"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient/{id} [get]
func GetPatientInfo(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	patient, err := model.GetPatient(db, id)
	if err != nil {
		respondError(c, "Patient not found", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient retrieved",
		Data: patient,
	})
}

// CreatePatient godoc
// @Summary      Register a new patient
// @Description  Add a patient; the date of birth is normalized to YYYY-MM-DD
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        request body patientRequest true "Patient information"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient created"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient [post]
func CreatePatient(c *gin.Context) {
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	id, err := model.CreatePatient(db, req.toModel())
	if err != nil {
		respondError(c, "Failed to create patient", err)
		return
	}

	patient, err := model.GetPatient(db, id)
	if err != nil {
		respondError(c, "Failed to load created patient", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient created",
		Data: patient,
	})
}

// UpdatePatient godoc
// @Summary      Update patient information
// @Description  Full overwrite of the patient's mutable fields
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        id path int true "Patient ID"
// @Param        request body patientRequest true "Updated patient information"
// @Success      200 {object} util.APIResponse "Patient updated"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient/{id} [patch]
func UpdatePatient(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	if err := model.UpdatePatient(db, id, req.toModel()); err != nil {
		respondError(c, "Failed to update patient", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient updated",
		Data: nil,
	})
}

// DeletePatient godoc
// @Summary      Delete a patient
// @Description  Remove a patient by ID; dependent rows are not cascaded
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse "Patient deleted"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient/{id} [delete]
func DeletePatient(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	if err := model.DeletePatient(db, id); err != nil {
		respondError(c, "Failed to delete patient", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient deleted",
		Data: nil,
	})
}
