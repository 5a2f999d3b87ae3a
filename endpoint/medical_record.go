package endpoint

import (
	"strings"

	"github.com/clinicore/hpms/model"
	"github.com/clinicore/hpms/util"
	"github.com/gin-gonic/gin"
)

type medicalRecordRequest struct {
	AppointmentID uint   `json:"appointment_id" example:"1"`
	Diagnosis     string `json:"diagnosis" example:"Hypertension"`
	Details       string `json:"details" example:"Headaches, shortness of breath"`
}

// ListMedicalRecords godoc
// @Summary      List or search medical records
// @Description  Get the joined medical record view (patient and doctor resolved through the appointment), optionally filtered
// @Tags         MedicalRecord
// @Accept       json
// @Produce      json
// @Param        field query string false "Search field (Record ID, Appointment ID, Diagnosis, Details, Patient Name, Doctor Name)"
// @Param        q query string false "Search query; empty returns the full listing"
// @Success      200 {object} util.APIResponse{data=[]model.MedicalRecordDetail} "Medical records retrieved"
// @Failure      400 {object} util.APIResponse "Unknown search field"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /medical-record [get]
func ListMedicalRecords(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	field, query := getSearchParams(c)
	records, err := model.SearchMedicalRecords(db, field, query)
	if err != nil {
		respondError(c, "Failed to retrieve medical records", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Medical records retrieved",
		Data: records,
	})
}

// GetMedicalRecordInfo godoc
// @Summary      Get medical record information
// @Description  Get a single medical record row by ID
// @Tags         MedicalRecord
// @Accept       json
// @Produce      json
// @Param        id path int true "Record ID"
// @Success      200 {object} util.APIResponse{data=model.MedicalRecord} "Medical record retrieved"
// @Failure      404 {object} util.APIResponse "Medical record not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /medical-record/{id} [get]
func GetMedicalRecordInfo(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	record, err := model.GetMedicalRecord(db, id)
	if err != nil {
		respondError(c, "Medical record not found", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Medical record retrieved",
		Data: record,
	})
}

// CreateMedicalRecord godoc
// @Summary      Add a medical record
// @Description  Record a diagnosis against a clinical encounter; the appointment id is stored as given
// @Tags         MedicalRecord
// @Accept       json
// @Produce      json
// @Param        request body medicalRecordRequest true "Medical record information"
// @Success      200 {object} util.APIResponse{data=model.MedicalRecord} "Medical record created"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /medical-record [post]
func CreateMedicalRecord(c *gin.Context) {
	var req medicalRecordRequest
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

	id, err := model.CreateMedicalRecord(db, model.MedicalRecord{
		AppointmentID: req.AppointmentID,
		Diagnosis:     strings.TrimSpace(req.Diagnosis),
		Details:       strings.TrimSpace(req.Details),
	})
	if err != nil {
		respondError(c, "Failed to create medical record", err)
		return
	}

	record, err := model.GetMedicalRecord(db, id)
	if err != nil {
		respondError(c, "Failed to load created medical record", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Medical record created",
		Data: record,
	})
}

// UpdateMedicalRecord godoc
// @Summary      Update a medical record
// @Description  Full overwrite of diagnosis and details; the appointment binding is fixed at creation
// @Tags         MedicalRecord
// @Accept       json
// @Produce      json
// @Param        id path int true "Record ID"
// @Param        request body medicalRecordRequest true "Updated medical record information"
// @Success      200 {object} util.APIResponse "Medical record updated"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "Medical record not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /medical-record/{id} [patch]
func UpdateMedicalRecord(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var req medicalRecordRequest
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

	err := model.UpdateMedicalRecord(db, id, model.MedicalRecord{
		Diagnosis: strings.TrimSpace(req.Diagnosis),
		Details:   strings.TrimSpace(req.Details),
	})
	if err != nil {
		respondError(c, "Failed to update medical record", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Medical record updated",
		Data: nil,
	})
}

// DeleteMedicalRecord godoc
// @Summary      Delete a medical record
// @Description  Remove a medical record by ID
// @Tags         MedicalRecord
// @Accept       json
// @Produce      json
// @Param        id path int true "Record ID"
// @Success      200 {object} util.APIResponse "Medical record deleted"
// @Failure      404 {object} util.APIResponse "Medical record not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /medical-record/{id} [delete]
func DeleteMedicalRecord(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	if err := model.DeleteMedicalRecord(db, id); err != nil {
		respondError(c, "Failed to delete medical record", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Medical record deleted",
		Data: nil,
	})
}
