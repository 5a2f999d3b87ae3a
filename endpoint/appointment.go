package endpoint

import (
	"github.com/clinicore/hpms/model"
	"github.com/clinicore/hpms/util"
	"github.com/gin-gonic/gin"
)

type createAppointmentRequest struct {
	PatientID       uint   `json:"patient_id" example:"1"`
	DoctorID        uint   `json:"doctor_id" example:"1"`
	AppointmentDate string `json:"appointment_date" example:"2024-05-20"`
	AppointmentTime string `json:"appointment_time" example:"14:30:00"`
	Location        string `json:"location" example:"Clinic 01"`
}

type updateAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date" example:"2024-05-21"`
	AppointmentTime string `json:"appointment_time" example:"09:00:00"`
	Status          string `json:"status" example:"Confirmed"`
	Location        string `json:"location" example:"Clinic 02"`
}

// ListAppointments godoc
// @Summary      List or search appointments
// @Description  Get the joined appointment view (patient and doctor names resolved), optionally filtered
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        field query string false "Search field (Appointment ID, Patient ID, Patient Name, Doctor Name, Appointment Date, Status, Location)"
// @Param        q query string false "Search query; empty returns the full listing"
// @Success      200 {object} util.APIResponse{data=[]model.AppointmentDetail} "Appointments retrieved"
// @Failure      400 {object} util.APIResponse "Unknown search field"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointment [get]
func ListAppointments(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	field, query := getSearchParams(c)
	appointments, err := model.SearchAppointments(db, field, query)
	if err != nil {
		respondError(c, "Failed to retrieve appointments", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointments retrieved",
		Data: appointments,
	})
}

// GetAppointmentInfo godoc
// @Summary      Get appointment information
// @Description  Get a single appointment row by ID
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Success      200 {object} util.APIResponse{data=model.Appointment} "Appointment retrieved"
// @Failure      404 {object} util.APIResponse "Appointment not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointment/{id} [get]
func GetAppointmentInfo(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	appointment, err := model.GetAppointment(db, id)
	if err != nil {
		respondError(c, "Appointment not found", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment retrieved",
		Data: appointment,
	})
}

// CreateAppointment godoc
// @Summary      Schedule a new appointment
// @Description  Add an appointment; the initial status is always Scheduled. The referenced patient and doctor ids are stored as given.
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        request body createAppointmentRequest true "Appointment information"
// @Success      200 {object} util.APIResponse{data=model.Appointment} "Appointment scheduled"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointment [post]
func CreateAppointment(c *gin.Context) {
	var req createAppointmentRequest
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

	id, err := model.CreateAppointment(db, model.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Location:        req.Location,
	})
	if err != nil {
		respondError(c, "Failed to schedule appointment", err)
		return
	}

	appointment, err := model.GetAppointment(db, id)
	if err != nil {
		respondError(c, "Failed to load scheduled appointment", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment scheduled",
		Data: appointment,
	})
}

// UpdateAppointment godoc
// @Summary      Update an appointment
// @Description  Full overwrite of date, time, status and location; the patient and doctor bindings are fixed at creation
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Param        request body updateAppointmentRequest true "Updated appointment information"
// @Success      200 {object} util.APIResponse "Appointment updated"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "Appointment not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointment/{id} [patch]
func UpdateAppointment(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var req updateAppointmentRequest
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

	err := model.UpdateAppointment(db, id, model.Appointment{
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          req.Status,
		Location:        req.Location,
	})
	if err != nil {
		respondError(c, "Failed to update appointment", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment updated",
		Data: nil,
	})
}

// DeleteAppointment godoc
// @Summary      Delete an appointment
// @Description  Remove an appointment by ID; medical records referencing it are not cascaded
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Success      200 {object} util.APIResponse "Appointment deleted"
// @Failure      404 {object} util.APIResponse "Appointment not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointment/{id} [delete]
func DeleteAppointment(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	if err := model.DeleteAppointment(db, id); err != nil {
		respondError(c, "Failed to delete appointment", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment deleted",
		Data: nil,
	})
}
