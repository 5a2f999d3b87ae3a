package endpoint

import (
	"strings"

	"github.com/clinicore/hpms/model"
	"github.com/clinicore/hpms/util"
	"github.com/gin-gonic/gin"
)

type doctorRequest struct {
	FirstName     string `json:"first_name" example:"Ana"`
	LastName      string `json:"last_name" example:"Smith"`
	Department    string `json:"department" example:"Cardiology"`
	ContactNumber string `json:"contact_number" example:"081234567890"`
}

func (r doctorRequest) toModel() model.Doctor {
	return model.Doctor{
		FirstName:     util.NormalizeName(r.FirstName),
		LastName:      util.NormalizeName(r.LastName),
		Department:    strings.TrimSpace(r.Department),
		ContactNumber: r.ContactNumber,
	}
}

// ListDoctors godoc
// @Summary      List or search doctors
// @Description  Get all doctors, optionally filtered by a search field and query
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        field query string false "Search field (Doctor ID, First Name, Last Name, Doctor Name, Department, Contact Number)"
// @Param        q query string false "Search query; empty returns the full listing"
// @Success      200 {object} util.APIResponse{data=[]model.Doctor} "Doctors retrieved"
// @Failure      400 {object} util.APIResponse "Unknown search field"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /doctor [get]
func ListDoctors(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	field, query := getSearchParams(c)
	doctors, err := model.SearchDoctors(db, field, query)
	if err != nil {
		respondError(c, "Failed to retrieve doctors", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Doctors retrieved",
		Data: doctors,
	})
}

// GetDoctorInfo godoc
// @Summary      Get doctor information
// @Description  Get a single doctor by ID
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=model.Doctor} "Doctor retrieved"
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /doctor/{id} [get]
func GetDoctorInfo(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	doctor, err := model.GetDoctor(db, id)
	if err != nil {
		respondError(c, "Doctor not found", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Doctor retrieved",
		Data: doctor,
	})
}

// CreateDoctor godoc
// @Summary      Register a new doctor
// @Description  Add a doctor to the system
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        request body doctorRequest true "Doctor information"
// @Success      200 {object} util.APIResponse{data=model.Doctor} "Doctor created"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /doctor [post]
func CreateDoctor(c *gin.Context) {
	var req doctorRequest
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

	id, err := model.CreateDoctor(db, req.toModel())
	if err != nil {
		respondError(c, "Failed to create doctor", err)
		return
	}

	doctor, err := model.GetDoctor(db, id)
	if err != nil {
		respondError(c, "Failed to load created doctor", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Doctor created",
		Data: doctor,
	})
}

// UpdateDoctor godoc
// @Summary      Update doctor information
// @Description  Full overwrite of the doctor's mutable fields
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Param        request body doctorRequest true "Updated doctor information"
// @Success      200 {object} util.APIResponse "Doctor updated"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /doctor/{id} [patch]
func UpdateDoctor(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var req doctorRequest
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

	if err := model.UpdateDoctor(db, id, req.toModel()); err != nil {
		respondError(c, "Failed to update doctor", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Doctor updated",
		Data: nil,
	})
}

// DeleteDoctor godoc
// @Summary      Delete a doctor
// @Description  Remove a doctor by ID; dependent rows are not cascaded
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse "Doctor deleted"
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /doctor/{id} [delete]
func DeleteDoctor(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	if err := model.DeleteDoctor(db, id); err != nil {
		respondError(c, "Failed to delete doctor", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Doctor deleted",
		Data: nil,
	})
}
