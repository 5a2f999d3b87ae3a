package endpoint

import (
	"time"

	"github.com/clinicore/hpms/model"
	"github.com/clinicore/hpms/util"
	"github.com/gin-gonic/gin"
)

// GetSummary godoc
// @Summary      Dashboard summary counts
// @Description  Row counts per entity table plus the number of upcoming appointments (date today or later, any status)
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Success      200 {object} util.APIResponse{data=model.Summary} "Summary retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /dashboard/summary [get]
func GetSummary(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	summary, err := model.SummaryCounts(db, time.Now())
	if err != nil {
		respondError(c, "Failed to compute summary", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Summary retrieved",
		Data: summary,
	})
}

// ListPatientOverview godoc
// @Summary      Per-patient overview
// @Description  Every patient with computed age, total and upcoming appointment counts
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.PatientSummary} "Overview retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /dashboard/patients [get]
func ListPatientOverview(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	overview, err := model.PatientOverview(db, time.Now())
	if err != nil {
		respondError(c, "Failed to compute patient overview", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient overview retrieved",
		Data: overview,
	})
}

// SearchDatabase godoc
// @Summary      Cross-entity search
// @Description  Combined Patient/Appointment/Doctor/MedicalRecord view, left-joined from patients outward so patients without appointments or records still appear
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Param        field query string false "Search field (Patient ID, Patient Name, Doctor Name, Department, Diagnosis, Status, Location, Appointment Date)"
// @Param        q query string false "Search query; empty returns the full listing"
// @Success      200 {object} util.APIResponse{data=[]model.DatabaseRow} "Rows retrieved"
// @Failure      400 {object} util.APIResponse "Unknown search field"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /search [get]
func SearchDatabase(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	field, query := getSearchParams(c)
	rows, err := model.SearchDatabase(db, field, query)
	if err != nil {
		respondError(c, "Failed to search database", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Search results retrieved",
		Data: rows,
	})
}

// ListSearchFields godoc
// @Summary      Selectable search fields
// @Description  The fixed search-field names per view, for front-end field pickers
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Success      200 {object} util.APIResponse{data=object} "Fields retrieved"
// @Router       /search/fields [get]
func ListSearchFields(c *gin.Context) {
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Search fields retrieved",
		Data: model.SearchFields(),
	})
}
