package endpoint

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hsmcare/appointment-api/model"
	"github.com/hsmcare/appointment-api/util"
)

type createAppointmentRequest struct {
	DoctorName  string   `json:"doctor_name" example:"Dr. Smith"`
	PatientName string   `json:"patient_name" example:"John Doe"`
	Date        string   `json:"date" example:"2024-10-20"`
	Status      string   `json:"status,omitempty" example:"Scheduled"`
	Notes       []string `json:"notes,omitempty" example:"Follow-up"`
}

// ListAppointments godoc
// @Summary      List all appointments
// @Description  Get every appointment with its note log expanded
// @Tags         Appointment
// @Produce      json
// @Success      200 {array} model.AppointmentResponse "Appointments retrieved"
// @Failure      500 {object} map[string]string "Server error"
// @Router       /appointments [get]
func ListAppointments(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var appointments []model.Appointment
	err := db.Preload("Notes", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("notes.id ASC")
	}).Find(&appointments).Error
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error occurred",
			Err: err,
		})
		return
	}

	responses := make([]model.AppointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		responses = append(responses, appointment.ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}

// CreateAppointment godoc
// @Summary      Create an appointment
// @Description  Book a new appointment, optionally with initial notes
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        request body createAppointmentRequest true "Appointment information"
// @Success      201 {object} map[string]string "Appointment created"
// @Failure      400 {object} map[string]string "Missing required fields"
// @Failure      500 {object} map[string]string "Server error"
// @Router       /appointments [post]
func CreateAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "No input data provided",
			Err: err,
		})
		return
	}

	if req.DoctorName == "" || req.PatientName == "" || req.Date == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Missing required fields",
			Err: fmt.Errorf("missing required fields"),
		})
		return
	}

	if req.Status == "" {
		req.Status = model.StatusScheduled
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		appointment := model.Appointment{
			DoctorName:  req.DoctorName,
			PatientName: req.PatientName,
			Date:        req.Date,
			Status:      req.Status,
		}
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}

		for _, text := range req.Notes {
			note := model.Note{
				AppointmentID: appointment.ID,
				Author:        "unknown",
				Text:          util.SanitizeText(text),
			}
			if err := tx.Create(&note).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error occurred",
			Err: err,
		})
		return
	}

	util.CallSuccessCreated(c, util.APISuccessParams{Msg: "Appointment created!"})
}

type addNoteRequest struct {
	Note   string `json:"note" example:"Patient responded well"`
	Author string `json:"author,omitempty" example:"doctor"`
}

// AddNote godoc
// @Summary      Add a note to an appointment
// @Description  Append a note to an appointment's note log
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Param        request body addNoteRequest true "Note to append"
// @Success      200 {object} map[string]string "Note added"
// @Failure      400 {object} map[string]string "No note provided"
// @Failure      404 {object} map[string]string "Appointment not found"
// @Failure      500 {object} map[string]string "Server error"
// @Router       /appointments/{id}/add-note [post]
func AddNote(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	appointment, ok := fetchAppointmentOrRespond(c, db)
	if !ok {
		return
	}

	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Note == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "No note provided",
			Err: fmt.Errorf("no note provided"),
		})
		return
	}

	if req.Author == "" {
		req.Author = "unknown"
	}

	note := model.Note{
		AppointmentID: appointment.ID,
		Author:        req.Author,
		Text:          util.SanitizeText(req.Note),
	}
	if err := db.Create(&note).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error occurred",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Note added!"})
}

// CancelAppointment godoc
// @Summary      Cancel an appointment
// @Description  Transition an appointment from Scheduled to Cancelled
// @Tags         Appointment
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Success      200 {object} map[string]interface{} "Appointment cancelled"
// @Failure      400 {object} map[string]string "Already cancelled"
// @Failure      404 {object} map[string]string "Appointment not found"
// @Failure      500 {object} map[string]string "Server error"
// @Router       /appointments/{id}/cancel [put]
func CancelAppointment(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	appointment, ok := fetchAppointmentOrRespond(c, db)
	if !ok {
		return
	}

	if appointment.Status == model.StatusCancelled {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Appointment is already cancelled",
			Err: fmt.Errorf("appointment already cancelled"),
		})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&appointment).Update("status", model.StatusCancelled).Error
	})
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error occurred",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment cancelled successfully",
		Data: map[string]interface{}{"success": true},
	})
}
