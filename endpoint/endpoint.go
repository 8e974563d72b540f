package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hsmcare/appointment-api/middleware"
	"github.com/hsmcare/appointment-api/model"
	"github.com/hsmcare/appointment-api/util"
)

// getDBOrRespond fetches the request-scoped database connection, replying
// with a server error when the middleware did not provide one.
func getDBOrRespond(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return nil, false
	}
	return db, true
}

// fetchAppointmentOrRespond loads the appointment referenced by the :id
// path parameter, replying 404 when it does not exist.
func fetchAppointmentOrRespond(c *gin.Context, db *gorm.DB) (model.Appointment, bool) {
	id := c.Param("id")

	var appointment model.Appointment
	if err := db.First(&appointment, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{
				Msg: "Appointment not found",
				Err: err,
			})
			return model.Appointment{}, false
		}
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error occurred",
			Err: err,
		})
		return model.Appointment{}, false
	}
	return appointment, true
}
