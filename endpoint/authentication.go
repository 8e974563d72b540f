package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hsmcare/appointment-api/model"
	"github.com/hsmcare/appointment-api/util"
)

var userTypes = []string{model.UserTypeDoctor, model.UserTypePatient}

type SignupRequest struct {
	Username string `json:"username" example:"drsmith"`
	Password string `json:"password" example:"Str0ng!Pass"`
	UserType string `json:"user_type" example:"doctor"`
}

type LoginRequest struct {
	Username string `json:"username" example:"drsmith"`
	Password string `json:"password" example:"Str0ng!Pass"`
	UserType string `json:"user_type" example:"doctor"`
}

// validateSignupRequest checks the signup payload against the account
// rules, returning a user-facing message for the first failed rule.
func validateSignupRequest(req SignupRequest) (string, bool) {
	if req.Username == "" || req.Password == "" || req.UserType == "" {
		return "Missing required fields", false
	}
	if !util.IsValidUsername(req.Username) {
		return "Username must start with a letter and contain only 3-20 alphanumeric characters", false
	}
	if !util.IsValidPassword(req.Password) {
		return "Password must be at least 8 characters and include uppercase, lowercase, digit, and symbol", false
	}
	if !util.Contains(req.UserType, userTypes) {
		return "User type must be either 'doctor' or 'patient'", false
	}
	return "", true
}

// ensureUsernameAvailable rejects duplicate usernames with an exact,
// case-sensitive match against the user table.
func ensureUsernameAvailable(c *gin.Context, db *gorm.DB, username string) bool {
	var existing model.User
	err := db.First(&existing, "username = ?", username).Error
	if err == gorm.ErrRecordNotFound {
		return true
	}
	if err == nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Username already exists",
			Err: fmt.Errorf("username already exists"),
		})
		return false
	}
	util.CallServerError(c, util.APIErrorParams{
		Msg: "Database error occurred",
		Err: err,
	})
	return false
}

// Signup godoc
// @Summary      Register a new account
// @Description  Create a doctor or patient account with a hashed password
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup details"
// @Success      201 {object} map[string]string "User registered"
// @Failure      400 {object} map[string]string "Validation failure or duplicate username"
// @Failure      500 {object} map[string]string "Server error"
// @Router       /signup [post]
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "No input data provided",
			Err: err,
		})
		return
	}

	if msg, ok := validateSignupRequest(req); !ok {
		util.CallUserError(c, util.APIErrorParams{
			Msg: msg,
			Err: fmt.Errorf("invalid signup payload"),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if !ensureUsernameAvailable(c, db, req.Username) {
		return
	}

	hashed, err := util.HashPassword(req.Password)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to hash password",
			Err: err,
		})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// Re-check inside the transaction so concurrent signups with the
		// same username cannot both pass the earlier check.
		var existing model.User
		if err := tx.First(&existing, "username = ?", req.Username).Error; err == nil {
			return fmt.Errorf("username already exists")
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		return tx.Create(&model.User{
			Username: req.Username,
			Password: hashed,
			UserType: req.UserType,
		}).Error
	})
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error occurred",
			Err: err,
		})
		return
	}

	util.CallSuccessCreated(c, util.APISuccessParams{Msg: "User registered successfully!"})
}

// Login godoc
// @Summary      User login
// @Description  Verify username, password, and user type against the user table
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} map[string]string "Login successful"
// @Failure      400 {object} map[string]string "Missing fields"
// @Failure      401 {object} map[string]string "Invalid credentials"
// @Failure      500 {object} map[string]string "Server error"
// @Router       /login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "No input data provided",
			Err: err,
		})
		return
	}

	if req.Username == "" || req.Password == "" || req.UserType == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Missing required fields",
			Err: fmt.Errorf("missing required fields"),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var user model.User
	err := db.First(&user, "username = ? AND user_type = ?", req.Username, req.UserType).Error
	if err == gorm.ErrRecordNotFound {
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "Invalid credentials",
			Err: fmt.Errorf("user not found"),
		})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database error occurred",
			Err: err,
		})
		return
	}

	if !util.CheckPassword(user.Password, req.Password) {
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "Invalid credentials",
			Err: fmt.Errorf("invalid password"),
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: fmt.Sprintf("%s logged in successfully!", util.CapitalizeFirst(user.UserType)),
	})
}
