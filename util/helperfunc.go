package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIErrorParams struct {
	Msg string
	Err error
}

type APISuccessParams struct {
	Msg  string
	Data map[string]interface{}
}

// Contains function is to check item whether is exist or not in a list and will return bool
func Contains(d string, dl []string) bool {
	for _, v := range dl {
		if v == d {
			return true
		}
	}
	return false
}

// CallErrorNotFound is for return API response not found
func CallErrorNotFound(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusNotFound, gin.H{"error": params.Msg})
}

// CallUserError is for return error from user side
func CallUserError(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusBadRequest, gin.H{"error": params.Msg})
}

// CallUserNotAuthorized is for return API response with status code 401
func CallUserNotAuthorized(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": params.Msg})
}

// CallServerError is for return API response server error. The underlying
// error detail is echoed to the caller, matching the existing API contract.
func CallServerError(c *gin.Context, params APIErrorParams) {
	body := gin.H{"error": params.Msg}
	if params.Err != nil {
		body["details"] = params.Err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// CallSuccessOK is for return API response with status code 200, you need to specify msg, and data as function parameter
func CallSuccessOK(c *gin.Context, params APISuccessParams) {
	c.JSON(http.StatusOK, successBody(params))
}

// CallSuccessCreated is for return API response with status code 201
func CallSuccessCreated(c *gin.Context, params APISuccessParams) {
	c.JSON(http.StatusCreated, successBody(params))
}

func successBody(params APISuccessParams) gin.H {
	body := gin.H{"message": params.Msg}
	for k, v := range params.Data {
		body[k] = v
	}
	return body
}

// CapitalizeFirst uppercases the first byte of s, used to echo the user
// type in the login success message ("doctor" -> "Doctor").
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
