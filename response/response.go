package response

import (
	"net/http"

	"festivos/errors"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every API reply
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

// Success writes a 200 reply
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

// ServerError writes a 500 reply
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Server error",
	})
}

// NotFound writes a 404 reply
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Not found",
	})
}

// BadRequest writes a 400 reply
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// AppError maps an application error to its HTTP status
func AppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeDomainRange, errors.ErrCodeInvalidFormat, errors.ErrCodeValidation:
		BadRequest(c, appErr.Message)
	case errors.ErrCodeDBNotFound:
		NotFound(c)
	case errors.ErrCodeInvalidRule:
		c.JSON(http.StatusInternalServerError, Response{
			Code: 0,
			Mess: "Holiday data is inconsistent: " + appErr.Message,
		})
	default:
		ServerError(c)
	}
}
