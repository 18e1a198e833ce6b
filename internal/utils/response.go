package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same tagged envelope: success responses carry
// a true flag plus entity-specific fields, failures carry only a message. A
// not-found lookup or a rejected create is an expected outcome, never a fault
// that unwinds past the handler.

// OK writes a success response, merging success:true into the payload.
func OK(c *gin.Context, code int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(code, body)
}

// Message writes a success response that carries only a message.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": true, "message": message})
}

// Fail writes a failure envelope with the given status code.
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// FailErr maps a repository/service error onto the failure envelope, choosing
// the HTTP status from the error kind.
func FailErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidReference):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrConflict), errors.Is(err, ErrHasDependents):
		Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		Fail(c, http.StatusUnauthorized, err.Error())
	default:
		Fail(c, http.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}
