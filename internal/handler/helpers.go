package handler

import (
	"net/http"

	"flotagest/internal/apierror"
	"flotagest/internal/dto"

	"github.com/gin-gonic/gin"
)

// bindAndValidate binds the JSON body and runs the shared validator. Returns
// false and writes the error response if either step fails — the caller
// should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := dto.Validate(req); err != nil {
		if fields := dto.FieldErrors(err); fields != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		} else {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return false
	}
	return true
}
