package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// validationDetail is one entry of a 422 response body
type validationDetail struct {
	Type  string      `json:"type"`
	Loc   []string    `json:"loc"`
	Msg   string      `json:"msg"`
	Input interface{} `json:"input"`
}

// unprocessable answers a request whose parameters failed validation
func unprocessable(c *gin.Context, details ...validationDetail) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": details})
	c.Abort()
}

// intParsingDetail describes a path or query value that is not an integer
func intParsingDetail(loc []string, input interface{}) validationDetail {
	return validationDetail{
		Type:  "int_parsing",
		Loc:   loc,
		Msg:   "Input should be a valid integer, unable to parse string as an integer",
		Input: input,
	}
}

// missingDetail describes a required field absent from the request
func missingDetail(loc []string, input interface{}) validationDetail {
	return validationDetail{
		Type:  "missing",
		Loc:   loc,
		Msg:   "Field required",
		Input: input,
	}
}
