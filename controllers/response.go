package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes the body rejecting unknown fields, then runs the binding tags.
func bindJSON(c *gin.Context, obj any) error {
	if c.Request == nil || c.Request.Body == nil {
		return errors.New("invalid request")
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}

// bindError answers a request whose body failed its schema.
func bindError(c *gin.Context, err error) {
	msg := "Invalid request body"
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msg = "Invalid field value"
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				msg = "All fields are required"
				break
			}
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": msg, "error": err.Error()})
}

// serverError hides the underlying error text in release mode.
func serverError(c *gin.Context, msg string, err error) {
	body := gin.H{"message": msg}
	if gin.Mode() != gin.ReleaseMode {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
