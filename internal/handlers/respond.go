package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/DB1132/Odoo-hackathon/internal/middleware"
	"github.com/DB1132/Odoo-hackathon/internal/services"
	"github.com/DB1132/Odoo-hackathon/internal/utils"
)

const defaultPageLimit = 10

// UseJSONFieldNames makes validator report json names ("loginId") instead of
// Go field names in binding errors.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
}

func statusFor(kind services.Kind) int {
	switch kind {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindUnauthorized:
		return http.StatusUnauthorized
	case services.KindForbidden:
		return http.StatusForbidden
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		c.JSON(statusFor(svcErr.Kind), gin.H{"error": svcErr.Message})
		return
	}
	log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	return checkBind(c, c.ShouldBindJSON(dst))
}

// bindOptionalJSON is bindJSON for endpoints whose body may be empty,
// however the client framed it.
func bindOptionalJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if errors.Is(err, io.EOF) {
		return true
	}
	return checkBind(c, err)
}

func checkBind(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "fields": fields})
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
	return false
}

func currentActor(c *gin.Context) (services.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return actor, ok
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func pageParams(c *gin.Context, defaultLimit int) utils.PageParams {
	return utils.ParsePage(c.Query("page"), c.Query("limit"), defaultLimit)
}
