package api

import (
	"errors"
	"reflect"

	"activos/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// decimal.Decimal se valida como número (gt, gte, lte)
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	if err := validate.RegisterValidation("tipo_movimiento", func(fl validator.FieldLevel) bool {
		return models.EsTipoMovimiento(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// bindAndValidate decodifica el JSON y aplica las etiquetas validate.
// Si devuelve false la respuesta 400 ya fue escrita.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		BadRequest(c, msgDatosInvalidos, err.Error())
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			BadRequest(c, msgDatosInvalidos, err.Error())
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		BadRequest(c, msgDatosInvalidos, fields)
		return false
	}
	return true
}
