package handlers

import (
	"errors"

	"github.com/SscSPs/atm_simulator/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// moneyTag is the binding tag for amount strings, e.g. `binding:"required,money"`.
const moneyTag = "money"

// registerValidators adds the custom tags used by request DTOs to gin's validator.
func registerValidators(currencySymbol string) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation(moneyTag, moneyValidator(currencySymbol))
}

// moneyValidator accepts exactly what utils.ParseAmount accepts, so HTTP and the
// console agree on valid input. Sign and precision are ledger rules.
func moneyValidator(currencySymbol string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := utils.ParseAmount(s, currencySymbol)
		return err == nil
	}
}
