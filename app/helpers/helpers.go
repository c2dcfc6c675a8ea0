package helpers

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
	ContextKeyCartID contextKey = "cartID"
)

var slugPattern = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug lowercases s and collapses every non-alphanumeric run into a
// single hyphen. Uniqueness (the "-N" counter suffix) is the caller's job.
func GenerateSlug(s string) string {
	s = strings.ToLower(s)
	s = slugPattern.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("El campo %s es obligatorio.", field)
		case "email":
			errorMessages[field] = fmt.Sprintf("El campo %s debe ser un correo válido.", field)
		case "min":
			errorMessages[field] = fmt.Sprintf("El campo %s debe tener al menos %s caracteres.", field, err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("El campo %s debe tener como máximo %s caracteres.", field, err.Param())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("El campo %s debe ser uno de: %s.", field, err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("El campo %s no es válido.", field)
		}
	}
	return errorMessages
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		return false
	}
	return true
}
