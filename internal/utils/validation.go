package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/connectik/connectik_api/internal/models"
)

// decimalPattern accepts amounts that fit NUMERIC(10,2).
var decimalPattern = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)

var registerOnce sync.Once

// fieldMessages holds the user-facing messages, looked up from the most
// specific key ("Struct.field.tag") to the least specific ("field").
var fieldMessages = map[string]string{
	"firstName":                  "Le prénom est requis",
	"lastName":                   "Le nom est requis",
	"email":                      "Veuillez entrer une adresse email valide",
	"message":                    "Le message doit contenir au moins 10 caractères",
	"AdminLoginRequest.email":    "Email invalide",
	"AdminLoginRequest.password": "Le mot de passe est requis",
	"CreateCategoryInput.name":   "Le nom de la catégorie est requis",
	"UpdateCategoryInput.name":   "Le nom de la catégorie est requis",
	"name":                       "Le nom du produit est requis",
	"slug":                       "Le slug est requis",
	"price.required":             "Le prix est requis",
	"price":                      "Le prix doit être un montant décimal",
	"originalPrice":              "Le prix doit être un montant décimal",
	"stock":                      "Le stock ne peut pas être négatif",
	"images":                     "10 images maximum",
	"customerEmail":              "Adresse email invalide",
	"customerName":               "Le nom du client est requis",
	"shippingAddress":            "L'adresse de livraison est requise",
	"totalAmount.required":       "Le montant total est requis",
	"totalAmount":                "Le montant total doit être un montant décimal",
	"quantity":                   "La quantité doit être positive",
	"productId":                  "Le produit est requis",
	"status":                     "Statut de commande invalide",
	"username":                   "Le nom d'utilisateur est requis",
	"password":                   "Le mot de passe est requis",
}

var tagMessages = map[string]string{
	"required": "Ce champ est requis",
	"email":    "Adresse email invalide",
	"decimal":  "Montant décimal invalide",
	"min":      "Valeur trop courte",
	"notblank": "Ce champ est requis",
	"max":      "Valeur trop longue",
	"gt":       "Valeur trop petite",
	"oneof":    "Valeur non autorisée",
}

// RegisterValidators installs the custom rules and json field naming on
// gin's validator. It is safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterCustomTypeFunc(nullStringValue, models.NullString{})
		_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
			return IsDecimal(fl.Field().String())
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}

// nullStringValue lets rules such as omitempty,decimal see through a
// models.NullString. Unset and null both count as empty.
func nullStringValue(field reflect.Value) interface{} {
	n, ok := field.Interface().(models.NullString)
	if !ok || !n.Valid {
		return nil
	}
	return n.String
}

// IsDecimal reports whether s is a non-negative amount with at most two decimals.
func IsDecimal(s string) bool {
	return decimalPattern.MatchString(s)
}

// BindJSON decodes and validates the request body into obj. Any decoding or
// validation failure is returned as a *ValidationError.
func BindJSON(c *gin.Context, obj interface{}) error {
	RegisterValidators()
	if err := c.ShouldBindJSON(obj); err != nil {
		return ToValidationError(err)
	}
	return nil
}

// ToValidationError converts binding errors into a ValidationError.
func ToValidationError(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{
				Field:   fe.Field(),
				Message: messageFor(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return NewValidationError(field, fmt.Sprintf("Type attendu: %s", typeErr.Type.String()))
	}

	if errors.Is(err, io.EOF) {
		return NewValidationError("body", "Corps de requête manquant")
	}
	return NewValidationError("body", "JSON invalide")
}

func messageFor(fe validator.FieldError) string {
	structName := strings.SplitN(fe.Namespace(), ".", 2)[0]
	field := fe.Field()
	for _, key := range []string{
		structName + "." + field + "." + fe.Tag(),
		structName + "." + field,
		field + "." + fe.Tag(),
		field,
	} {
		if msg, ok := fieldMessages[key]; ok {
			return msg
		}
	}
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}
	return "Valeur invalide"
}
