package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mgeraldo/contact-book/internal/application/contacts"
	"github.com/mgeraldo/contact-book/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report field names as they appear on the wire.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateStruct runs validator tags and converts the first failure into a
// domain validation error.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return domain.ErrMissingField(fe.Field())
		}
		return domain.ErrInvalidField(fe.Field(), "failed "+fe.Tag()+" check")
	}
	return domain.ErrInvalidJSON(err)
}

type ContactCreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"required"`
}

func (r *ContactCreateRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	return validateStruct(r)
}

func (r ContactCreateRequest) Input() contacts.Input {
	return contacts.Input{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

// ContactPatchRequest is a merge-style partial update. Absent fields stay
// untouched. There is no owner field to patch.
type ContactPatchRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,min=1"`
}

func (r *ContactPatchRequest) Validate() error {
	return validateStruct(r)
}

func (r ContactPatchRequest) Patch() contacts.Patch {
	return contacts.Patch{Name: r.Name, Email: r.Email, Phone: r.Phone}
}
