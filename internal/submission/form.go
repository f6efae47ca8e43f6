package submission

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lafaom-mao/portal/internal/countries"
	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// MaxFileSize caps every uploaded document.
const MaxFileSize = 10 << 20

var allowedExtensions = []string{".pdf", ".doc", ".docx"}

// forcedRequired lists the attachment types an applicant must always provide
// when the offer declares them, whether or not the server flagged them.
var forcedRequired = []entities.AttachmentType{
	entities.AttachmentCV,
	entities.AttachmentCoverLetter,
	entities.AttachmentDiploma,
}

// FileField is one document slot of the form, generated from the offer's
// declared attachment list.
type FileField struct {
	Type     entities.AttachmentType
	Required bool
	Path     string
}

// Form collects what an applicant types in before a submission run starts.
// The same form backs job applications and training enrollments.
type Form struct {
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	Email       string `validate:"required,email"`
	PhoneNumber string `validate:"required"`
	Country     string `validate:"required"`
	CivilityID  string

	Files []FileField

	country countries.Country
}

// NewForm builds the file slots from the offer's declared attachments. An
// offer declaring none produces a form with no file slots at all.
func NewForm(declared []entities.AttachmentType) *Form {
	files := make([]FileField, 0, len(declared))
	for _, attachmentType := range declared {
		files = append(files, FileField{
			Type:     attachmentType,
			Required: lo.Contains(forcedRequired, attachmentType),
		})
	}
	return &Form{Files: files}
}

// SetFile assigns a local path to the slot of the given type.
func (f *Form) SetFile(attachmentType entities.AttachmentType, path string) error {
	for i := range f.Files {
		if f.Files[i].Type == attachmentType {
			f.Files[i].Path = path
			return nil
		}
	}
	return fmt.Errorf("this offer does not accept a %s attachment", attachmentType)
}

// CountryCode returns the ISO code resolved during validation.
func (f *Form) CountryCode() string {
	return f.country.ISO
}

// ValidationError aggregates every problem found in one pass so the
// applicant can fix the whole form at once.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid form: " + strings.Join(e.Problems, "; ")
}

// Validate checks text fields, resolves the country and verifies every file
// locally. It performs no network I/O.
func (f *Form) Validate() error {

	var problems []string

	if err := validator.New().Struct(f); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fieldErr := range fieldErrs {
				problems = append(problems, describeFieldError(fieldErr))
			}
		} else {
			return err
		}
	}

	if f.Country != "" {
		country, err := countries.Resolve(f.Country)
		if err != nil {
			problems = append(problems, fmt.Sprintf("Country: %q is not a known country", f.Country))
		} else {
			f.country = country
		}
	}

	for _, field := range f.Files {
		if field.Path == "" {
			if field.Required {
				problems = append(problems, fmt.Sprintf("%s: file is required", field.Type))
			}
			continue
		}
		if problem := checkFile(field); problem != "" {
			problems = append(problems, problem)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func describeFieldError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s: must not be empty", err.Field())
	case "email":
		return fmt.Sprintf("%s: not a valid email address", err.Field())
	default:
		return fmt.Sprintf("%s: failed %s check", err.Field(), err.Tag())
	}
}

func checkFile(field FileField) string {

	ext := strings.ToLower(filepath.Ext(field.Path))
	if !lo.Contains(allowedExtensions, ext) {
		return fmt.Sprintf("%s: %s files are not accepted, use one of %s",
			field.Type, ext, strings.Join(allowedExtensions, ", "))
	}

	info, err := os.Stat(field.Path)
	if err != nil {
		return fmt.Sprintf("%s: cannot read %s", field.Type, field.Path)
	}
	if info.Size() > MaxFileSize {
		return fmt.Sprintf("%s: file exceeds the 10MB limit", field.Type)
	}
	return ""
}
