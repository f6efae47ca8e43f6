package submission

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name string, size int64) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))
	if size > 0 {
		require.NoError(t, os.Truncate(path, size))
	}
	return path
}

func validForm(declared []entities.AttachmentType) *Form {
	form := NewForm(declared)
	form.FirstName = "Awa"
	form.LastName = "Ndiaye"
	form.Email = "awa@example.com"
	form.PhoneNumber = "+237690000000"
	form.Country = "Cameroun"
	return form
}

func Test_NewForm_RequiredFlagsFollowDeclaredTypes(t *testing.T) {

	form := NewForm([]entities.AttachmentType{
		entities.AttachmentCV,
		entities.AttachmentCertificate,
		entities.AttachmentDiploma,
	})

	assert.Len(t, form.Files, 3)
	assert.True(t, form.Files[0].Required)
	assert.False(t, form.Files[1].Required)
	assert.True(t, form.Files[2].Required)
}

func Test_Form_ValidateResolvesCountry(t *testing.T) {

	form := validForm(nil)

	assert.NoError(t, form.Validate())
	assert.Equal(t, "CM", form.CountryCode())
}

func Test_Form_ValidateListsEveryProblem(t *testing.T) {

	form := NewForm([]entities.AttachmentType{entities.AttachmentCV})
	form.Email = "not-an-email"
	form.Country = "Atlantis"

	err := form.Validate()

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "Email")
	assert.Contains(t, err.Error(), "Atlantis")
	assert.Contains(t, err.Error(), "CV: file is required")
}

func Test_Form_OversizedFileIsRejectedNamingTheLimit(t *testing.T) {

	form := validForm([]entities.AttachmentType{entities.AttachmentCV})
	require.NoError(t, form.SetFile(entities.AttachmentCV, writeTestFile(t, "cv.pdf", 12<<20)))

	err := form.Validate()

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "CV")
	assert.Contains(t, err.Error(), "10MB")
}

func Test_Form_DisallowedExtensionIsRejected(t *testing.T) {

	form := validForm([]entities.AttachmentType{entities.AttachmentCV})
	require.NoError(t, form.SetFile(entities.AttachmentCV, writeTestFile(t, "cv.png", 0)))

	err := form.Validate()
	assert.ErrorContains(t, err, ".png")
}

func Test_Form_OptionalSlotMayStayEmpty(t *testing.T) {

	form := validForm([]entities.AttachmentType{entities.AttachmentCertificate})
	assert.NoError(t, form.Validate())
}

func Test_Form_SetFileRejectsUndeclaredType(t *testing.T) {

	form := NewForm([]entities.AttachmentType{entities.AttachmentCV})
	err := form.SetFile(entities.AttachmentDiploma, "diploma.pdf")
	assert.ErrorContains(t, err, "DIPLOMA")
}
