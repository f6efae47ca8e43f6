package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Resolve_ByISOCode(t *testing.T) {
	country, err := Resolve("cm")
	assert.NoError(t, err)
	assert.Equal(t, "Cameroun", country.Name)
	assert.Equal(t, "+237", country.DialCode)
}

func Test_Resolve_ByName(t *testing.T) {
	country, err := Resolve("côte d'ivoire")
	assert.NoError(t, err)
	assert.Equal(t, "CI", country.ISO)
}

func Test_Resolve_ByDialCode(t *testing.T) {
	country, err := Resolve("+221")
	assert.NoError(t, err)
	assert.Equal(t, "SN", country.ISO)
}

func Test_Resolve_UnknownInput(t *testing.T) {
	_, err := Resolve("Atlantis")
	assert.ErrorIs(t, err, ErrUnknownCountry)

	_, err = Resolve("  ")
	assert.ErrorIs(t, err, ErrUnknownCountry)
}
