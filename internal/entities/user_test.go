package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_User_FullName(t *testing.T) {
	user := User{FirstName: "Awa", LastName: "Ndiaye"}
	assert.Equal(t, "Awa Ndiaye", user.FullName())
	assert.Equal(t, "Awa", User{FirstName: "Awa"}.FullName())
}

func Test_User_Initials(t *testing.T) {
	assert.Equal(t, "AN", User{FirstName: "Awa", LastName: "Ndiaye"}.Initials())
	assert.Equal(t, "U", User{FirstName: "Awa"}.Initials())
	assert.Equal(t, "U", User{}.Initials())
}
