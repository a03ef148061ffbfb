package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Password(t *testing.T) {
	var a Account
	require.NoError(t, a.SetPassword("s3cret"))

	assert.NotEqual(t, "s3cret", a.PasswordHash)
	assert.True(t, a.CheckPassword("s3cret"))
	assert.False(t, a.CheckPassword("wrong"))
}

func TestPerson_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", Person{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", Person{FirstName: "Ada"}.FullName())
	assert.Equal(t, "Lovelace", Person{LastName: "Lovelace"}.FullName())
}
