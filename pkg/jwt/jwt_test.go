package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	id := Identity{UserID: "u-1", Name: "Ana", Role: "admin"}
	token, err := Generate("secreto", id, "verduleria-api", 10)
	require.NoError(t, err)

	got, err := Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParse_Rechazos(t *testing.T) {
	token, err := Generate("secreto", Identity{UserID: "u-1"}, "verduleria-api", 10)
	require.NoError(t, err)

	_, err = Parse("otro", token)
	assert.Error(t, err, "firma incorrecta")

	expired, err := Generate("secreto", Identity{UserID: "u-1"}, "verduleria-api", -5)
	require.NoError(t, err)
	_, err = Parse("secreto", expired)
	assert.Error(t, err, "expirado")

	noUser, err := Generate("secreto", Identity{}, "verduleria-api", 10)
	require.NoError(t, err)
	_, err = Parse("secreto", noUser)
	assert.ErrorContains(t, err, "user_id")

	_, err = Generate("", Identity{UserID: "u-1"}, "", 10)
	assert.Error(t, err)
	_, err = Parse("secreto", "no-es-un-token")
	assert.Error(t, err)
}
