package servicedef

import (
	"encoding/json"
	"testing"

	"github.com/prilavok/user-api-contract-tests/config"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var template = config.Default().User

func parseBody(t *testing.T, body UserBody) map[string]interface{} {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestBuildUserBodyWithString(t *testing.T) {
	body := BuildUserBody(template, FirstName("Ив"))
	assert.Equal(t, map[string]interface{}{
		"firstName": "Ив",
		"phone":     "+74441231234",
		"address":   "г. Москва, ул. Большая Роща, д. 92",
	}, parseBody(t, body))
}

func TestBuildUserBodyWithEmptyString(t *testing.T) {
	m := parseBody(t, BuildUserBody(template, FirstName("")))
	v, ok := m["firstName"]
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestBuildUserBodyWithNull(t *testing.T) {
	m := parseBody(t, BuildUserBody(template, NullFirstName()))
	v, ok := m["firstName"]
	assert.True(t, ok, "null firstName must still be sent")
	assert.Nil(t, v)
}

func TestBuildUserBodyWithOmittedField(t *testing.T) {
	body := BuildUserBody(template, OmittedFirstName())
	m := parseBody(t, body)
	assert.NotContains(t, m, "firstName")
	assert.Equal(t, template.Phone, m["phone"])
	assert.Equal(t, template.Address, m["address"])

	_, ok := body.FirstName()
	assert.False(t, ok)
}

func TestBuildUserBodyWithNumber(t *testing.T) {
	m := parseBody(t, BuildUserBody(template, FirstNameOfType(ldvalue.Int(12))))
	assert.Equal(t, float64(12), m["firstName"])
}

func TestOmittedIsDistinctFromAnyString(t *testing.T) {
	body := BuildUserBody(template, FirstName("missing"))
	v, ok := body.FirstName()
	assert.True(t, ok)
	assert.Equal(t, "missing", v.StringValue())
}

func TestSuccessiveBuildsDoNotInterfere(t *testing.T) {
	first := BuildUserBody(template, FirstName("Ива"))
	second := BuildUserBody(template, OmittedFirstName())
	third := BuildUserBody(template, NullFirstName())

	v, ok := first.FirstName()
	assert.True(t, ok)
	assert.Equal(t, "Ива", v.StringValue())
	_, ok = second.FirstName()
	assert.False(t, ok)

	assert.Equal(t, "Иван", template.FirstName)
	for _, b := range []UserBody{first, second, third} {
		assert.Equal(t, template.Phone, b.Phone())
		assert.Equal(t, template.Address, b.Address())
	}
	v, _ = DefaultUserBody(template).FirstName()
	assert.Equal(t, "Иван", v.StringValue())
}

func TestFirstNameInputString(t *testing.T) {
	assert.Equal(t, `"Ив"`, FirstName("Ив").String())
	assert.Equal(t, "null", NullFirstName().String())
	assert.Equal(t, "<omitted>", OmittedFirstName().String())
	assert.Equal(t, "12", FirstNameOfType(ldvalue.Int(12)).String())
}
