package usertests

import (
	"strings"

	"github.com/prilavok/user-api-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	spacesDefect = "service accepts spaces: got 201, expected 400"
	nonStringBug = "service returns 500 for a non-string firstName, expected 400"
)

type firstNameCase struct {
	name            string
	input           servicedef.FirstNameInput
	expectedFailure string
}

// Test names carry the checklist item numbers so that results can be matched against it.
func DoFirstNameTests(t *T) {
	t.RunGroup("valid", func(t *T) {
		runFirstNameCases(t, (*T).RequireUserCreated, []firstNameCase{
			{name: "1: 2 chars", input: servicedef.FirstName("Ив")},
			{name: "2: 3 chars", input: servicedef.FirstName("Ива")},
			{name: "3: 10 chars", input: servicedef.FirstName("ИванИванИв")},
			{name: "4: 14 chars", input: servicedef.FirstName("ИванИванИванИв")},
			{name: "5: 15 chars", input: servicedef.FirstName("ИванИванИванИва")},
			{name: "6: English chars", input: servicedef.FirstName("Ivan")},
			{name: "7: Hyphen", input: servicedef.FirstName("Жак-Ив")},
		})
	})

	t.RunGroup("invalid format", func(t *T) {
		runFirstNameCases(t, (*T).RequireInvalidFirstNameFormat, []firstNameCase{
			{name: "8: 1 char", input: servicedef.FirstName("И")},
			{name: "9: 16 chars", input: servicedef.FirstName("ИванИванИванИван")},
			{name: "10: 20 chars", input: servicedef.FirstName("ИванИванИванИванИван")},
			{name: "11: 300 chars", input: servicedef.FirstName(strings.Repeat("И", 300))},
			{name: "12: Leading space", input: servicedef.FirstName(" Иван"), expectedFailure: spacesDefect},
			{name: "13: Middle space", input: servicedef.FirstName("Ив ан"), expectedFailure: spacesDefect},
			{name: "14: Trailing space", input: servicedef.FirstName("Иван "), expectedFailure: spacesDefect},
			{name: "15: Special char", input: servicedef.FirstName("Иван@")},
			{name: "16: Digit", input: servicedef.FirstName("Иван1")},
		})
	})

	t.RunGroup("missing", func(t *T) {
		runFirstNameCases(t, (*T).RequireMissingFirstName, []firstNameCase{
			{name: "17: Value is null", input: servicedef.NullFirstName()},
			{name: "18: Empty value", input: servicedef.FirstName("")},
			{name: "19: Missing field", input: servicedef.OmittedFirstName()},
		})
	})

	t.RunGroup("wrong type", func(t *T) {
		runFirstNameCases(t, (*T).RequireWrongTypeRejected, []firstNameCase{
			{name: "20: Integer", input: servicedef.FirstNameOfType(ldvalue.Int(12)), expectedFailure: nonStringBug},
		})
	})
}

func runFirstNameCases(t *T, check func(*T, servicedef.FirstNameInput), cases []firstNameCase) {
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *T) {
			if c.expectedFailure != "" {
				t.ExpectFailure(c.expectedFailure)
			}
			t.Debug("firstName input: %s", c.input)
			check(t, c.input)
		})
	}
}
