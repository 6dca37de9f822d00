package servicedef

import (
	"fmt"

	"github.com/prilavok/user-api-contract-tests/config"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type firstNameMode int

const (
	firstNameSet firstNameMode = iota
	firstNameOmitted
)

// FirstNameInput says what to do with the firstName field of a user creation body. The zero
// value sends an explicit null.
//
// Leaving the field out entirely (OmittedFirstName) is a separate mode rather than a special
// string, so that no string value can ever be mistaken for it.
type FirstNameInput struct {
	mode  firstNameMode
	value ldvalue.Value
}

// FirstName sends the given string, which may be empty.
func FirstName(s string) FirstNameInput {
	return FirstNameInput{value: ldvalue.String(s)}
}

// NullFirstName sends an explicit JSON null.
func NullFirstName() FirstNameInput {
	return FirstNameInput{value: ldvalue.Null()}
}

// OmittedFirstName removes the firstName key from the body.
func OmittedFirstName() FirstNameInput {
	return FirstNameInput{mode: firstNameOmitted}
}

// FirstNameOfType sends an arbitrary JSON value, such as a number, for checking how the service
// handles a value of the wrong type.
func FirstNameOfType(v ldvalue.Value) FirstNameInput {
	return FirstNameInput{value: v}
}

// IsOmitted is true if the field will not appear in the body.
func (f FirstNameInput) IsOmitted() bool {
	return f.mode == firstNameOmitted
}

func (f FirstNameInput) String() string {
	if f.mode == firstNameOmitted {
		return "<omitted>"
	}
	if f.value.Type() == ldvalue.StringType {
		return fmt.Sprintf("%q", f.value.StringValue())
	}
	return f.value.JSONString()
}

// UserBody is the JSON object sent to the user creation endpoint. It is immutable: building a
// new body never affects one that was built earlier.
type UserBody struct {
	value ldvalue.Value
}

// BuildUserBody starts from the template and applies the firstName input. Phone and address
// are always copied from the template unchanged.
func BuildUserBody(template config.UserTemplate, firstName FirstNameInput) UserBody {
	b := ldvalue.ObjectBuild().
		Set(FieldPhone, ldvalue.String(template.Phone)).
		Set(FieldAddress, ldvalue.String(template.Address))
	if !firstName.IsOmitted() {
		b = b.Set(FieldFirstName, firstName.value)
	}
	return UserBody{value: b.Build()}
}

// DefaultUserBody is the template as-is.
func DefaultUserBody(template config.UserTemplate) UserBody {
	return BuildUserBody(template, FirstName(template.FirstName))
}

// FirstName returns the firstName value and whether the key is present at all.
func (b UserBody) FirstName() (ldvalue.Value, bool) {
	return b.value.TryGetByKey(FieldFirstName)
}

func (b UserBody) Phone() string {
	return b.value.GetByKey(FieldPhone).StringValue()
}

func (b UserBody) Address() string {
	return b.value.GetByKey(FieldAddress).StringValue()
}

func (b UserBody) MarshalJSON() ([]byte, error) {
	return b.value.MarshalJSON()
}

func (b UserBody) String() string {
	return b.value.JSONString()
}
