package servicedef

import (
	"errors"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ListingHeader is the column layout of the users table.
const ListingHeader = "firstName,phone,address,email,comment,authToken"

// ListingRow is one user as it appears in the users table. Fields are joined with commas and
// nothing is escaped, so an address that contains commas spreads over several columns.
type ListingRow struct {
	FirstName string
	Phone     string
	Address   string
	Email     string
	Comment   string
	AuthToken string
}

func (r ListingRow) String() string {
	return strings.Join([]string{r.FirstName, r.Phone, r.Address, r.Email, r.Comment, r.AuthToken}, ",")
}

// ExpectedRow is the row that creating body should have added to the table, given the auth
// token the service returned. Email and comment are never sent, so they are empty.
func ExpectedRow(body UserBody, authToken string) (ListingRow, error) {
	firstName, ok := body.FirstName()
	if !ok || firstName.Type() != ldvalue.StringType {
		return ListingRow{}, errors.New("a listing row can only be derived from a body with a string firstName")
	}
	return ListingRow{
		FirstName: firstName.StringValue(),
		Phone:     body.Phone(),
		Address:   body.Address(),
		AuthToken: authToken,
	}, nil
}

// Listing is the text returned by the users table endpoint.
type Listing struct {
	text string
}

func NewListing(text string) Listing {
	return Listing{text: text}
}

// Lines returns the non-empty lines of the table, including the header if there is one.
func (l Listing) Lines() []string {
	var ret []string
	for _, line := range strings.Split(l.text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			ret = append(ret, line)
		}
	}
	return ret
}

// HasHeader is true if the first line is the column header.
func (l Listing) HasHeader() bool {
	lines := l.Lines()
	return len(lines) > 0 && lines[0] == ListingHeader
}

// RowCount is the number of data lines.
func (l Listing) RowCount() int {
	n := len(l.Lines())
	if l.HasHeader() {
		n--
	}
	return n
}

// Count returns how many times the rendered row occurs in the table. Occurrences are counted
// within each line, so a match can never span a line break.
func (l Listing) Count(row ListingRow) int {
	s := row.String()
	n := 0
	for _, line := range l.Lines() {
		n += strings.Count(line, s)
	}
	return n
}

func (l Listing) String() string {
	return l.text
}
