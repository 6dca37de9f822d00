// Package mockservice is an in-process imitation of the user service, for checking the test
// suite itself without a live service.
//
// By default it reproduces two known defects of the real service: first names containing
// spaces are accepted, and a non-string first name causes a 500 error. With Strict set, it
// behaves the way the service is specified to behave instead.
package mockservice

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/prilavok/user-api-contract-tests/config"
	"github.com/prilavok/user-api-contract-tests/servicedef"

	"github.com/google/uuid"
	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	minFirstNameLength = 2
	maxFirstNameLength = 15
)

// Options configures a Service.
type Options struct {
	CreateUserPath string
	UsersTablePath string
	Strict         bool
}

// OptionsFromConfig takes the endpoint paths from a test suite configuration.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		CreateUserPath: cfg.CreateUserPath,
		UsersTablePath: cfg.UsersTablePath,
	}
}

// Service holds the users created so far. It is safe for concurrent use.
type Service struct {
	opts  Options
	users []servicedef.ListingRow
	lock  sync.Mutex
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createdResponse struct {
	AuthToken string `json:"authToken"`
}

func New(opts Options) *Service {
	if opts.CreateUserPath == "" {
		opts.CreateUserPath = config.DefaultCreateUserPath
	}
	if opts.UsersTablePath == "" {
		opts.UsersTablePath = config.DefaultUsersTablePath
	}
	return &Service{opts: opts}
}

// Handler returns the HTTP handler for both endpoints.
func (s *Service) Handler() http.Handler {
	notFound := httphelpers.HandlerWithStatus(http.StatusNotFound)
	notAllowed := httphelpers.HandlerWithStatus(http.StatusMethodNotAllowed)
	return httphelpers.HandlerForPath(
		s.opts.CreateUserPath,
		httphelpers.HandlerForMethod(http.MethodPost, http.HandlerFunc(s.createUser), notAllowed),
		httphelpers.HandlerForPath(
			s.opts.UsersTablePath,
			httphelpers.HandlerForMethod(http.MethodGet, http.HandlerFunc(s.listUsers), notAllowed),
			notFound,
		),
	)
}

// Users returns a snapshot of the table.
func (s *Service) Users() []servicedef.ListingRow {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]servicedef.ListingRow(nil), s.users...)
}

// AddRow puts a row directly into the table, bypassing validation.
func (s *Service) AddRow(row servicedef.ListingRow) {
	s.lock.Lock()
	s.users = append(s.users, row)
	s.lock.Unlock()
}

// Reset empties the table.
func (s *Service) Reset() {
	s.lock.Lock()
	s.users = nil
	s.lock.Unlock()
}

func (s *Service) createUser(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: err.Error()})
		return
	}
	var body ldvalue.Value
	if err := json.Unmarshal(data, &body); err != nil || body.Type() != ldvalue.ObjectType {
		writeError(w, http.StatusBadRequest, servicedef.MessageMissingParameters)
		return
	}

	phone, phoneOK := requiredString(body, servicedef.FieldPhone)
	address, addressOK := requiredString(body, servicedef.FieldAddress)
	firstNameValue, _ := body.TryGetByKey(servicedef.FieldFirstName)

	switch firstNameValue.Type() {
	case ldvalue.NullType:
		writeError(w, http.StatusBadRequest, servicedef.MessageMissingParameters)
		return
	case ldvalue.StringType:
	default:
		if !s.opts.Strict {
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
		} else {
			writeError(w, http.StatusBadRequest, servicedef.MessageInvalidFirstNameFormat)
		}
		return
	}

	firstName := firstNameValue.StringValue()
	if firstName == "" || !phoneOK || !addressOK {
		writeError(w, http.StatusBadRequest, servicedef.MessageMissingParameters)
		return
	}
	if !s.validFirstName(firstName) {
		writeError(w, http.StatusBadRequest, servicedef.MessageInvalidFirstNameFormat)
		return
	}

	token := uuid.New().String()
	s.AddRow(servicedef.ListingRow{
		FirstName: firstName,
		Phone:     phone,
		Address:   address,
		AuthToken: token,
	})
	writeJSON(w, http.StatusCreated, createdResponse{AuthToken: token})
}

func (s *Service) listUsers(w http.ResponseWriter, r *http.Request) {
	lines := []string{servicedef.ListingHeader}
	for _, u := range s.Users() {
		lines = append(lines, u.String())
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(strings.Join(lines, "\n") + "\n"))
}

func (s *Service) validFirstName(name string) bool {
	n := utf8.RuneCountInString(name)
	if n < minFirstNameLength || n > maxFirstNameLength {
		return false
	}
	for _, ch := range name {
		switch {
		case ch == '-':
		case ch == ' ' && !s.opts.Strict:
		case (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z'):
		case unicode.Is(unicode.Cyrillic, ch) && unicode.IsLetter(ch):
		default:
			return false
		}
	}
	return true
}

func requiredString(body ldvalue.Value, key string) (string, bool) {
	v := body.GetByKey(key)
	if v.Type() != ldvalue.StringType || v.StringValue() == "" {
		return "", false
	}
	return v.StringValue(), true
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Code: status, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	data, _ := json.Marshal(body)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
