package servicedef

import (
	"encoding/json"
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// CreationResponse is the JSON body returned by the user creation endpoint. A successful
// response has only AuthToken; an error response has Code and Message.
type CreationResponse struct {
	AuthToken ldvalue.OptionalString `json:"authToken"`
	Code      ldvalue.OptionalInt    `json:"code"`
	Message   ldvalue.OptionalString `json:"message"`
}

// ParseCreationResponse decodes a creation response body.
func ParseCreationResponse(data []byte) (CreationResponse, error) {
	var r CreationResponse
	if err := json.Unmarshal(data, &r); err != nil {
		return CreationResponse{}, fmt.Errorf("malformed JSON response from user service: %w (body: %s)", err, string(data))
	}
	return r, nil
}
