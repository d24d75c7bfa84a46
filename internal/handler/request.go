package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Ids are SERIAL / INTEGER columns, so anything beyond int32 cannot name a
// row and is rejected before it reaches the database.
const idBits = 32

// flexID accepts an id sent either as a JSON number or as a numeric string.
// null and "" decode to zero.
type flexID int64

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		data = []byte(s)
	}

	id, err := strconv.ParseInt(string(data), 10, idBits)
	if err != nil {
		return errors.Errorf("invalid id %s", data)
	}

	*f = flexID(id)
	return nil
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// pathID reads a positive integer route variable within the id column range.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, idBits)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// optional trims s and turns an empty result into nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// validationMessage picks the response text for a failed validation. Missing
// fields produce requiredMsg; anything else names the first offending field.
func validationMessage(err error, requiredMsg string) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return requiredMsg
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return requiredMsg
		}
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
