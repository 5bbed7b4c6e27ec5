package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

var monthTokenRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ParseMonthToken parses a YYYY-MM token into the first day of that month (UTC).
func ParseMonthToken(s string) (time.Time, bool) {
	if !monthTokenRegex.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
