package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a calendar date. It is written as DateFormat in the location it
// carries, so a due date never shifts across midnight on the way out.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date. The zero date is null.
func (d Date) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(DateFormat))
}

// DateTime is an instant written in UTC with millisecond precision.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime. The zero instant is null.
func (d DateTime) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(DateTimeFormat))
}
