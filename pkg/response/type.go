package response

import (
	"encoding/json"
	"time"
)

// Resp is the envelope every management endpoint answers with. A zero
// ErrorCode means success; Errors carries field-level validation detail
// when a mapping or preference payload is rejected.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date renders as a plain calendar day (DateFormat) in API payloads.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateFormat))
}

// DateTime renders timestamps such as mapping audit fields to the
// second (DateTimeFormat), in server-local time.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
