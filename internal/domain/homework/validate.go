// internal/domain/homework/validate.go
package homework

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValidateResponse checks that a decoded API body has the expected shape
// (an object with a "homeworks" list) and extracts the record sequence plus
// the echoed current_date cursor. Per-record field validation is deferred
// to the formatter.
func ValidateResponse(raw json.RawMessage) (*Response, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: ответ API не является объектом: %v", ErrTypeMismatch, err)
	}
	if envelope == nil {
		return nil, fmt.Errorf("%w: ответ API не является объектом", ErrTypeMismatch)
	}

	homeworksRaw, ok := envelope["homeworks"]
	if !ok {
		return nil, fmt.Errorf("%w: в ответе API нет ключа \"homeworks\"", ErrMissingField)
	}
	if bytes.Equal(bytes.TrimSpace(homeworksRaw), []byte("null")) {
		return nil, fmt.Errorf("%w: \"homeworks\" не является списком", ErrTypeMismatch)
	}

	var homeworks []Homework
	if err := json.Unmarshal(homeworksRaw, &homeworks); err != nil {
		return nil, fmt.Errorf("%w: \"homeworks\" не является списком записей: %v", ErrTypeMismatch, err)
	}

	resp := &Response{Homeworks: homeworks}
	if currentRaw, ok := envelope["current_date"]; ok {
		var current int64
		// A current_date of an unexpected type leaves the cursor unchanged.
		if err := json.Unmarshal(currentRaw, &current); err == nil {
			resp.CurrentDate = &current
		}
	}
	return resp, nil
}
