package intelligence

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"fotoagenda/models"
)

// ErrUnparseable means the extractor output held no usable JSON object.
var ErrUnparseable = errors.New("extractor output is not valid JSON")

const resetToken = "RESET"

// ValidationError reports an extracted date or time in the wrong format.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// ParseExtraction reads the first well-formed JSON object in raw, ignoring
// any prose around it, and converts it into tagged field updates.
func ParseExtraction(raw string) (models.Extraction, error) {
	obj, err := firstJSONObject(raw)
	if err != nil {
		return models.Extraction{}, err
	}

	ext := models.Extraction{
		Intent:        fieldUpdate(obj["intent"]),
		Date:          fieldUpdate(obj["date"]),
		Time:          fieldUpdate(obj["time"]),
		EventDetails:  fieldUpdate(obj["event_details"]),
		CustomerName:  fieldUpdate(obj["customer_name"]),
		CustomerEmail: fieldUpdate(obj["customer_email"]),
		CustomerPhone: fieldUpdate(obj["customer_phone"]),
		EventDate:     fieldUpdate(obj["event_date"]),
	}
	if msg, ok := obj["message"].(string); ok {
		ext.Message = strings.TrimSpace(msg)
	}

	if ext.Date.Op == models.Set {
		if _, err := models.ParseDate(ext.Date.Value, time.UTC); err != nil {
			return ext, &ValidationError{Field: "date", Value: ext.Date.Value}
		}
	}
	if ext.Time.Op == models.Set {
		t, err := models.ParseClockTime(ext.Time.Value)
		if err != nil {
			return ext, &ValidationError{Field: "time", Value: ext.Time.Value}
		}
		ext.Time.Value = t.String()
	}
	return ext, nil
}

func firstJSONObject(raw string) (map[string]any, error) {
	for i := strings.IndexByte(raw, '{'); i >= 0; {
		var obj map[string]any
		dec := json.NewDecoder(strings.NewReader(raw[i:]))
		if err := dec.Decode(&obj); err == nil {
			return obj, nil
		}
		next := strings.IndexByte(raw[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return nil, ErrUnparseable
}

// fieldUpdate maps a raw JSON value: RESET clears, a non-empty string sets,
// anything else (null, absent, "", "null") leaves the field alone.
func fieldUpdate(v any) models.FieldUpdate {
	s, ok := v.(string)
	if !ok {
		return models.FieldUpdate{Op: models.Unchanged}
	}
	s = strings.TrimSpace(s)
	switch {
	case s == "" || strings.EqualFold(s, "null"):
		return models.FieldUpdate{Op: models.Unchanged}
	case strings.EqualFold(s, resetToken):
		return models.FieldUpdate{Op: models.Clear}
	default:
		return models.FieldUpdate{Op: models.Set, Value: s}
	}
}
