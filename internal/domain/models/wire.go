package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"frontdesk/internal/utils"
)

// Amount accepts JSON numbers, numeric strings ("1,200", "₹500"), empty strings and null.
// Anything that does not parse becomes 0.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	v, ok := parseAmountJSON(b)
	if !ok {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

func (a Amount) Float() float64 { return float64(a) }

// OptionalAmount distinguishes an absent/blank value from an explicit 0.
type OptionalAmount struct {
	Value float64
	Valid bool
}

func (o *OptionalAmount) UnmarshalJSON(b []byte) error {
	v, ok := parseAmountJSON(b)
	o.Value, o.Valid = v, ok
	return nil
}

func (o OptionalAmount) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns nil when the value was absent.
func (o OptionalAmount) Ptr() *float64 {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// Or returns the value or def when absent.
func (o OptionalAmount) Or(def float64) float64 {
	if !o.Valid {
		return def
	}
	return o.Value
}

func parseAmountJSON(b []byte) (float64, bool) {
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		return 0, false
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		v, err := utils.ParseAmount(s)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Flag accepts true/false, "true"/"yes"/"1" and 0/1.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	raw := strings.ToLower(strings.Trim(strings.TrimSpace(string(b)), `"`))
	switch raw {
	case "true", "yes", "y", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}

// Date accepts YYYY-MM-DD, ISO timestamps or epoch milliseconds; blank and null leave it zero.
// Unparseable text is an error, so stay dates are never guessed.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := parseDateJSON(b)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// OptionalDate is a Date where anything unparseable counts as unset,
// e.g. an extra-bed start or advance date typed by hand.
type OptionalDate struct {
	Date
}

func (d *OptionalDate) UnmarshalJSON(b []byte) error {
	t, err := parseDateJSON(b)
	if err != nil {
		t = time.Time{}
	}
	d.Time = t
	return nil
}

func parseDateJSON(b []byte) (time.Time, error) {
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		return time.Time{}, nil
	}
	if !strings.HasPrefix(raw, `"`) {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %s", raw)
		}
		return time.UnixMilli(ms).UTC(), nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return time.Time{}, err
	}
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return utils.ParseDate(s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(utils.FormatDate(d.Time))
}

// Ptr returns nil for the zero date.
func (d Date) Ptr() *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// Text accepts a JSON string or number, e.g. an id the upstream stores either way.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*t = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(strings.TrimSpace(s))
		return nil
	}
	*t = Text(raw)
	return nil
}

func (t Text) String() string { return string(t) }
