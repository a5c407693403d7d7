package domain

import (
	"encoding/json"
	"time"
)

// Millisecond-precision ISO-8601; UTC renders as "Z".
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp marshals as ISO-8601 UTC with millisecond precision.
type Timestamp time.Time

// Now captures the current time, already truncated to the precision the
// wire format can hold, so values survive a serialize/deserialize round trip.
func Now() Timestamp {
	return Timestamp(time.Now().UTC().Truncate(time.Millisecond))
}

func (t Timestamp) Time() time.Time { return time.Time(t) }

func (t Timestamp) String() string {
	return time.Time(t).UTC().Format(timeLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}
