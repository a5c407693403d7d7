package domain

// Status classifies the outcome of a probe.
type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// CheckResult is the outcome of a single probe of one URL.
//
// StatusCode and Error are pointers so the wire format carries explicit
// nulls: a transport failure has no code, a healthy response has no error.
type CheckResult struct {
	URL            string    `json:"url"`
	Status         Status    `json:"status"`
	StatusCode     *int      `json:"status_code"`
	ResponseTimeMS int64     `json:"response_time_ms"`
	Timestamp      Timestamp `json:"timestamp"`
	Error          *string   `json:"error"`
}

func (r CheckResult) Up() bool { return r.Status == StatusUp }
