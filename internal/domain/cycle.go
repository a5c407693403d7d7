package domain

// Cycle groups the results of one full probing round over the configured
// URL list. Results keep the input URL order.
type Cycle struct {
	ID        string        `json:"id"`
	StartedAt Timestamp     `json:"started_at"`
	Results   []CheckResult `json:"results"`
}
