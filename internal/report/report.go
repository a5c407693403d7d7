package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"healthwatch/internal/domain"
)

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiUnderline = "\x1b[4m"
	ansiRed       = "\x1b[31m"
	ansiGreen     = "\x1b[32m"
	ansiCyan      = "\x1b[36m"
)

// Render formats results as the human-readable terminal report, one block
// per result. It is a pure function of its input; writing the text to a
// terminal or file is the caller's business.
func Render(results []domain.CheckResult) string {
	var b strings.Builder

	b.WriteString("\n" + ansiBold + ansiUnderline + "Health Check Results" + ansiReset + "\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")

	for _, r := range results {
		color := ansiGreen
		if !r.Up() {
			color = ansiRed
		}
		fmt.Fprintf(&b, "%s%s%s%s %s%s%s [%d ms] - %s\n",
			ansiBold, color, r.Status, ansiReset,
			ansiCyan, r.URL, ansiReset,
			r.ResponseTimeMS, r.Timestamp,
		)
		if r.Error != nil {
			fmt.Fprintf(&b, "  Error: %s%s%s\n", ansiRed, *r.Error, ansiReset)
		}
		if r.StatusCode != nil {
			fmt.Fprintf(&b, "  Status Code: %d\n", *r.StatusCode)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Serialize encodes results as an indented JSON array. Identical input
// sequences produce byte-identical output.
func Serialize(results []domain.CheckResult) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}

// Deserialize is the inverse of Serialize.
func Deserialize(data []byte) ([]domain.CheckResult, error) {
	var results []domain.CheckResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	return results, nil
}
