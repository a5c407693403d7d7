package report

import (
	"fmt"
	"io"
	"os"

	"healthwatch/internal/domain"
)

// ConsoleSink prints the rendered report for every cycle.
type ConsoleSink struct {
	Out io.Writer
}

func (c *ConsoleSink) Publish(cycle domain.Cycle) error {
	_, err := io.WriteString(c.Out, Render(cycle.Results))
	return err
}

// FileSink overwrites Path with the serialized results after every cycle,
// so the file always holds the latest complete cycle.
type FileSink struct {
	Path string
}

func (f *FileSink) Publish(cycle domain.Cycle) error {
	data, err := Serialize(cycle.Results)
	if err != nil {
		return fmt.Errorf("serialize results: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}
