package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/fivetwenty-io/mailersend-go/internal/constants"
)

// timeNow is the clock used for relative dates.
var timeNow = time.Now

// parseDate accepts "now", a signed duration relative to now such as "-48h",
// or any absolute date format understood by dateparse. Dates without a zone
// are read in UTC.
func parseDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", constants.ErrInvalidDate)
	}

	if strings.EqualFold(value, "now") {
		return now, nil
	}

	if offset, err := time.ParseDuration(value); err == nil {
		return now.Add(offset), nil
	}

	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", constants.ErrInvalidDate, value, err)
	}

	return parsed, nil
}

// dateRange parses --from and --to. An empty --to means now.
func dateRange(from, to string) (time.Time, time.Time, error) {
	now := timeNow().UTC()

	start, err := parseDate(from, now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--from: %w", err)
	}

	end := now
	if to != "" {
		end, err = parseDate(to, now)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("--to: %w", err)
		}
	}

	return start, end, nil
}
