// Package deadline computes time remaining until the Section 21 abolition
// date for urgency banners and countdown blocks.
package deadline

import (
	"strings"
	"time"
)

// Target is the Renters' Rights Act tenancy-reform commencement date, after
// which Section 21 notices can no longer be served.
var Target = time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

// Breakdown is the remaining time split into display components.
//
// Components are non-negative while now is before the target; Passed marks
// the terminal state at or after it.
type Breakdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Passed  bool
}

// Remaining computes the breakdown against the package target.
func Remaining(now time.Time) Breakdown {
	return RemainingUntil(Target, now)
}

// RemainingUntil computes the breakdown of target minus now.
func RemainingUntil(target, now time.Time) Breakdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return Breakdown{Passed: true}
	}

	totalSeconds := int(diff / time.Second)
	return Breakdown{
		Days:    totalSeconds / 86400,
		Hours:   (totalSeconds % 86400) / 3600,
		Minutes: (totalSeconds % 3600) / 60,
		Seconds: totalSeconds % 60,
	}
}

// Size selects a countdown presentation.
type Size string

const (
	SizeLarge   Size = "large"
	SizeMedium  Size = "medium"
	SizeCompact Size = "compact"
	SizeBanner  Size = "banner"
)

// ParseSize normalizes a query value, defaulting to banner.
func ParseSize(value string) Size {
	switch Size(strings.ToLower(strings.TrimSpace(value))) {
	case SizeLarge:
		return SizeLarge
	case SizeMedium:
		return SizeMedium
	case SizeCompact:
		return SizeCompact
	case SizeBanner:
		return SizeBanner
	default:
		return SizeBanner
	}
}

// ShowsSeconds reports whether the size renders a seconds column.
func (s Size) ShowsSeconds() bool {
	return s == SizeLarge
}

// PollInterval returns the refresh cadence for the size. Only the
// seconds-granularity presentation ticks every second.
func (s Size) PollInterval() time.Duration {
	if s.ShowsSeconds() {
		return time.Second
	}
	return time.Minute
}
