package sampler

import (
	"fmt"
	"math"

	"github.com/creasty/defaults"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
)

// Severity grades the drop of an event window against its baseline.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Thresholds are percentages applied to the change of the event window against the baseline.
// Drops are compared strictly: a change of exactly -10 is not a drop greater than 10.
type Thresholds struct {
	DisruptionDropPercent    float64 `default:"10"`
	MediumDropPercent        float64 `default:"10"`
	HighDropPercent          float64 `default:"30"`
	CriticalDropPercent      float64 `default:"50"`
	RecoveryTolerancePercent float64 `default:"5"`
}

// DefaultThresholds returns the default thresholds.
func DefaultThresholds() Thresholds {
	var t Thresholds
	if err := defaults.Set(&t); err != nil {
		panic(fmt.Sprintf("set threshold defaults: %v", err))
	}
	return t
}

// Validate requires non-negative percentages ordered medium <= high <= critical.
func (t Thresholds) Validate() error {
	for name, v := range map[string]float64{
		"disruption drop":    t.DisruptionDropPercent,
		"medium drop":        t.MediumDropPercent,
		"high drop":          t.HighDropPercent,
		"critical drop":      t.CriticalDropPercent,
		"recovery tolerance": t.RecoveryTolerancePercent,
	} {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%s threshold %v is negative: %w", name, v, model.ErrInvalidInput)
		}
	}
	if t.MediumDropPercent > t.HighDropPercent || t.HighDropPercent > t.CriticalDropPercent {
		return fmt.Errorf("drop thresholds %v/%v/%v are not ordered medium <= high <= critical: %w",
			t.MediumDropPercent, t.HighDropPercent, t.CriticalDropPercent, model.ErrInvalidInput)
	}
	return nil
}

// Classify grades a percentage change. Only drops raise severity.
func (t Thresholds) Classify(change float64) (severity Severity, disruption bool) {
	switch {
	case change < -t.CriticalDropPercent:
		severity = SeverityCritical
	case change < -t.HighDropPercent:
		severity = SeverityHigh
	case change < -t.MediumDropPercent:
		severity = SeverityMedium
	default:
		severity = SeverityLow
	}
	return severity, change < -t.DisruptionDropPercent
}

// Recovered reports whether the post-event change is within the recovery tolerance.
func (t Thresholds) Recovered(change float64) bool {
	return math.Abs(change) < t.RecoveryTolerancePercent
}

// PercentChange returns (current - baseline) / baseline * 100. A zero baseline yields 0
// rather than an infinite change; it does not signal missing data.
func PercentChange(current, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (current - baseline) / baseline * 100
}
