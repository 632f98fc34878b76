// Package threshold computes severity classifications for metric values
// against threshold bands. Facility overrides merge over global defaults
// bound by bound, not band by band.
package threshold

import (
	"fmt"

	"barnsight.xyz/pigsty-monitor-service/pkg/models"
	"barnsight.xyz/pigsty-monitor-service/pkg/registry"
)

// Merge overlays override onto def one bound at a time. An override bound
// applies only when explicitly set; a facility may override warn_high alone
// and still inherit the other three bounds.
func Merge(def, override models.ThresholdBand) models.ThresholdBand {
	out := def
	if override.WarnLow != nil {
		out.WarnLow = override.WarnLow
	}
	if override.WarnHigh != nil {
		out.WarnHigh = override.WarnHigh
	}
	if override.DangerLow != nil {
		out.DangerLow = override.DangerLow
	}
	if override.DangerHigh != nil {
		out.DangerHigh = override.DangerHigh
	}
	return out
}

// EffectiveBand merges a facility's partial override over the global default
// band for the kind.
func EffectiveBand(m models.MetricKind, override models.ThresholdBand) models.ThresholdBand {
	return Merge(registry.DefaultBand(m), override)
}

// Classify evaluates value against band. Danger bounds are checked first and
// short-circuit the warn check; a missing bound simply never triggers. Plain
// floating-point comparison, no rounding before classification.
func Classify(value float64, band models.ThresholdBand) models.Severity {
	if (band.DangerLow != nil && value < *band.DangerLow) ||
		(band.DangerHigh != nil && value > *band.DangerHigh) {
		return models.SeverityDanger
	}
	if (band.WarnLow != nil && value < *band.WarnLow) ||
		(band.WarnHigh != nil && value > *band.WarnHigh) {
		return models.SeverityWarning
	}
	return models.SeverityNormal
}

// ValidateBand rejects bands whose bounds cross. The ordering is
// danger_low <= warn_low < warn_high <= danger_high, checked only for the
// bounds actually present.
func ValidateBand(band models.ThresholdBand) error {
	if band.DangerLow != nil && band.WarnLow != nil && *band.DangerLow > *band.WarnLow {
		return fmt.Errorf("danger_low %.2f is above warn_low %.2f", *band.DangerLow, *band.WarnLow)
	}
	if band.WarnLow != nil && band.WarnHigh != nil && *band.WarnLow >= *band.WarnHigh {
		return fmt.Errorf("warn_low %.2f is not below warn_high %.2f", *band.WarnLow, *band.WarnHigh)
	}
	if band.WarnHigh != nil && band.DangerHigh != nil && *band.WarnHigh > *band.DangerHigh {
		return fmt.Errorf("warn_high %.2f is above danger_high %.2f", *band.WarnHigh, *band.DangerHigh)
	}
	if band.DangerLow != nil && band.DangerHigh != nil && *band.DangerLow >= *band.DangerHigh {
		return fmt.Errorf("danger_low %.2f is not below danger_high %.2f", *band.DangerLow, *band.DangerHigh)
	}
	return nil
}

// ClassifyValue classifies a possibly-absent value for a kind under a facility
// override. An absent value is a precondition violation: callers render "no
// data" instead of classifying, so a nil value here returns an error rather
// than a severity.
func ClassifyValue(m models.MetricKind, value *float64, override models.ThresholdBand) (models.Severity, error) {
	if value == nil {
		return "", fmt.Errorf("cannot classify absent %s value", registry.DisplayName(m))
	}
	return Classify(*value, EffectiveBand(m, override)), nil
}
