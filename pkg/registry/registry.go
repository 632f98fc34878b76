// Package registry is the static lookup table for metric kinds: display name,
// unit, default threshold band, and the reading field each kind maps to. No
// other package is allowed to string-match metric kinds against backend field
// names; the irregular mapping (ammonia reads from ammoniaLevel) lives here
// and only here.
package registry

import (
	"barnsight.xyz/pigsty-monitor-service/pkg/models"
)

type entry struct {
	displayName string
	unit        string
	fieldKey    string
	defaultBand models.ThresholdBand
	value       func(r *models.Reading) *float64
}

var table = map[models.MetricKind]entry{
	models.MetricTemperature: {
		displayName: "Temperature",
		unit:        "°C",
		fieldKey:    "temperature",
		defaultBand: models.ThresholdBand{
			WarnLow:    models.Float(20),
			WarnHigh:   models.Float(26),
			DangerLow:  models.Float(18),
			DangerHigh: models.Float(28),
		},
		value: func(r *models.Reading) *float64 { return r.Temperature },
	},
	models.MetricHumidity: {
		displayName: "Humidity",
		unit:        "%",
		fieldKey:    "humidity",
		defaultBand: models.ThresholdBand{
			WarnLow:    models.Float(60),
			WarnHigh:   models.Float(75),
			DangerLow:  models.Float(50),
			DangerHigh: models.Float(85),
		},
		value: func(r *models.Reading) *float64 { return r.Humidity },
	},
	models.MetricAmmonia: {
		displayName: "Ammonia",
		unit:        "ppm",
		fieldKey:    "ammoniaLevel",
		// no low side: ammonia can only be too high
		defaultBand: models.ThresholdBand{
			WarnHigh:   models.Float(15),
			DangerHigh: models.Float(25),
		},
		value: func(r *models.Reading) *float64 { return r.Ammonia },
	},
	models.MetricLight: {
		displayName: "Light",
		unit:        "lux",
		fieldKey:    "light",
		defaultBand: models.ThresholdBand{
			WarnLow:    models.Float(100),
			WarnHigh:   models.Float(150),
			DangerLow:  models.Float(50),
			DangerHigh: models.Float(200),
		},
		value: func(r *models.Reading) *float64 { return r.Light },
	},
}

// Kinds returns all known metric kinds in stable display order.
func Kinds() []models.MetricKind {
	return []models.MetricKind{
		models.MetricTemperature,
		models.MetricHumidity,
		models.MetricAmmonia,
		models.MetricLight,
	}
}

func Known(m models.MetricKind) bool {
	_, ok := table[m]
	return ok
}

// Unit returns the display unit, or "?" for an unknown kind.
func Unit(m models.MetricKind) string {
	if e, ok := table[m]; ok {
		return e.unit
	}
	return "?"
}

// DisplayName falls back to the raw identifier for an unknown kind.
func DisplayName(m models.MetricKind) string {
	if e, ok := table[m]; ok {
		return e.displayName
	}
	return string(m)
}

func DefaultBand(m models.MetricKind) models.ThresholdBand {
	if e, ok := table[m]; ok {
		return e.defaultBand
	}
	return models.ThresholdBand{}
}

// FieldKey returns the wire field name a kind's value is read from.
func FieldKey(m models.MetricKind) string {
	if e, ok := table[m]; ok {
		return e.fieldKey
	}
	return ""
}

// Value extracts a kind's value out of a reading, nil when the reading has no
// value for it or the kind is unknown.
func Value(m models.MetricKind, r *models.Reading) *float64 {
	if r == nil {
		return nil
	}
	if e, ok := table[m]; ok {
		return e.value(r)
	}
	return nil
}
