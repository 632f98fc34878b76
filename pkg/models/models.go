package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type MetricKind string

const (
	MetricTemperature MetricKind = "temperature"
	MetricHumidity    MetricKind = "humidity"
	MetricAmmonia     MetricKind = "ammonia"
	MetricLight       MetricKind = "light"
)

// UnmarshalJSON lowercases incoming kinds: the upstream API has sent both
// "TEMPERATURE" and "Temperature" depending on endpoint revision.
func (m *MetricKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = MetricKind(strings.ToLower(strings.TrimSpace(s)))
	return nil
}

type Severity string

const (
	SeverityNormal  Severity = "Normal"
	SeverityWarning Severity = "Warning"
	SeverityDanger  Severity = "Danger"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
)

// Ref is a facility reference as it arrives on the wire: some endpoints send
// pigsty ids as JSON numbers, others as strings. It decodes both and keeps the
// raw token; canonical comparison happens through assoc.RefKey.
type Ref string

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Ref(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("facility reference is neither string nor number: %w", err)
	}
	*r = Ref(n.String())
	return nil
}

// ThresholdBand holds up to four optional bounds. Nil means the bound is not
// set; Ammonia structurally has no low side. Bands are value objects, merges
// produce a new band.
type ThresholdBand struct {
	WarnLow    *float64 `json:"warn_low,omitempty"`
	WarnHigh   *float64 `json:"warn_high,omitempty"`
	DangerLow  *float64 `json:"danger_low,omitempty"`
	DangerHigh *float64 `json:"danger_high,omitempty"`
}

type Pigsty struct {
	ID           int64                        `gorm:"primaryKey" json:"id"`
	Name         string                       `json:"name"`
	Location     string                       `json:"location,omitempty"`
	Capacity     int                          `json:"capacity"`
	TechnicianID *int64                       `gorm:"index" json:"technicianId"`
	Thresholds   map[MetricKind]ThresholdBand `gorm:"serializer:json" json:"thresholds,omitempty"`
}

type Device struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	PigstyID     int64      `gorm:"index" json:"-"`
	PigstyRef    Ref        `gorm:"-" json:"pigstyId"`
	Kind         MetricKind `gorm:"type:varchar(20)" json:"type"`
	Active       bool       `json:"active"`
	ModelNumber  string     `json:"modelNumber,omitempty"`
	SerialNumber string     `json:"serialNumber,omitempty"`
}

// Reading is one point-in-time snapshot for a facility. A nil metric value
// means no active sensor for that metric at that time, which is not an error.
// The ammonia field key on the wire is ammoniaLevel, not ammonia.
type Reading struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	PigstyID    int64     `gorm:"index" json:"-"`
	PigstyRef   Ref       `gorm:"-" json:"pigstyId"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	Ammonia     *float64  `json:"ammoniaLevel"`
	Light       *float64  `json:"light"`
}

type Alert struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	Timestamp    time.Time  `gorm:"index" json:"timestamp"`
	PigstyRef    Ref        `gorm:"index;type:varchar(40)" json:"pigstyId"`
	PigstyName   string     `json:"pigstyName"`
	Metric       MetricKind `gorm:"type:varchar(20)" json:"metric"`
	Value        float64    `json:"value"`
	Severity     Severity   `gorm:"type:varchar(10)" json:"level"`
	Message      string     `json:"message"`
	Acknowledged bool       `json:"acknowledged"`
}

type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
	Role     Role   `gorm:"type:varchar(20)" json:"role"`
}

// Snapshot is one wholesale fetch from the data source. The core never patches
// a snapshot in place; each refresh replaces the previous one entirely.
type Snapshot struct {
	Users     []User    `json:"users"`
	Pigsties  []Pigsty  `json:"pigsties"`
	Devices   []Device  `json:"devices"`
	Readings  []Reading `json:"readings"`
	Alerts    []Alert   `json:"alerts"`
	FetchedAt time.Time `json:"fetchedAt"`
}

func Float(v float64) *float64 {
	return &v
}

func Int64(v int64) *int64 {
	return &v
}
