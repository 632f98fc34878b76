// Package dashboard composes association and threshold evaluation into the
// per-facility views the display layer renders.
package dashboard

import (
	"barnsight.xyz/pigsty-monitor-service/pkg/assoc"
	"barnsight.xyz/pigsty-monitor-service/pkg/models"
	"barnsight.xyz/pigsty-monitor-service/pkg/registry"
	"barnsight.xyz/pigsty-monitor-service/pkg/threshold"
)

// MetricStatus is one metric's instantaneous state for a facility.
// HasDevice false means no device of that kind is configured; HasDevice true
// with a nil Value means a device exists but no data has arrived yet. The two
// render differently and are never collapsed.
type MetricStatus struct {
	Metric    models.MetricKind `json:"metric"`
	Name      string            `json:"name"`
	Unit      string            `json:"unit"`
	HasDevice bool              `json:"hasDevice"`
	Value     *float64          `json:"value"`
	Severity  models.Severity   `json:"severity,omitempty"`
}

type View struct {
	Pigsty        models.Pigsty    `json:"pigsty"`
	ActiveDevices []models.Device  `json:"activeDevices"`
	History       []models.Reading `json:"history"`
	Latest        *models.Reading  `json:"latest"`
	Metrics       []MetricStatus   `json:"metrics"`
}

// Build evaluates a snapshot into dashboard views for the viewer. Severity is
// classified from the facility's effective bands (override merged over
// default); values stay unrounded, display rounding is the renderer's job.
func Build(snap *models.Snapshot, viewer models.User) []View {
	groups := assoc.Associate(snap, viewer)

	views := make([]View, 0, len(groups))
	for _, g := range groups {
		v := View{
			Pigsty:        g.Pigsty,
			ActiveDevices: g.ActiveDevices,
			History:       g.History,
			Latest:        g.Latest,
		}

		for _, kind := range registry.Kinds() {
			st := MetricStatus{
				Metric:    kind,
				Name:      registry.DisplayName(kind),
				Unit:      registry.Unit(kind),
				HasDevice: g.HasActiveDevice(kind),
			}
			if st.HasDevice && g.Latest != nil {
				st.Value = registry.Value(kind, g.Latest)
			}
			if st.Value != nil {
				st.Severity = threshold.Classify(
					*st.Value,
					threshold.EffectiveBand(kind, g.Pigsty.Thresholds[kind]),
				)
			}
			v.Metrics = append(v.Metrics, st)
		}

		views = append(views, v)
	}
	return views
}
