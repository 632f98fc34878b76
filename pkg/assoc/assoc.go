// Package assoc groups devices and readings under their owning facility.
// Facility references arrive inconsistently typed (numeric ids on one
// endpoint, their string form on another); both sides are normalized to a
// canonical string key before any comparison. Comparing raw mixed types has
// produced silently empty dashboards before, so the normalization is a hard
// invariant here, not an optimization.
package assoc

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"barnsight.xyz/pigsty-monitor-service/pkg/models"
)

// RefKey returns the canonical string key for a facility reference of any
// observed wire type. "4", 4 and 4.0 all map to "4".
func RefKey(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return canon(t)
	case models.Ref:
		return canon(string(t))
	case json.Number:
		return canon(t.String())
	case int:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return canon(strconv.FormatFloat(float64(t), 'f', -1, 32))
	case float64:
		return canon(strconv.FormatFloat(t, 'f', -1, 64))
	default:
		return canon(fmt.Sprint(v))
	}
}

func canon(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// integer tokens keep their exact digits; the float path below loses
	// precision above 2^53
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	// "4.0" and "4" must compare equal: JSON numbers decode as float64
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) {
			return strconv.FormatInt(int64(f), 10)
		}
	}
	return s
}

func readingKey(r *models.Reading) string {
	if r.PigstyRef != "" {
		return RefKey(r.PigstyRef)
	}
	return RefKey(r.PigstyID)
}

func deviceKey(d *models.Device) string {
	if d.PigstyRef != "" {
		return RefKey(d.PigstyRef)
	}
	return RefKey(d.PigstyID)
}

// FacilityGroup is the per-facility association result. ActiveDevices and
// Latest are separate on purpose: "has device, no data" and "no device
// configured" are different states and must stay distinguishable.
type FacilityGroup struct {
	Pigsty        models.Pigsty
	Devices       []models.Device
	ActiveDevices []models.Device
	History       []models.Reading
	Latest        *models.Reading
}

// HasActiveDevice reports whether the facility has an active device of kind.
func (g *FacilityGroup) HasActiveDevice(kind models.MetricKind) bool {
	for i := range g.ActiveDevices {
		if g.ActiveDevices[i].Kind == kind {
			return true
		}
	}
	return false
}

// Scope restricts a facility set to the viewer: a technician sees only
// facilities assigned to them, an admin sees everything. Scoping runs before
// any grouping.
func Scope(pigsties []models.Pigsty, viewer models.User) []models.Pigsty {
	if viewer.Role == models.RoleAdmin {
		return pigsties
	}
	var scoped []models.Pigsty
	for _, p := range pigsties {
		if p.TechnicianID != nil && *p.TechnicianID == viewer.ID {
			scoped = append(scoped, p)
		}
	}
	return scoped
}

// Associate builds per-facility groups from a snapshot. Reading history is
// sorted ascending by timestamp before Latest is derived; arrival order from
// the backend is not chronological. Inactive devices stay in Devices (they are
// still shown on management screens) but never count toward ActiveDevices.
func Associate(snap *models.Snapshot, viewer models.User) []FacilityGroup {
	pigsties := Scope(snap.Pigsties, viewer)

	devicesByKey := make(map[string][]models.Device)
	for _, d := range snap.Devices {
		k := deviceKey(&d)
		devicesByKey[k] = append(devicesByKey[k], d)
	}

	readingsByKey := make(map[string][]models.Reading)
	for _, r := range snap.Readings {
		k := readingKey(&r)
		readingsByKey[k] = append(readingsByKey[k], r)
	}

	groups := make([]FacilityGroup, 0, len(pigsties))
	for _, p := range pigsties {
		key := RefKey(p.ID)

		g := FacilityGroup{
			Pigsty:  p,
			Devices: devicesByKey[key],
		}
		for _, d := range g.Devices {
			if d.Active {
				g.ActiveDevices = append(g.ActiveDevices, d)
			}
		}

		history := readingsByKey[key]
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].Timestamp.Before(history[j].Timestamp)
		})
		g.History = history
		if len(history) > 0 {
			latest := history[len(history)-1]
			g.Latest = &latest
		}

		groups = append(groups, g)
	}
	return groups
}
