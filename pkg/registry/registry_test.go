package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"barnsight.xyz/pigsty-monitor-service/pkg/models"
)

func TestKindsStableOrder(t *testing.T) {
	kinds := Kinds()
	assert.Equal(t, []models.MetricKind{
		models.MetricTemperature,
		models.MetricHumidity,
		models.MetricAmmonia,
		models.MetricLight,
	}, kinds)

	for _, kind := range kinds {
		assert.True(t, Known(kind))
	}
	assert.False(t, Known(models.MetricKind("co2")))
}

func TestUnitsAndDisplayNames(t *testing.T) {
	assert.Equal(t, "°C", Unit(models.MetricTemperature))
	assert.Equal(t, "%", Unit(models.MetricHumidity))
	assert.Equal(t, "ppm", Unit(models.MetricAmmonia))
	assert.Equal(t, "lux", Unit(models.MetricLight))
	assert.Equal(t, "?", Unit(models.MetricKind("co2")))

	assert.Equal(t, "Ammonia", DisplayName(models.MetricAmmonia))
	assert.Equal(t, "co2", DisplayName(models.MetricKind("co2")))
}

func TestDefaultBands(t *testing.T) {
	temp := DefaultBand(models.MetricTemperature)
	assert.Equal(t, 20.0, *temp.WarnLow)
	assert.Equal(t, 26.0, *temp.WarnHigh)
	assert.Equal(t, 18.0, *temp.DangerLow)
	assert.Equal(t, 28.0, *temp.DangerHigh)

	// ammonia has no low side at all
	ammonia := DefaultBand(models.MetricAmmonia)
	assert.Nil(t, ammonia.WarnLow)
	assert.Nil(t, ammonia.DangerLow)
	assert.Equal(t, 15.0, *ammonia.WarnHigh)
	assert.Equal(t, 25.0, *ammonia.DangerHigh)

	unknown := DefaultBand(models.MetricKind("co2"))
	assert.Nil(t, unknown.WarnLow)
	assert.Nil(t, unknown.WarnHigh)
	assert.Nil(t, unknown.DangerLow)
	assert.Nil(t, unknown.DangerHigh)
}

func TestFieldKeyIrregularAmmonia(t *testing.T) {
	assert.Equal(t, "temperature", FieldKey(models.MetricTemperature))
	assert.Equal(t, "ammoniaLevel", FieldKey(models.MetricAmmonia))
	assert.Equal(t, "", FieldKey(models.MetricKind("co2")))
}

func TestValueExtraction(t *testing.T) {
	r := &models.Reading{
		Temperature: models.Float(22.5),
		Ammonia:     models.Float(9.1),
	}

	assert.Equal(t, 22.5, *Value(models.MetricTemperature, r))
	assert.Equal(t, 9.1, *Value(models.MetricAmmonia, r))
	assert.Nil(t, Value(models.MetricHumidity, r))
	assert.Nil(t, Value(models.MetricLight, r))
	assert.Nil(t, Value(models.MetricKind("co2"), r))
	assert.Nil(t, Value(models.MetricTemperature, nil))
}
