package telemetry

import (
	"fmt"

	"liyu1981.xyz/sensor-data-platform/pkg/models"
)

// getMinMaxValues returns the entries holding the minimum and maximum value
// of the filtered set. An empty set is ErrNotFound; callers must guard.
func (t *Telemetry) getMinMaxValues(valueTypeID int64, start *int64, end *int64) (*models.Value, *models.Value, error) {
	values, err := t.getValues(ValueQuery{
		ValueTypeID: &valueTypeID,
		Start:       start,
		End:         end,
	})
	if err != nil {
		return nil, nil, err
	}
	if len(values) == 0 {
		return nil, nil, fmt.Errorf("%w: no values for value type %d in range", ErrNotFound, valueTypeID)
	}

	minValue := values[0]
	maxValue := values[0]
	for _, v := range values[1:] {
		if v.Value < minValue.Value {
			minValue = v
		}
		if v.Value > maxValue.Value {
			maxValue = v
		}
	}
	return &minValue, &maxValue, nil
}

func (t *Telemetry) getDeviceValues(deviceID int64, valueTypeID int64) ([]models.Value, error) {
	return t.getValues(ValueQuery{
		DeviceID:    &deviceID,
		ValueTypeID: &valueTypeID,
	})
}

func (t *Telemetry) getValuesByDeviceID(deviceID int64) ([]models.Value, error) {
	return t.getValues(ValueQuery{
		DeviceID: &deviceID,
	})
}
