package telemetry

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/sensor-data-platform/pkg/common"
	"liyu1981.xyz/sensor-data-platform/pkg/models"
)

// addValue is the ingestion write path. The referenced value type and device
// are upserted in the same transaction as the insert, so the write path
// self-heals missing references instead of rejecting out-of-order setup.
// Re-ingesting an identical (time, type, device) triple fails with
// ErrIntegrityViolation; that is the idempotence boundary.
func (t *Telemetry) addValue(valueTime int64, valueTypeID int64, valueValue float64, deviceID int64) (*models.Value, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryValue),
	)

	// mandatory fields are checked before any storage mutation
	if valueTime <= 0 {
		return nil, fmt.Errorf("%w: time must be a positive unix timestamp, got %d", ErrValidation, valueTime)
	}
	if valueTypeID <= 0 {
		return nil, fmt.Errorf("%w: value_type_id is mandatory, got %d", ErrValidation, valueTypeID)
	}
	if deviceID <= 0 {
		return nil, fmt.Errorf("%w: device_id is mandatory, got %d", ErrValidation, deviceID)
	}

	var value models.Value
	err := t.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if _, err := upsertValueTypeTx(tx, valueTypeID, "", ""); err != nil {
			return err
		}
		if _, err := upsertDeviceTx(tx, deviceID, "", "", nil); err != nil {
			return err
		}
		value = models.Value{
			Time:        valueTime,
			Value:       valueValue,
			ValueTypeID: valueTypeID,
			DeviceID:    deviceID,
		}
		return tx.Create(&value).Error
	})
	if err != nil {
		return nil, classify(err)
	}

	logger.Info("Added value", zap.Reflect("value", value))
	return &value, nil
}

type IValueImpl struct {
	core *Telemetry
}

func (iv *IValueImpl) AddValue(valueTime int64, valueTypeID int64, valueValue float64, deviceID int64) (*models.Value, error) {
	return iv.core.addValue(valueTime, valueTypeID, valueValue, deviceID)
}

func (iv *IValueImpl) GetValues(q ValueQuery) ([]models.Value, error) {
	return iv.core.getValues(q)
}

func (iv *IValueImpl) GetMinMaxValues(valueTypeID int64, start *int64, end *int64) (*models.Value, *models.Value, error) {
	return iv.core.getMinMaxValues(valueTypeID, start, end)
}

func (iv *IValueImpl) GetDeviceValues(deviceID int64, valueTypeID int64) ([]models.Value, error) {
	return iv.core.getDeviceValues(deviceID, valueTypeID)
}

func (iv *IValueImpl) GetValuesByDeviceID(deviceID int64) ([]models.Value, error) {
	return iv.core.getValuesByDeviceID(deviceID)
}

func (t *Telemetry) GetIValue() IValue {
	return &IValueImpl{core: t}
}
