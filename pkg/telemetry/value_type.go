package telemetry

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/sensor-data-platform/pkg/common"
	"liyu1981.xyz/sensor-data-platform/pkg/models"
)

func upsertValueTypeTx(tx *gorm.DB, id int64, name string, unit string) (*models.ValueType, error) {
	var valueType models.ValueType
	found := false

	if id > 0 {
		err := tx.First(&valueType, id).Error
		if err == nil {
			found = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if !found {
		valueType = models.ValueType{ID: id, TypeName: name, TypeUnit: unit}
		if err := tx.Create(&valueType).Error; err != nil {
			return nil, err
		}
	}

	valueType.TypeName = fillDefault(valueType.TypeName, name, fmt.Sprintf("TYPE_%d", valueType.ID))
	valueType.TypeUnit = fillDefault(valueType.TypeUnit, unit, fmt.Sprintf("UNIT_%d", valueType.ID))

	if err := tx.Save(&valueType).Error; err != nil {
		return nil, err
	}
	return &valueType, nil
}

func (t *Telemetry) upsertValueType(id int64, name string, unit string) (*models.ValueType, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryValueType),
	)

	var valueType *models.ValueType
	err := t.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var err error
		valueType, err = upsertValueTypeTx(tx, id, name, unit)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	logger.Info("Upserted value type", zap.Reflect("value_type", valueType))
	return valueType, nil
}

// findOrCreateValueTypeByName is the bulk-import resolution path: CSV columns
// reference types by name, not id.
func (t *Telemetry) findOrCreateValueTypeByName(name string, unit string) (*models.ValueType, error) {
	var valueType models.ValueType
	err := t.Db.Conn.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("type_name = ?", name).First(&valueType).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		created, err := upsertValueTypeTx(tx, 0, name, unit)
		if err != nil {
			return err
		}
		valueType = *created
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return &valueType, nil
}

func (t *Telemetry) getValueType(id int64) (*models.ValueType, error) {
	var valueType models.ValueType
	if err := t.Db.Conn.First(&valueType, id).Error; err != nil {
		return nil, classify(err)
	}
	return &valueType, nil
}

func (t *Telemetry) getValueTypes() ([]models.ValueType, error) {
	valueTypes := make([]models.ValueType, 0)
	if err := t.Db.Conn.Order("id").Find(&valueTypes).Error; err != nil {
		return nil, classify(err)
	}
	return valueTypes, nil
}

type IValueTypeImpl struct {
	core *Telemetry
}

func (iv *IValueTypeImpl) UpsertValueType(id int64, name string, unit string) (*models.ValueType, error) {
	return iv.core.upsertValueType(id, name, unit)
}

func (iv *IValueTypeImpl) FindOrCreateValueTypeByName(name string, unit string) (*models.ValueType, error) {
	return iv.core.findOrCreateValueTypeByName(name, unit)
}

func (iv *IValueTypeImpl) GetValueType(id int64) (*models.ValueType, error) {
	return iv.core.getValueType(id)
}

func (iv *IValueTypeImpl) GetValueTypes() ([]models.ValueType, error) {
	return iv.core.getValueTypes()
}

func (t *Telemetry) GetIValueType() IValueType {
	return &IValueTypeImpl{core: t}
}
