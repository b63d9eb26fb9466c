package telemetry

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/sensor-data-platform/pkg/common"
	"liyu1981.xyz/sensor-data-platform/pkg/models"
)

func upsertLocationTx(tx *gorm.DB, id int64, name string, address string) (*models.Location, error) {
	var location models.Location
	found := false

	if id > 0 {
		err := tx.First(&location, id).Error
		if err == nil {
			found = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if !found {
		location = models.Location{ID: id, Name: name, Address: address}
		if err := tx.Create(&location).Error; err != nil {
			return nil, err
		}
	}

	location.Name = fillDefault(location.Name, name, fmt.Sprintf("Location_%d", location.ID))
	location.Address = fillDefault(location.Address, address, fmt.Sprintf("Address_%d", location.ID))

	if err := tx.Save(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (t *Telemetry) upsertLocation(id int64, name string, address string) (*models.Location, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryLocation),
	)

	var location *models.Location
	err := t.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var err error
		location, err = upsertLocationTx(tx, id, name, address)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	logger.Info("Upserted location", zap.Reflect("location", location))
	return location, nil
}

func (t *Telemetry) getLocation(id int64) (*models.Location, error) {
	var location models.Location
	if err := t.Db.Conn.First(&location, id).Error; err != nil {
		return nil, classify(err)
	}
	return &location, nil
}

func (t *Telemetry) getLocations() ([]models.Location, error) {
	locations := make([]models.Location, 0)
	if err := t.Db.Conn.Order("id").Find(&locations).Error; err != nil {
		return nil, classify(err)
	}
	return locations, nil
}

type ILocationImpl struct {
	core *Telemetry
}

func (il *ILocationImpl) UpsertLocation(id int64, name string, address string) (*models.Location, error) {
	return il.core.upsertLocation(id, name, address)
}

func (il *ILocationImpl) GetLocation(id int64) (*models.Location, error) {
	return il.core.getLocation(id)
}

func (il *ILocationImpl) GetLocations() ([]models.Location, error) {
	return il.core.getLocations()
}

func (t *Telemetry) GetILocation() ILocation {
	return &ILocationImpl{core: t}
}
