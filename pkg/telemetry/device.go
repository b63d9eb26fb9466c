package telemetry

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/sensor-data-platform/pkg/common"
	"liyu1981.xyz/sensor-data-platform/pkg/models"
)

func upsertDeviceTx(tx *gorm.DB, id int64, name string, handle string, roomID *int64) (*models.Device, error) {
	var device models.Device
	found := false

	if id > 0 {
		err := tx.First(&device, id).Error
		if err == nil {
			found = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if !found {
		device = models.Device{ID: id, Name: name, Device: handle, RoomID: roomID}
		if device.Device == "" {
			// the handle carries a unique index, so the placeholder must be
			// in place before the row hits storage
			if id > 0 {
				device.Device = fmt.Sprintf("Device_%d", id)
			}
		}
		if err := tx.Create(&device).Error; err != nil {
			return nil, err
		}
	}

	device.Name = fillDefault(device.Name, name, fmt.Sprintf("Device_%d", device.ID))
	device.Device = fillDefault(device.Device, handle, fmt.Sprintf("Device_%d", device.ID))
	if roomID != nil {
		device.RoomID = roomID
	}

	if err := tx.Save(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

func (t *Telemetry) upsertDevice(id int64, name string, handle string, roomID *int64) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	var device *models.Device
	err := t.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var err error
		device, err = upsertDeviceTx(tx, id, name, handle, roomID)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	logger.Info("Upserted device", zap.Reflect("device", device))
	return device, nil
}

// findOrCreateDeviceByHandle resolves a device by its physical handle,
// creating it on first sight. Used by the bulk-import path.
func (t *Telemetry) findOrCreateDeviceByHandle(handle string, name string) (*models.Device, error) {
	var device models.Device
	err := t.Db.Conn.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("device = ?", handle).First(&device).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		created, err := upsertDeviceTx(tx, 0, name, handle, nil)
		if err != nil {
			return err
		}
		device = *created
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return &device, nil
}

func (t *Telemetry) getDevice(id int64) (*models.Device, error) {
	var device models.Device
	if err := t.Db.Conn.First(&device, id).Error; err != nil {
		return nil, classify(err)
	}
	return &device, nil
}

func (t *Telemetry) getDevices() ([]models.Device, error) {
	devices := make([]models.Device, 0)
	if err := t.Db.Conn.Order("id").Find(&devices).Error; err != nil {
		return nil, classify(err)
	}
	return devices, nil
}

type IDeviceImpl struct {
	core *Telemetry
}

func (id *IDeviceImpl) UpsertDevice(deviceID int64, name string, handle string, roomID *int64) (*models.Device, error) {
	return id.core.upsertDevice(deviceID, name, handle, roomID)
}

func (id *IDeviceImpl) FindOrCreateDeviceByHandle(handle string, name string) (*models.Device, error) {
	return id.core.findOrCreateDeviceByHandle(handle, name)
}

func (id *IDeviceImpl) GetDevice(deviceID int64) (*models.Device, error) {
	return id.core.getDevice(deviceID)
}

func (id *IDeviceImpl) GetDevices() ([]models.Device, error) {
	return id.core.getDevices()
}

func (t *Telemetry) GetIDevice() IDevice {
	return &IDeviceImpl{core: t}
}
