package telemetry

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/sensor-data-platform/pkg/common"
	"liyu1981.xyz/sensor-data-platform/pkg/models"
)

func upsertRoomTx(tx *gorm.DB, id int64, name string, locationID *int64) (*models.Room, error) {
	var room models.Room
	found := false

	if id > 0 {
		err := tx.First(&room, id).Error
		if err == nil {
			found = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if !found {
		room = models.Room{ID: id, Name: name, LocationID: locationID}
		if err := tx.Create(&room).Error; err != nil {
			return nil, err
		}
	}

	room.Name = fillDefault(room.Name, name, fmt.Sprintf("Room_%d", room.ID))
	if locationID != nil {
		room.LocationID = locationID
	}

	if err := tx.Save(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (t *Telemetry) upsertRoom(id int64, name string, locationID *int64) (*models.Room, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRoom),
	)

	var room *models.Room
	err := t.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var err error
		room, err = upsertRoomTx(tx, id, name, locationID)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	logger.Info("Upserted room", zap.Reflect("room", room))
	return room, nil
}

func (t *Telemetry) getRoom(id int64) (*models.Room, error) {
	var room models.Room
	if err := t.Db.Conn.First(&room, id).Error; err != nil {
		return nil, classify(err)
	}
	return &room, nil
}

func (t *Telemetry) getRooms() ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	if err := t.Db.Conn.Order("id").Find(&rooms).Error; err != nil {
		return nil, classify(err)
	}
	return rooms, nil
}

type IRoomImpl struct {
	core *Telemetry
}

func (ir *IRoomImpl) UpsertRoom(id int64, name string, locationID *int64) (*models.Room, error) {
	return ir.core.upsertRoom(id, name, locationID)
}

func (ir *IRoomImpl) GetRoom(id int64) (*models.Room, error) {
	return ir.core.getRoom(id)
}

func (ir *IRoomImpl) GetRooms() ([]models.Room, error) {
	return ir.core.getRooms()
}

func (t *Telemetry) GetIRoom() IRoom {
	return &IRoomImpl{core: t}
}
