package telemetry

import (
	"liyu1981.xyz/sensor-data-platform/pkg/db"
	"liyu1981.xyz/sensor-data-platform/pkg/models"
)

type IValueType interface {
	UpsertValueType(id int64, name string, unit string) (*models.ValueType, error)
	FindOrCreateValueTypeByName(name string, unit string) (*models.ValueType, error)
	GetValueType(id int64) (*models.ValueType, error)
	GetValueTypes() ([]models.ValueType, error)
}

type IDevice interface {
	UpsertDevice(id int64, name string, handle string, roomID *int64) (*models.Device, error)
	FindOrCreateDeviceByHandle(handle string, name string) (*models.Device, error)
	GetDevice(id int64) (*models.Device, error)
	GetDevices() ([]models.Device, error)
}

type IRoom interface {
	UpsertRoom(id int64, name string, locationID *int64) (*models.Room, error)
	GetRoom(id int64) (*models.Room, error)
	GetRooms() ([]models.Room, error)
}

type ILocation interface {
	UpsertLocation(id int64, name string, address string) (*models.Location, error)
	GetLocation(id int64) (*models.Location, error)
	GetLocations() ([]models.Location, error)
}

type IValue interface {
	AddValue(time int64, valueTypeID int64, value float64, deviceID int64) (*models.Value, error)
	GetValues(q ValueQuery) ([]models.Value, error)
	GetMinMaxValues(valueTypeID int64, start *int64, end *int64) (*models.Value, *models.Value, error)
	GetDeviceValues(deviceID int64, valueTypeID int64) ([]models.Value, error)
	GetValuesByDeviceID(deviceID int64) ([]models.Value, error)
}

// Telemetry is the core engine. It is constructed once per process with an
// injected storage handle and passed explicitly to every collaborator.
type Telemetry struct {
	Db        db.DB
	ValueType IValueType
	Device    IDevice
	Room      IRoom
	Location  ILocation
	Value     IValue
}

type ServiceOpts struct {
	ValueType IValueType
	Device    IDevice
	Room      IRoom
	Location  ILocation
	Value     IValue
}

func (t *Telemetry) WithServices(opts ServiceOpts) *Telemetry {
	if opts.ValueType != nil {
		t.ValueType = opts.ValueType
	}
	if opts.Device != nil {
		t.Device = opts.Device
	}
	if opts.Room != nil {
		t.Room = opts.Room
	}
	if opts.Location != nil {
		t.Location = opts.Location
	}
	if opts.Value != nil {
		t.Value = opts.Value
	}
	return t
}

// WithDefaultServices wires every service to its in-package implementation.
func (t *Telemetry) WithDefaultServices() *Telemetry {
	return t.WithServices(ServiceOpts{
		ValueType: t.GetIValueType(),
		Device:    t.GetIDevice(),
		Room:      t.GetIRoom(),
		Location:  t.GetILocation(),
		Value:     t.GetIValue(),
	})
}
