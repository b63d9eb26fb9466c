package telemetry

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/sensor-data-platform/pkg/common"
)

func TestUpsertValueTypeDefaults(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	id := nextTestID()

	valueType, err := core.ValueType.UpsertValueType(id, "", "")
	require.NoError(t, err)
	assert.Equal(t, id, valueType.ID)
	assert.Equal(t, fmt.Sprintf("TYPE_%d", id), valueType.TypeName)
	assert.Equal(t, fmt.Sprintf("UNIT_%d", id), valueType.TypeUnit)

	// a second defaulting pass must not change anything
	again, err := core.ValueType.UpsertValueType(id, "", "")
	require.NoError(t, err)
	assert.Equal(t, valueType.TypeName, again.TypeName)
	assert.Equal(t, valueType.TypeUnit, again.TypeUnit)
}

func TestUpsertValueTypeOverrideWins(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	id := nextTestID()

	_, err := core.ValueType.UpsertValueType(id, "Temperature", "celsius")
	require.NoError(t, err)

	// defaulting must never clobber a previously set real value
	valueType, err := core.ValueType.UpsertValueType(id, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Temperature", valueType.TypeName)
	assert.Equal(t, "celsius", valueType.TypeUnit)

	// partial update only touches the supplied field
	valueType, err = core.ValueType.UpsertValueType(id, "", "kelvin")
	require.NoError(t, err)
	assert.Equal(t, "Temperature", valueType.TypeName)
	assert.Equal(t, "kelvin", valueType.TypeUnit)
}

func TestUpsertValueTypeAutoID(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)

	valueType, err := core.ValueType.UpsertValueType(0, "Pressure "+uuid.NewString(), "hPa")
	require.NoError(t, err)
	assert.Greater(t, valueType.ID, int64(0))
	assert.Equal(t, "hPa", valueType.TypeUnit)
}

func TestUpsertValueTypeRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	id := nextTestID()

	_, err := core.ValueType.UpsertValueType(id, "Luminosity", "lux")
	require.NoError(t, err)

	loaded, err := core.ValueType.GetValueType(id)
	require.NoError(t, err)
	assert.Equal(t, "Luminosity", loaded.TypeName)
	assert.Equal(t, "lux", loaded.TypeUnit)
}

func TestGetValueTypeNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)

	_, err := core.ValueType.GetValueType(nextTestID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertDeviceDefaults(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	id := nextTestID()

	device, err := core.Device.UpsertDevice(id, "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Device_%d", id), device.Name)
	assert.Equal(t, fmt.Sprintf("Device_%d", id), device.Device)
	assert.Nil(t, device.RoomID)

	device, err = core.Device.UpsertDevice(id, "Kitchen Sensor", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen Sensor", device.Name)

	// defaulting pass leaves the real name alone
	device, err = core.Device.UpsertDevice(id, "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen Sensor", device.Name)
}

func TestUpsertDeviceDuplicateHandle(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	handle := uuid.NewString()

	_, err := core.Device.UpsertDevice(nextTestID(), "first", handle, nil)
	require.NoError(t, err)

	_, err = core.Device.UpsertDevice(nextTestID(), "second", handle, nil)
	assert.ErrorIs(t, err, ErrIntegrityViolation)
}

func TestUpsertDeviceRoomLink(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	roomID := nextTestID()
	deviceID := nextTestID()

	_, err := core.Room.UpsertRoom(roomID, "Lab", nil)
	require.NoError(t, err)

	device, err := core.Device.UpsertDevice(deviceID, "", uuid.NewString(), ptr(roomID))
	require.NoError(t, err)
	require.NotNil(t, device.RoomID)
	assert.Equal(t, roomID, *device.RoomID)

	// upsert without a room keeps the existing link
	device, err = core.Device.UpsertDevice(deviceID, "", "", nil)
	require.NoError(t, err)
	require.NotNil(t, device.RoomID)
	assert.Equal(t, roomID, *device.RoomID)
}

func TestFindOrCreateDeviceByHandle(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	handle := uuid.NewString()

	created, err := core.Device.FindOrCreateDeviceByHandle(handle, "Weather Station")
	require.NoError(t, err)
	assert.Equal(t, handle, created.Device)
	assert.Equal(t, "Weather Station", created.Name)

	found, err := core.Device.FindOrCreateDeviceByHandle(handle, "something else")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Weather Station", found.Name)
}

func TestFindOrCreateValueTypeByName(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	name := "Humidity " + uuid.NewString()

	created, err := core.ValueType.FindOrCreateValueTypeByName(name, "percent")
	require.NoError(t, err)
	assert.Equal(t, name, created.TypeName)
	assert.Equal(t, "percent", created.TypeUnit)

	found, err := core.ValueType.FindOrCreateValueTypeByName(name, "ignored")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "percent", found.TypeUnit)
}

func TestUpsertRoomAndLocation(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	locationID := nextTestID()
	roomID := nextTestID()

	location, err := core.Location.UpsertLocation(locationID, "", "")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Location_%d", locationID), location.Name)
	assert.Equal(t, fmt.Sprintf("Address_%d", locationID), location.Address)

	room, err := core.Room.UpsertRoom(roomID, "", ptr(locationID))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Room_%d", roomID), room.Name)
	require.NotNil(t, room.LocationID)
	assert.Equal(t, locationID, *room.LocationID)

	loaded, err := core.Room.GetRoom(roomID)
	require.NoError(t, err)
	assert.Equal(t, room.Name, loaded.Name)

	_, err = core.Room.GetRoom(nextTestID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertIdempotence(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	id := nextTestID()

	first, err := core.Location.UpsertLocation(id, "Factory", "Sensorstrasse 1")
	require.NoError(t, err)

	second, err := core.Location.UpsertLocation(id, "", "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
