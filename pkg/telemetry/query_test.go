package telemetry

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/sensor-data-platform/pkg/common"
	"liyu1981.xyz/sensor-data-platform/pkg/models"
)

type queryFixture struct {
	type1, type2     int64
	device1, device2 int64
	roomID           int64
	base             int64
}

// seedQueryFixture loads the canonical three-value data set:
//
//	(base+1, type1, device1, 10) with device1 in roomID
//	(base+5, type1, device2, 20)
//	(base+9, type2, device1, 30)
func seedQueryFixture(t *testing.T, core *Telemetry) queryFixture {
	t.Helper()

	f := queryFixture{
		type1:   nextTestID(),
		type2:   nextTestID(),
		device1: nextTestID(),
		device2: nextTestID(),
		roomID:  nextTestID(),
		base:    nextTestTimeBase(),
	}

	_, err := core.Room.UpsertRoom(f.roomID, "query room", nil)
	require.NoError(t, err)
	_, err = core.Device.UpsertDevice(f.device1, "", uuid.NewString(), ptr(f.roomID))
	require.NoError(t, err)
	_, err = core.Device.UpsertDevice(f.device2, "", uuid.NewString(), nil)
	require.NoError(t, err)

	_, err = core.Value.AddValue(f.base+1, f.type1, 10, f.device1)
	require.NoError(t, err)
	_, err = core.Value.AddValue(f.base+5, f.type1, 20, f.device2)
	require.NoError(t, err)
	_, err = core.Value.AddValue(f.base+9, f.type2, 30, f.device1)
	require.NoError(t, err)

	return f
}

func times(values []models.Value) []int64 {
	return common.Mapper(values, func(v models.Value) int64 { return v.Time })
}

func TestGetValuesFilterConjunction(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	f := seedQueryFixture(t, core)

	values, err := core.Value.GetValues(ValueQuery{
		ValueTypeID: ptr(f.type1),
		DeviceID:    ptr(f.device1),
	})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, f.base+1, values[0].Time)
	assert.Equal(t, 10.0, values[0].Value)
}

func TestGetValuesTimeBoundsInclusive(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	f := seedQueryFixture(t, core)

	values, err := core.Value.GetValues(ValueQuery{
		Start: ptr(f.base + 2),
		End:   ptr(f.base + 9),
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{f.base + 5, f.base + 9}, times(values))

	// bounds are inclusive on both ends
	values, err = core.Value.GetValues(ValueQuery{
		Start: ptr(f.base + 1),
		End:   ptr(f.base + 1),
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{f.base + 1}, times(values))
}

func TestGetValuesRoomFilter(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	f := seedQueryFixture(t, core)

	values, err := core.Value.GetValues(ValueQuery{
		RoomID: ptr(f.roomID),
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{f.base + 1, f.base + 9}, times(values))
	for _, v := range values {
		assert.Equal(t, f.device1, v.DeviceID)
	}
}

func TestGetValuesOrderModes(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)
	f := seedQueryFixture(t, core)

	// default is time ascending
	values, err := core.Value.GetValues(ValueQuery{
		Start: ptr(f.base),
		End:   ptr(f.base + 999),
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{f.base + 1, f.base + 5, f.base + 9}, times(values))

	values, err = core.Value.GetValues(ValueQuery{
		Start: ptr(f.base),
		End:   ptr(f.base + 999),
		Order: OrderTimeDesc,
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{f.base + 9, f.base + 5, f.base + 1}, times(values))

	// type1 < type2, so the type2 row sorts last regardless of time
	values, err = core.Value.GetValues(ValueQuery{
		Start: ptr(f.base),
		End:   ptr(f.base + 999),
		Order: OrderByTypeThenTime,
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{f.base + 1, f.base + 5, f.base + 9}, times(values))

	values, err = core.Value.GetValues(ValueQuery{
		Start: ptr(f.base),
		End:   ptr(f.base + 999),
		Order: OrderByTypeThenValue,
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, common.Mapper(values, func(v models.Value) float64 { return v.Value }))
}

func TestGetValuesEmptyResultIsNotAnError(t *testing.T) {
	common.SetTestLoggerNop()

	core := getTestCore(t)

	values, err := core.Value.GetValues(ValueQuery{
		ValueTypeID: ptr(nextTestID()),
	})
	require.NoError(t, err)
	assert.NotNil(t, values)
	assert.Len(t, values, 0)
}

func TestParseOrderBy(t *testing.T) {
	assert.Equal(t, OrderTimeAsc, ParseOrderBy(""))
	assert.Equal(t, OrderTimeAsc, ParseOrderBy("bogus"))
	assert.Equal(t, OrderTimeDesc, ParseOrderBy("time_desc"))
	assert.Equal(t, OrderByTypeThenTime, ParseOrderBy("type_time"))
	assert.Equal(t, OrderByTypeThenValue, ParseOrderBy("type_value"))
}
