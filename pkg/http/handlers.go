package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"liyu1981.xyz/sensor-data-platform/pkg/telemetry"
)

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) ApiRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"description":    "sensor data platform api",
		"value_type_url": "/types",
		"device_url":     "/devices",
		"room_url":       "/rooms",
		"location_url":   "/locations",
		"value_url":      "/values",
	})
}

func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", telemetry.ErrValidation, name)
	}
	return id, nil
}

func int64QueryParam(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", telemetry.ErrValidation, name)
	}
	return &v, nil
}

type ValueTypeRequest struct {
	TypeName string `json:"type_name"`
	TypeUnit string `json:"type_unit"`
}

var valueTypeRequestSchema = z.Struct(z.Shape{
	"TypeName": z.String(),
	"TypeUnit": z.String(),
})

func (rs *RestfulServer) PutValueType(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req ValueTypeRequest
	if err := valueTypeRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	valueType, err := rs.Core.ValueType.UpsertValueType(id, req.TypeName, req.TypeUnit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, valueType)
}

func (rs *RestfulServer) GetValueType(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	valueType, err := rs.Core.ValueType.GetValueType(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, valueType)
}

func (rs *RestfulServer) GetValueTypes(c *gin.Context) {
	valueTypes, err := rs.Core.ValueType.GetValueTypes()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, valueTypes)
}

type DeviceRequest struct {
	Name   string `json:"name"`
	Device string `json:"device"`
	RoomID int    `json:"room_id"`
}

var deviceRequestSchema = z.Struct(z.Shape{
	"Name":   z.String(),
	"Device": z.String(),
	"RoomID": z.Int(),
})

func (rs *RestfulServer) PutDevice(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req DeviceRequest
	if err := deviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	var roomID *int64
	if req.RoomID > 0 {
		rid := int64(req.RoomID)
		roomID = &rid
	}

	device, err := rs.Core.Device.UpsertDevice(id, req.Name, req.Device, roomID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, device)
}

func (rs *RestfulServer) GetDevice(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	device, err := rs.Core.Device.GetDevice(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, device)
}

func (rs *RestfulServer) GetDevices(c *gin.Context) {
	devices, err := rs.Core.Device.GetDevices()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, devices)
}

func (rs *RestfulServer) GetDeviceAllValues(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	values, err := rs.Core.Value.GetValuesByDeviceID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

func (rs *RestfulServer) GetDeviceTypedValues(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}
	typeID, err := idParam(c, "type_id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	values, err := rs.Core.Value.GetDeviceValues(id, typeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

type RoomRequest struct {
	Name       string `json:"name"`
	LocationID int    `json:"location_id"`
}

var roomRequestSchema = z.Struct(z.Shape{
	"Name":       z.String(),
	"LocationID": z.Int(),
})

func (rs *RestfulServer) PutRoom(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req RoomRequest
	if err := roomRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	var locationID *int64
	if req.LocationID > 0 {
		lid := int64(req.LocationID)
		locationID = &lid
	}

	room, err := rs.Core.Room.UpsertRoom(id, req.Name, locationID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rs *RestfulServer) GetRoom(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	room, err := rs.Core.Room.GetRoom(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rs *RestfulServer) GetRooms(c *gin.Context) {
	rooms, err := rs.Core.Room.GetRooms()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

type LocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

var locationRequestSchema = z.Struct(z.Shape{
	"Name":    z.String(),
	"Address": z.String(),
})

func (rs *RestfulServer) PutLocation(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req LocationRequest
	if err := locationRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	location, err := rs.Core.Location.UpsertLocation(id, req.Name, req.Address)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

func (rs *RestfulServer) GetLocation(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	location, err := rs.Core.Location.GetLocation(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

func (rs *RestfulServer) GetLocations(c *gin.Context) {
	locations, err := rs.Core.Location.GetLocations()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

type ValueRequest struct {
	Time        int     `json:"time"`
	ValueTypeID int     `json:"value_type_id"`
	Value       float64 `json:"value"`
	DeviceID    int     `json:"device_id"`
}

var valueRequestSchema = z.Struct(z.Shape{
	"Time":        z.Int().Required(),
	"ValueTypeID": z.Int().Required(),
	"Value":       z.Float64().Required(),
	"DeviceID":    z.Int().Required(),
})

func (rs *RestfulServer) PostValue(c *gin.Context) {
	var req ValueRequest
	if err := valueRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.CheckDeviceLimiter(strconv.Itoa(req.DeviceID)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	value, err := rs.Core.Value.AddValue(int64(req.Time), int64(req.ValueTypeID), req.Value, int64(req.DeviceID))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, value)
}

func (rs *RestfulServer) GetValues(c *gin.Context) {
	q := telemetry.ValueQuery{
		Order: telemetry.ParseOrderBy(c.Query("order_by")),
	}

	var err error
	if q.ValueTypeID, err = int64QueryParam(c, "type_id"); err != nil {
		abortWithError(c, err)
		return
	}
	if q.DeviceID, err = int64QueryParam(c, "device_id"); err != nil {
		abortWithError(c, err)
		return
	}
	if q.RoomID, err = int64QueryParam(c, "room_id"); err != nil {
		abortWithError(c, err)
		return
	}
	if q.Start, err = int64QueryParam(c, "start"); err != nil {
		abortWithError(c, err)
		return
	}
	if q.End, err = int64QueryParam(c, "end"); err != nil {
		abortWithError(c, err)
		return
	}

	values, err := rs.Core.Value.GetValues(q)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

func (rs *RestfulServer) GetMinMaxValues(c *gin.Context) {
	typeID, err := int64QueryParam(c, "type_id")
	if err != nil {
		abortWithError(c, err)
		return
	}
	if typeID == nil {
		abortWithError(c, fmt.Errorf("%w: type_id is mandatory", telemetry.ErrValidation))
		return
	}

	start, err := int64QueryParam(c, "start")
	if err != nil {
		abortWithError(c, err)
		return
	}
	end, err := int64QueryParam(c, "end")
	if err != nil {
		abortWithError(c, err)
		return
	}

	minValue, maxValue, err := rs.Core.Value.GetMinMaxValues(*typeID, start, end)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"min": minValue, "max": maxValue})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(strconv.FormatInt(id, 10), req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
