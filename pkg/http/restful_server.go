package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/sensor-data-platform/pkg/telemetry"
)

type RestfulServer struct {
	Server           *gin.Engine
	Core             *telemetry.Telemetry
	RateLimiterStore *telemetry.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

// statusFromError maps the core error taxonomy to transport responses; the
// core itself never decides user-visible behavior.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, telemetry.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, telemetry.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, telemetry.ErrIntegrityViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error()})
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/", rs.ApiRoot)

	types := rs.Server.Group("/types")
	{
		types.GET("", rs.GetValueTypes)
		types.GET("/:id", rs.GetValueType)
		types.PUT("/:id", rs.PutValueType)
	}

	devices := rs.Server.Group("/devices")
	{
		devices.GET("", rs.GetDevices)
		devices.GET("/:id", rs.GetDevice)
		devices.PUT("/:id", rs.PutDevice)
		devices.GET("/:id/values", rs.GetDeviceAllValues)
		devices.GET("/:id/values/:type_id", rs.GetDeviceTypedValues)
		devices.POST("/:id/limiter", rs.PostLimiter)
	}

	rooms := rs.Server.Group("/rooms")
	{
		rooms.GET("", rs.GetRooms)
		rooms.GET("/:id", rs.GetRoom)
		rooms.PUT("/:id", rs.PutRoom)
	}

	locations := rs.Server.Group("/locations")
	{
		locations.GET("", rs.GetLocations)
		locations.GET("/:id", rs.GetLocation)
		locations.PUT("/:id", rs.PutLocation)
	}

	values := rs.Server.Group("/values")
	{
		values.GET("", rs.GetValues)
		values.POST("", rs.PostValue)
		values.GET("/minmax", rs.GetMinMaxValues)
	}

	rs.Server.POST("/upload/csv", rs.UploadCsv)
}
