package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/sensor-data-platform/pkg/common"
	"liyu1981.xyz/sensor-data-platform/pkg/db"
	sdpHttp "liyu1981.xyz/sensor-data-platform/pkg/http"
	"liyu1981.xyz/sensor-data-platform/pkg/reader"
	"liyu1981.xyz/sensor-data-platform/pkg/telemetry"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	sdpDbType := os.Getenv(common.EnvKeySDPDBType)
	switch sdpDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown SDP_DB_TYPE: " + sdpDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeySDPHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeySDPDefaultRate), 64); err != nil {
		log.Fatal("Invalid SDP_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeySDPDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid SDP_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	core := telemetry.Telemetry{
		Db: *dbInstance,
	}
	core.WithDefaultServices()

	// the sensor reader only runs when a device path is configured, so the
	// service stays usable on machines without the hardware
	var sensorReader *reader.Reader
	if devicePath := strings.TrimSpace(os.Getenv(common.EnvKeySDPSensorDevice)); devicePath != "" {
		readerDeviceID := int64(1)
		if raw := strings.TrimSpace(os.Getenv(common.EnvKeySDPReaderDeviceID)); raw != "" {
			if readerDeviceID, err = strconv.ParseInt(raw, 10, 64); err != nil {
				log.Fatal("Invalid SDP_READER_DEVICE_ID, should be an int value")
			}
		}

		if _, err := core.Device.UpsertDevice(readerDeviceID, "", devicePath, nil); err != nil {
			log.Fatalf("failed to register reader device: %v", err)
		}

		sensorReader = reader.New(core.Value, &reader.DeviceFileSource{Path: devicePath}, readerDeviceID)
		sensorReader.Start()
		logger.Info("Sensor reader started",
			zap.String("device_path", devicePath),
			zap.Int64("device_id", readerDeviceID))
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &sdpHttp.RestfulServer{
		Server:           gin.Default(),
		Core:             &core,
		RateLimiterStore: telemetry.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", defaultRate),
		zap.Int64("default_burst", defaultBurst))

	server := &http.Server{
		Addr:    httpHostPort,
		Handler: rs.Server,
	}

	go func() {
		logger.Info("Starting HTTP server on: " + httpHostPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	logger.Info("Shutting down")
	if sensorReader != nil {
		sensorReader.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
}
