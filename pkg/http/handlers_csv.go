package http

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"liyu1981.xyz/sensor-data-platform/pkg/common"
	"liyu1981.xyz/sensor-data-platform/pkg/models"
	"liyu1981.xyz/sensor-data-platform/pkg/telemetry"
)

// UploadCsv bulk-imports measurements. Expected multipart fields: "file"
// holding the CSV, "device" with the device handle, optional "device_name".
// CSV layout: first column is the unix timestamp, every further column is a
// measurement series whose header is the value type name, optionally with a
// unit in parentheses, e.g. "Temperature (celsius)". Types and the device
// are resolved by name/handle, created on first sight. Duplicate rows are
// skipped, not fatal.
func (rs *RestfulServer) UploadCsv(c *gin.Context) {
	logger := common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryCsvImport),
	)

	handle := strings.TrimSpace(c.PostForm("device"))
	if handle == "" {
		abortWithError(c, fmt.Errorf("%w: device form field is mandatory", telemetry.ErrValidation))
		return
	}
	deviceName := strings.TrimSpace(c.PostForm("device_name"))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: file form field is mandatory", telemetry.ErrValidation))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: cannot read csv header: %v", telemetry.ErrValidation, err))
		return
	}
	if len(header) < 2 {
		abortWithError(c, fmt.Errorf("%w: csv needs a time column and at least one measurement column", telemetry.ErrValidation))
		return
	}

	device, err := rs.Core.Device.FindOrCreateDeviceByHandle(handle, deviceName)
	if err != nil {
		abortWithError(c, err)
		return
	}

	valueTypes := make([]*models.ValueType, 0, len(header)-1)
	for _, column := range header[1:] {
		name, unit := splitColumnHeader(column)
		valueType, err := rs.Core.ValueType.FindOrCreateValueTypeByName(name, unit)
		if err != nil {
			abortWithError(c, err)
			return
		}
		valueTypes = append(valueTypes, valueType)
	}

	var rows, inserted, duplicates int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			abortWithError(c, fmt.Errorf("%w: malformed csv row %d: %v", telemetry.ErrValidation, rows+2, err))
			return
		}
		if len(record) != len(header) {
			abortWithError(c, fmt.Errorf("%w: csv row %d has %d columns, expect %d", telemetry.ErrValidation, rows+2, len(record), len(header)))
			return
		}
		rows++

		valueTime, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			abortWithError(c, fmt.Errorf("%w: csv row %d has invalid timestamp %q", telemetry.ErrValidation, rows+1, record[0]))
			return
		}

		for i, cell := range record[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			valueValue, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				abortWithError(c, fmt.Errorf("%w: csv row %d column %q has invalid value %q", telemetry.ErrValidation, rows+1, header[i+1], cell))
				return
			}

			_, err = rs.Core.Value.AddValue(valueTime, valueTypes[i].ID, valueValue, device.ID)
			if errors.Is(err, telemetry.ErrIntegrityViolation) {
				duplicates++
				continue
			}
			if err != nil {
				abortWithError(c, err)
				return
			}
			inserted++
		}
	}

	logger.Info("Imported csv",
		zap.String("device", handle),
		zap.Int("rows", rows),
		zap.Int("inserted", inserted),
		zap.Int("duplicates", duplicates),
	)

	c.JSON(http.StatusOK, gin.H{
		"device_id":  device.ID,
		"rows":       rows,
		"inserted":   inserted,
		"duplicates": duplicates,
		"value_type_ids": common.Mapper(valueTypes, func(vt *models.ValueType) int64 {
			return vt.ID
		}),
	})
}

// splitColumnHeader separates "Temperature (celsius)" into name and unit.
func splitColumnHeader(column string) (string, string) {
	column = strings.TrimSpace(column)
	open := strings.LastIndex(column, "(")
	if open > 0 && strings.HasSuffix(column, ")") {
		name := strings.TrimSpace(column[:open])
		unit := strings.TrimSpace(column[open+1 : len(column)-1])
		if name != "" {
			return name, unit
		}
	}
	return column, ""
}
