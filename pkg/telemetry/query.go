package telemetry

import (
	"gorm.io/gorm"
	"liyu1981.xyz/sensor-data-platform/pkg/models"
)

// OrderBy selects the sort mode of a value query, independent of which
// filters are active.
type OrderBy int

const (
	OrderTimeAsc OrderBy = iota
	OrderTimeDesc
	OrderByTypeThenTime
	OrderByTypeThenValue
)

func (o OrderBy) clause() string {
	switch o {
	case OrderTimeDesc:
		return "sensor_values.time DESC"
	case OrderByTypeThenTime:
		return "sensor_values.value_type_id, sensor_values.time"
	case OrderByTypeThenValue:
		return "sensor_values.value_type_id, sensor_values.value"
	default:
		return "sensor_values.time"
	}
}

// ParseOrderBy maps the wire-level order_by token; unknown tokens fall back
// to the time-ascending default.
func ParseOrderBy(s string) OrderBy {
	switch s {
	case "time_desc":
		return OrderTimeDesc
	case "type_time":
		return OrderByTypeThenTime
	case "type_value":
		return OrderByTypeThenValue
	default:
		return OrderTimeAsc
	}
}

// ValueQuery describes one filtered read over the value table. All filters
// are optional and conjunctive; a nil filter imposes no constraint.
type ValueQuery struct {
	ValueTypeID *int64
	DeviceID    *int64
	RoomID      *int64
	Start       *int64 // inclusive lower bound on time
	End         *int64 // inclusive upper bound on time
	Order       OrderBy
}

// scopes folds the active filters into independent query stages. Adding a
// filter dimension means appending one more scope here, nothing else.
func (q ValueQuery) scopes() []func(*gorm.DB) *gorm.DB {
	var scopes []func(*gorm.DB) *gorm.DB

	if q.ValueTypeID != nil {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("sensor_values.value_type_id = ?", *q.ValueTypeID)
		})
	}
	if q.DeviceID != nil {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("sensor_values.device_id = ?", *q.DeviceID)
		})
	}
	if q.RoomID != nil {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.
				Joins("JOIN devices ON devices.id = sensor_values.device_id").
				Where("devices.room_id = ?", *q.RoomID)
		})
	}
	if q.Start != nil {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("sensor_values.time >= ?", *q.Start)
		})
	}
	if q.End != nil {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("sensor_values.time <= ?", *q.End)
		})
	}

	scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
		return db.Order(q.Order.clause())
	})

	return scopes
}

// getValues runs the filter pipeline. An empty match is an empty slice, not
// an error.
func (t *Telemetry) getValues(q ValueQuery) ([]models.Value, error) {
	values := make([]models.Value, 0)
	err := t.Db.Conn.
		Model(&models.Value{}).
		Scopes(q.scopes()...).
		Find(&values).Error
	if err != nil {
		return nil, classify(err)
	}
	return values, nil
}
