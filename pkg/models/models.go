package models

// ValueType is a named, unit-tagged measurement kind, e.g. Temperature/Celsius.
type ValueType struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	TypeName string `gorm:"index" json:"type_name"`
	TypeUnit string `json:"type_unit"`

	Values []Value `gorm:"foreignKey:ValueTypeID;constraint:OnDelete:CASCADE" json:"-"`
}

// Device is a logical sensor source. Device holds the physical handle/path
// and maps one-to-one to a sensor, hence the unique index.
type Device struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Name   string `json:"name"`
	Device string `gorm:"uniqueIndex" json:"device"`
	RoomID *int64 `gorm:"index" json:"room_id"`

	Room   *Room   `gorm:"foreignKey:RoomID" json:"-"`
	Values []Value `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE" json:"-"`
}

type Room struct {
	ID         int64  `gorm:"primaryKey" json:"id"`
	Name       string `json:"name"`
	LocationID *int64 `gorm:"index" json:"location_id"`

	Location *Location `gorm:"foreignKey:LocationID" json:"-"`
	Devices  []Device  `gorm:"foreignKey:RoomID" json:"-"`
}

// Location is the top of the room hierarchy (a building, a site).
type Location struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`

	Rooms []Room `gorm:"foreignKey:LocationID" json:"-"`
}

// Value is one timestamped measurement. At most one row may exist per
// (time, value_type_id, device_id) triple; the second insert of the same
// triple fails the unique index.
type Value struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	Time        int64   `gorm:"uniqueIndex:idx_value_integrity" json:"time"`
	Value       float64 `json:"value"`
	ValueTypeID int64   `gorm:"uniqueIndex:idx_value_integrity;index" json:"value_type_id"`
	DeviceID    int64   `gorm:"uniqueIndex:idx_value_integrity;index" json:"device_id"`

	ValueType ValueType `gorm:"foreignKey:ValueTypeID" json:"-"`
	Device    Device    `gorm:"foreignKey:DeviceID" json:"-"`
}

// "values" is an SQL keyword; pick a table name that stays unquoted in raw
// filter fragments.
func (Value) TableName() string {
	return "sensor_values"
}
