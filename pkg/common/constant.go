package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeySDPDBType string = "SDP_DB_TYPE"
	EnvKeySDPDbPath string = "SDP_DB_PATH"

	EnvKeySDPHttpHostPort string = "SDP_HTTP_HOST_PORT"

	EnvKeySDPDefaultRate  string = "SDP_DEFAULT_RATE"
	EnvKeySDPDefaultBurst string = "SDP_DEFAULT_BURST"

	EnvKeySDPSensorDevice   string = "SDP_SENSOR_DEVICE"
	EnvKeySDPReaderDeviceID string = "SDP_READER_DEVICE_ID"

	LoggerNameCore          string = "sdp_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameSensorReader  string = "sensor_reader"

	LoggerFieldCategory     string = "category"
	LoggerCategoryValue     string = "value"
	LoggerCategoryValueType string = "value_type"
	LoggerCategoryDevice    string = "device"
	LoggerCategoryRoom      string = "room"
	LoggerCategoryLocation  string = "location"
	LoggerCategoryCsvImport string = "csv_import"
)
