package db

import (
	"os"
	"path/filepath"
	"testing"

	"liyu1981.xyz/sensor-data-platform/pkg/common"
	constant "liyu1981.xyz/sensor-data-platform/pkg/common"
	_ "liyu1981.xyz/sensor-data-platform/pkg/testing"
)

func TestWithEnvPath(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(constant.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	testPath := filepath.Join(wd, "test.db")

	originalDBPath, hadOriginal := os.LookupEnv(constant.EnvKeySDPDbPath)

	if err := os.Setenv(constant.EnvKeySDPDbPath, testPath); err != nil {
		t.Fatalf("Failed to set SDP_DB_PATH: %v", err)
	}

	defer func() {
		if hadOriginal {
			_ = os.Setenv(constant.EnvKeySDPDbPath, originalDBPath)
		} else {
			_ = os.Unsetenv(constant.EnvKeySDPDbPath)
		}
		_ = os.Remove(testPath)
	}()

	instance := GetInstance(UseSqliteDialector())
	if instance == nil {
		t.Fatal("Expected non-nil DB instance")
	}
}
