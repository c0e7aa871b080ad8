package log

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestConfigureAppliesServiceName(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Service: "test-svc", Output: &buf})
	defer Configure(Config{})

	logger := Base()
	logger.Info().Str(FieldEvent, "test.event").Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["service"] != "test-svc" {
		t.Errorf("service = %v, want test-svc", entry["service"])
	}
	if entry["event"] != "test.event" {
		t.Errorf("event = %v, want test.event", entry["event"])
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf})
	defer Configure(Config{})

	logger := WithComponent("dialer")
	logger.Info().Msg("component log")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["component"] != "dialer" {
		t.Errorf("component = %v, want dialer", entry["component"])
	}
}
