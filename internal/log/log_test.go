package log

import (
	"testing"

	"go.uber.org/zap"
)

func TestGetSugaredLoggerBeforeInit(t *testing.T) {
	log = nil
	logger := GetSugaredLogger()
	if logger == nil {
		t.Fatal("GetSugaredLogger returned nil before Init")
	}
	if !logger.Desugar().Core().Enabled(zap.InfoLevel) {
		t.Error("fallback logger drops info messages")
	}
	if logger.Desugar().Core().Enabled(zap.DebugLevel) {
		t.Error("fallback logger emits debug messages")
	}
	Debugw("discarded", "key", "value")
}

func TestInit(t *testing.T) {
	for _, debug := range []bool{true, false} {
		if err := Init(debug); err != nil {
			t.Fatalf("Init(%v) returned error: %v", debug, err)
		}
		if GetSugaredLogger() == nil {
			t.Errorf("Init(%v) left the logger nil", debug)
		}
		if enabled := GetSugaredLogger().Desugar().Core().Enabled(zap.DebugLevel); enabled != debug {
			t.Errorf("Init(%v) debug level enabled = %v, expected %v", debug, enabled, debug)
		}
	}
	Sync()
}
