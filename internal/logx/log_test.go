package logx_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/wscodec/wscodec/internal/logx"
)

func TestConfigureLogLevel(t *testing.T) {
	logx.Configure("all")
	if logx.Log.GetLevel() != zerolog.TraceLevel {
		t.Fatalf("expected trace level, got %s", logx.Log.GetLevel())
	}

	logx.Configure("WARNING")
	if logx.Log.GetLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %s", logx.Log.GetLevel())
	}

	logx.Configure("none")
	if logx.Log.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled level, got %s", logx.Log.GetLevel())
	}

	logx.Configure("bogus")
	if logx.Log.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", logx.Log.GetLevel())
	}
}
