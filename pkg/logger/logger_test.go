package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"WARN":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"bogus":   logrus.InfoLevel,
	}
	for name, want := range cases {
		SetLevel(name)
		if got := defaultLogger.GetLevel(); got != want {
			t.Errorf("SetLevel(%q) level = %v, want %v", name, got, want)
		}
	}

	SetLevel("debug")
	if !IsDebugEnabled() {
		t.Fatalf("IsDebugEnabled() = false at debug level")
	}
	SetLevel("info")
	if IsDebugEnabled() {
		t.Fatalf("IsDebugEnabled() = true at info level")
	}
}

func TestValidLevel(t *testing.T) {
	if !ValidLevel("Info") || ValidLevel("fatal") || ValidLevel("") {
		t.Fatalf("ValidLevel disagrees with SetLevel")
	}
}

func TestJSONOutputWithFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	UseJSONFormat()
	defer func() {
		SetOutput(os.Stderr)
		defaultLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}()

	WithFields(Fields{"type": "[]uint8"}).Info("cloned")

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v: %q", err, buf.String())
	}
	if entry["msg"] != "cloned" || entry["type"] != "[]uint8" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}
