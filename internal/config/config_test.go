package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.Sensor.ReplayPath)
	assert.Equal(t, 30, cfg.Sensor.FrameRate)
	assert.Equal(t, 6, cfg.Sensor.BodyCount)
	assert.Equal(t, false, cfg.Sensor.Loop)
	assert.Equal(t, -1, cfg.Display.Index)
	assert.Equal(t, true, cfg.Hotkeys.Enabled)
	assert.Equal(t, DefaultSettings(), cfg.Settings)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := writeConfig(t, `{
		"logLevel": "DEBUG",
		"sensor": { "replayPath": "session.jsonl", "frameRate": 15, "loop": true },
		"display": { "index": 1 },
		"cursor": { "sensitivity": 2.5, "smoothing": 0.5 },
		"click": { "gripMode": true, "dwellTime": "1500ms", "dwellRadius": 25 },
		"calibration": { "leftHandOffsetX": 0.25, "reachThreshold": 0.2 }
	}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "session.jsonl", cfg.Sensor.ReplayPath)
	assert.Equal(t, 15, cfg.Sensor.FrameRate)
	assert.Equal(t, true, cfg.Sensor.Loop)
	assert.Equal(t, 1, cfg.Display.Index)

	s := cfg.Settings
	assert.Equal(t, 2.5, s.Sensitivity)
	assert.Equal(t, 0.5, s.Smoothing)
	assert.True(t, s.ClickEnabled)
	assert.True(t, s.GripMode)
	assert.Equal(t, 1500*time.Millisecond, s.DwellTime)
	assert.Equal(t, 25.0, s.DwellRadius)
	assert.Equal(t, 0.05, s.Calibration.RightHandOffsetX)
	assert.Equal(t, 0.25, s.Calibration.LeftHandOffsetX)
	assert.Equal(t, 0.2, s.Calibration.ReachThreshold)
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, `{"logLevel": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_RejectsInvalidSettings(t *testing.T) {
	_, err := Load(writeConfig(t, `{"cursor": {"smoothing": 0.99}}`))
	assert.ErrorIs(t, err, ErrInvalidSmoothing)

	_, err = Load(writeConfig(t, `{"sensor": {"frameRate": 0}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sensor.frameRate")
}
