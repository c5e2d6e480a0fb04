package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// FileName is the config file Load looks for.
const FileName = "handcursor.cfg.json"

// TickInterval is the period of the dwell-click timer.
const TickInterval = 100 * time.Millisecond

type Config struct {
	LogLevel string

	Sensor struct {
		ReplayPath string
		FrameRate  int
		BodyCount  int
		Loop       bool
	}
	Display struct {
		Index int
	}
	Hotkeys struct {
		Enabled bool
	}

	Settings Settings
}

// NewConfig returns the built-in defaults.
func NewConfig() *Config {
	cfg := &Config{LogLevel: "info"}
	cfg.Sensor.FrameRate = 30
	cfg.Sensor.BodyCount = 6
	cfg.Display.Index = -1
	cfg.Hotkeys.Enabled = true
	cfg.Settings = DefaultSettings()
	return cfg
}

func setDefaults(v *viper.Viper) {
	d := NewConfig()

	v.SetDefault("logLevel", d.LogLevel)

	v.SetDefault("sensor.replayPath", d.Sensor.ReplayPath)
	v.SetDefault("sensor.frameRate", d.Sensor.FrameRate)
	v.SetDefault("sensor.bodyCount", d.Sensor.BodyCount)
	v.SetDefault("sensor.loop", d.Sensor.Loop)

	v.SetDefault("display.index", d.Display.Index)
	v.SetDefault("hotkeys.enabled", d.Hotkeys.Enabled)

	s := d.Settings
	v.SetDefault("cursor.sensitivity", s.Sensitivity)
	v.SetDefault("cursor.smoothing", s.Smoothing)
	v.SetDefault("click.enabled", s.ClickEnabled)
	v.SetDefault("click.gripMode", s.GripMode)
	v.SetDefault("click.dwellTime", s.DwellTime.String())
	v.SetDefault("click.dwellRadius", s.DwellRadius)

	c := s.Calibration
	v.SetDefault("calibration.rightHandOffsetX", c.RightHandOffsetX)
	v.SetDefault("calibration.leftHandOffsetX", c.LeftHandOffsetX)
	v.SetDefault("calibration.verticalOffset", c.VerticalOffset)
	v.SetDefault("calibration.verticalBias", c.VerticalBias)
	v.SetDefault("calibration.reachThreshold", c.ReachThreshold)
}

// Load reads FileName from configDir on top of the defaults. A missing file
// leaves the defaults in place; an unreadable one or invalid settings are
// errors.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{LogLevel: strings.ToLower(v.GetString("logLevel"))}

	cfg.Sensor.ReplayPath = v.GetString("sensor.replayPath")
	cfg.Sensor.FrameRate = v.GetInt("sensor.frameRate")
	cfg.Sensor.BodyCount = v.GetInt("sensor.bodyCount")
	cfg.Sensor.Loop = v.GetBool("sensor.loop")
	cfg.Display.Index = v.GetInt("display.index")
	cfg.Hotkeys.Enabled = v.GetBool("hotkeys.enabled")

	cfg.Settings = Settings{
		Sensitivity:  v.GetFloat64("cursor.sensitivity"),
		Smoothing:    v.GetFloat64("cursor.smoothing"),
		ClickEnabled: v.GetBool("click.enabled"),
		GripMode:     v.GetBool("click.gripMode"),
		DwellTime:    v.GetDuration("click.dwellTime"),
		DwellRadius:  v.GetFloat64("click.dwellRadius"),
		Calibration: Calibration{
			RightHandOffsetX: v.GetFloat64("calibration.rightHandOffsetX"),
			LeftHandOffsetX:  v.GetFloat64("calibration.leftHandOffsetX"),
			VerticalOffset:   v.GetFloat64("calibration.verticalOffset"),
			VerticalBias:     v.GetFloat64("calibration.verticalBias"),
			ReachThreshold:   v.GetFloat64("calibration.reachThreshold"),
		},
	}

	if cfg.Sensor.FrameRate <= 0 {
		return nil, errors.Errorf("sensor.frameRate must be positive, got %d", cfg.Sensor.FrameRate)
	}
	if cfg.Sensor.BodyCount <= 0 {
		return nil, errors.Errorf("sensor.bodyCount must be positive, got %d", cfg.Sensor.BodyCount)
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
