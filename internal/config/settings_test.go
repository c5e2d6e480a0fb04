package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		want   error
	}{
		{"defaults", func(*Settings) {}, nil},
		{"smoothing zero", func(s *Settings) { s.Smoothing = 0 }, nil},
		{"smoothing at max", func(s *Settings) { s.Smoothing = MaxSmoothing }, nil},
		{"smoothing above max", func(s *Settings) { s.Smoothing = 0.96 }, ErrInvalidSmoothing},
		{"smoothing negative", func(s *Settings) { s.Smoothing = -0.1 }, ErrInvalidSmoothing},
		{"sensitivity zero", func(s *Settings) { s.Sensitivity = 0 }, ErrInvalidSensitivity},
		{"dwell time zero", func(s *Settings) { s.DwellTime = 0 }, ErrInvalidDwellTime},
		{"dwell time negative", func(s *Settings) { s.DwellTime = -time.Second }, ErrInvalidDwellTime},
		{"dwell radius zero", func(s *Settings) { s.DwellRadius = 0 }, ErrInvalidDwellRadius},
		{"negative reach", func(s *Settings) { s.Calibration.ReachThreshold = -0.1 }, ErrInvalidCalibration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSettings_ClickModesAreExclusive(t *testing.T) {
	s := DefaultSettings()
	for _, click := range []bool{false, true} {
		for _, grip := range []bool{false, true} {
			s.ClickEnabled, s.GripMode = click, grip
			assert.False(t, s.GripActive() && s.DwellActive())
			assert.Equal(t, click, s.GripActive() || s.DwellActive())
		}
	}
}
