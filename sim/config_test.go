package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero hours per day", func(c *Config) { c.HoursPerDay = 0 }},
		{"negative days", func(c *Config) { c.Days = -1 }},
		{"zero body makers", func(c *Config) { c.Headcount.BodyMakers = 0 }},
		{"negative neck makers", func(c *Config) { c.Headcount.NeckMakers = -2 }},
		{"zero painters", func(c *Config) { c.Headcount.Painters = 0 }},
		{"zero assemblers", func(c *Config) { c.Headcount.Assemblers = 0 }},
		{"zero threshold", func(c *Config) { c.DispatchThreshold = 0 }},
		{"threshold above finished capacity", func(c *Config) { c.DispatchThreshold = c.Buffers.FinishedGoods + 1 }},
		{"zero buffer capacity", func(c *Config) { c.Buffers.BodyPrePaint = 0 }},
		{"absence probability of one", func(c *Config) { c.AbsenceProbability = 1 }},
		{"negative absence probability", func(c *Config) { c.AbsenceProbability = -0.1 }},
		{"overtime multiplier below one", func(c *Config) { c.OvertimeMultiplier = 0.5 }},
		{"zero overtime threshold", func(c *Config) { c.OvertimeThresholdHours = 0 }},
		{"zero nominal duration", func(c *Config) { c.Stages.Paint.NominalHours = 0 }},
		{"spread of one samples zero hours", func(c *Config) { c.Stages.Body.Spread = 1 }},
		{"pass rate above one", func(c *Config) { c.Stages.Assembly.PassRate = 1.1 }},
		{"zero pass rate", func(c *Config) { c.Stages.Neck.PassRate = 0 }},
		{"initial stock above capacity", func(c *Config) { c.Materials.Wood.Initial = c.Materials.Wood.Capacity + 1 }},
		{"zero material capacity", func(c *Config) { c.Materials.Electronics.Capacity = 0 }},
		{"zero lead time", func(c *Config) { c.Materials.Wood.LeadTimeHours = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
