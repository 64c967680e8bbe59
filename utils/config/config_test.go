package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"

	"github.com/wan9hao/apollo/utils/config"
)

func TestFillDefaults(t *testing.T) {
	c := config.Config{}.FillDefaults()
	assert.Equal(t, config.Default(), c)

	// 已设置的字段不被默认值覆盖
	c = config.Config{}
	c.Horizon.TimeLength = 6
	c.Weight.OppositeSide = 20
	c = c.FillDefaults()
	assert.Equal(t, 6.0, c.Horizon.TimeLength)
	assert.Equal(t, 20.0, c.Weight.OppositeSide)
	assert.Equal(t, 0.1, c.Horizon.TimeResolution)
}

func TestYamlOverride(t *testing.T) {
	data := []byte(`
horizon:
  trajectory_time_length: 4
weight:
  lat_offset: 3
enable_lateral_filter: true
`)
	var c config.Config
	assert.NoError(t, yaml.Unmarshal(data, &c))
	c = c.FillDefaults()
	assert.Equal(t, 4.0, c.Horizon.TimeLength)
	assert.Equal(t, 3.0, c.Weight.LatOffset)
	assert.True(t, c.EnableLateralFilter)
	assert.False(t, c.WithComponents)
	// 对侧权重应高于同侧，跨线惩罚更重
	assert.Greater(t, c.Weight.OppositeSide, c.Weight.SameSide)
}
