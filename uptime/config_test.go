package uptime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	valid := &Config{
		Validators:        []string{nodeA, nodeB},
		LocationOverrides: map[string]string{nodeB: "Lagos, Nigeria"},
	}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Validators: []string{"F3SZA2ZNdRjTBe3GYyRQFDaCXB3DyaZQQ"}}).Validate())
	assert.Error(t, (&Config{Validators: []string{"NodeID-notbase58!"}}).Validate())
	assert.Error(t, (&Config{Validators: []string{nodeA, nodeA}}).Validate())
	assert.Error(t, (&Config{
		Validators:        []string{nodeA},
		LocationOverrides: map[string]string{nodeB: "Lagos, Nigeria"},
	}).Validate())
	assert.Error(t, (&Config{
		Validators:        []string{nodeA},
		LocationOverrides: map[string]string{nodeA: ""},
	}).Validate())
}
