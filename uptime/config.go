package uptime

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/pkg/errors"
)

type Config struct {
	Validators        []string          `yaml:"validators" json:"validators" env:"VALIDATORS" env-separator:"," env-description:"Node IDs of the tracked validators"`
	LocationOverrides map[string]string `yaml:"locationOverrides" json:"locationOverrides"`
	FlagEmoji         bool              `yaml:"flagEmoji" json:"flagEmoji" env:"FLAG_EMOJI" env-description:"Append the country flag to locations"`
}

// Validate checks that every tracked ID is a well-formed NodeID and that
// overrides only name tracked validators.
func (c *Config) Validate() error {
	if len(c.Validators) == 0 {
		return errors.New("no validators configured")
	}

	seen := make(map[string]struct{}, len(c.Validators))
	for _, id := range c.Validators {
		if _, err := ids.NodeIDFromString(id); err != nil {
			return errors.Wrapf(err, "invalid validator node id %q", id)
		}
		if _, ok := seen[id]; ok {
			return errors.Errorf("validator %s configured twice", id)
		}
		seen[id] = struct{}{}
	}

	for id, location := range c.LocationOverrides {
		if _, ok := seen[id]; !ok {
			return errors.Errorf("location override for untracked validator %s", id)
		}
		if location == "" {
			return errors.Errorf("empty location override for %s", id)
		}
	}
	return nil
}
