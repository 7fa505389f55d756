package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// LinkProfile describes a named network-condition preset in profiles.yaml.
type LinkProfile struct {
	Throughput int64 `yaml:"throughput"`  // bytes per tick on the outbound link
	Latency    int64 `yaml:"latency"`     // outbound link latency in time units
	AckLatency int64 `yaml:"ack_latency"` // return link latency in time units
}

// ProfilesConfig represents the full profiles.yaml structure.
type ProfilesConfig struct {
	Profiles map[string]LinkProfile `yaml:"profiles"`
}

// GetLinkProfile loads the named profile from the YAML file at path.
// Returns nil when the profile does not exist.
func GetLinkProfile(path string, name string) *LinkProfile {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Fatalf("unable to read profiles config: %v", err)
	}

	var cfg ProfilesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Fatalf("unable to parse profiles config: %v", err)
	}

	if profile, exists := cfg.Profiles[name]; exists {
		logrus.Infof("Using link profile %q", name)
		return &profile
	}
	return nil
}
