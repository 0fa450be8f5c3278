package config

import (
	"fmt"

	"github.com/de-tools/tag-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

// AuditSettings holds the tunable parts of an audit run. RequiredTags keeps
// its configured order; the order drives missing-tag reporting.
type AuditSettings struct {
	RequiredTags []string `mapstructure:"required_tags"`
}

func DefaultAuditSettings() AuditSettings {
	return AuditSettings{RequiredTags: domain.DefaultRequiredTags()}
}

// LoadAuditSettings reads settings from the given file, falling back to
// defaults when path is empty or a key is absent.
func LoadAuditSettings(path string) (*AuditSettings, error) {
	settings := DefaultAuditSettings()
	if path == "" {
		return &settings, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse audit settings: %w", err)
	}
	settings.RequiredTags = dedupe(settings.RequiredTags)
	if len(settings.RequiredTags) == 0 {
		settings.RequiredTags = domain.DefaultRequiredTags()
	}
	return &settings, nil
}

// dedupe keeps the first occurrence of each tag; duplicates would skew the
// per-resource percentage denominator.
func dedupe(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
