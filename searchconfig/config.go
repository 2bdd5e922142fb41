// Package searchconfig implements the externally-facing search
// configuration: an ordered ranking-rules list, pagination bounds, and
// an optional universe pre-filter, validated the same struct-tag way
// the rest of the service validates its config sections.
package searchconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vuthanhtung2412/rankgraph/apperror"
	"github.com/vuthanhtung2412/rankgraph/bitmap"
)

// RuleName is a recognized ranking_rules entry.
type RuleName string

const (
	RuleWords      RuleName = "words"
	RuleTypo       RuleName = "typo"
	RuleProximity  RuleName = "proximity"
	RuleAttribute  RuleName = "attribute"
	RuleExactness  RuleName = "exactness"
)

// Config is a single search request's configuration.
type Config struct {
	// RankingRules is the ordered list of rule identifiers the pipeline
	// composes, outermost first.
	RankingRules []RuleName `yaml:"ranking_rules" validate:"required,min=1,dive,oneof=words typo proximity attribute exactness"`

	// Limit bounds the number of results returned; the outer service
	// requests Limit+1 internally to detect "more available".
	Limit int `yaml:"limit" validate:"min=0"`

	// Offset skips this many leading results of the ranked stream.
	Offset int `yaml:"offset" validate:"min=0"`

	// AttributeOrder ranks attribute ids from most to least important,
	// most-important first; it feeds the "attribute" ranking rule
	// (position in this list is that rule's edge cost). Ignored when
	// "attribute" isn't present in RankingRules.
	AttributeOrder []bitmap.AttributeID `yaml:"attribute_order"`
}

// Validate runs struct-tag validation ("limit >= 0" and the recognized
// ranking-rule-name set) plus the duplicate-rule check that validator's
// tag language can't express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			var msgs []string
			for _, e := range verrs {
				msgs = append(msgs, formatFieldError(e))
			}
			return apperror.InvalidQueryf("config", "%s", strings.Join(msgs, "; "))
		}
		return apperror.InvalidQueryf("config", "%s", err.Error())
	}

	seen := make(map[RuleName]struct{}, len(c.RankingRules))
	for _, r := range c.RankingRules {
		if _, dup := seen[r]; dup {
			return apperror.InvalidQueryf("ranking_rules", "rule %q listed more than once", r)
		}
		seen[r] = struct{}{}
	}
	return nil
}

func formatFieldError(e validator.FieldError) string {
	return fmt.Sprintf("%s: failed %q", e.Namespace(), e.Tag())
}

// Request is one full search invocation: a Config plus the free-text
// query and an optional pre-filter universe.
type Request struct {
	Config   Config
	Query    string
	Universe *bitmap.Bitmap // nil means "no pre-filter, full corpus"
}

// Load reads and validates a Config from a YAML file at path, the
// `ranking_rules`/`limit`/`offset` section of the service's settings.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, apperror.InvalidQueryf("config", "reading %s: %v", path, err)
	}
	return Parse(data)
}

// Parse validates and decodes YAML bytes into a Config.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, apperror.InvalidQueryf("config", "parsing yaml: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
