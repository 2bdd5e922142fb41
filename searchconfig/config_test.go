package searchconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuthanhtung2412/rankgraph/apperror"
	"github.com/vuthanhtung2412/rankgraph/searchconfig"
)

func TestParse_ValidYAMLRoundTrips(t *testing.T) {
	cfg, err := searchconfig.Parse([]byte(`
ranking_rules: [words, typo, proximity]
limit: 20
offset: 0
`))
	require.NoError(t, err)
	assert.Equal(t, []searchconfig.RuleName{searchconfig.RuleWords, searchconfig.RuleTypo, searchconfig.RuleProximity}, cfg.RankingRules)
	assert.Equal(t, 20, cfg.Limit)
}

func TestParse_RejectsUnknownRuleName(t *testing.T) {
	_, err := searchconfig.Parse([]byte(`
ranking_rules: [words, made_up_rule]
limit: 10
`))
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.InvalidQuery))
}

func TestParse_RejectsNegativeLimit(t *testing.T) {
	_, err := searchconfig.Parse([]byte(`
ranking_rules: [words]
limit: -1
`))
	require.Error(t, err)
}

func TestParse_RejectsEmptyRankingRules(t *testing.T) {
	_, err := searchconfig.Parse([]byte(`
ranking_rules: []
limit: 10
`))
	require.Error(t, err)
}

func TestValidate_RejectsDuplicateRuleName(t *testing.T) {
	cfg := searchconfig.Config{RankingRules: []searchconfig.RuleName{searchconfig.RuleWords, searchconfig.RuleWords}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.InvalidQuery))
}
