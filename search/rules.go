package search

import (
	"github.com/vuthanhtung2412/rankgraph/apperror"
	"github.com/vuthanhtung2412/rankgraph/applog"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
	"github.com/vuthanhtung2412/rankgraph/ranking"
	"github.com/vuthanhtung2412/rankgraph/rankgraph/attribute"
	"github.com/vuthanhtung2412/rankgraph/rankgraph/exactness"
	"github.com/vuthanhtung2412/rankgraph/rankgraph/proximity"
	"github.com/vuthanhtung2412/rankgraph/rankgraph/typo"
	"github.com/vuthanhtung2412/rankgraph/rankgraph/words"
	"github.com/vuthanhtung2412/rankgraph/searchconfig"
)

// newRule builds the GraphBasedRule wrapping the trait named name, one
// of the recognized ranking_rules values.
func newRule(cfg searchconfig.Config, name searchconfig.RuleName, db *dbcache.DatabaseCache, logger *applog.Logger) (ranking.Rule, error) {
	switch name {
	case searchconfig.RuleWords:
		return ranking.NewGraphBasedRule[words.EdgeData](string(name), words.Trait{}, db, logger), nil
	case searchconfig.RuleTypo:
		return ranking.NewGraphBasedRule[typo.EdgeData](string(name), typo.Trait{}, db, logger), nil
	case searchconfig.RuleProximity:
		return ranking.NewGraphBasedRule[proximity.EdgeData](string(name), proximity.Trait{}, db, logger), nil
	case searchconfig.RuleAttribute:
		trait := attribute.Trait{Order: cfg.AttributeOrder}
		return ranking.NewGraphBasedRule[attribute.EdgeData](string(name), trait, db, logger), nil
	case searchconfig.RuleExactness:
		return ranking.NewGraphBasedRule[exactness.EdgeData](string(name), exactness.Trait{}, db, logger), nil
	default:
		return nil, apperror.InvalidQueryf("ranking_rules", "unrecognized ranking rule %q", name)
	}
}
