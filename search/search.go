// Package search is the top-level entry point: it builds the query
// graph from already-derived terms, assembles the ranking-rule
// pipeline from a searchconfig.Config, runs it, and applies
// limit/offset pagination. Tokenization and typo-derivation generation
// are external collaborators; callers supply terms already split and
// derived.
package search

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vuthanhtung2412/rankgraph/applog"
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
	"github.com/vuthanhtung2412/rankgraph/querygraph"
	"github.com/vuthanhtung2412/rankgraph/queryterm"
	"github.com/vuthanhtung2412/rankgraph/ranking"
	"github.com/vuthanhtung2412/rankgraph/searchconfig"
)

// Result is a paginated page of ranked document ids.
type Result struct {
	Hits  []bitmap.DocumentID
	Limit int
	// Next is the first id of the following page, or nil if this page
	// reached the end of the ranked stream. Run takes no id cursor: the
	// following page is requested by advancing cfg.Offset by Limit.
	Next *bitmap.DocumentID
	From bitmap.DocumentID
	// ID correlates this run's applog lines; callers that log around
	// Run should tag their own lines with it too.
	ID uuid.UUID
}

// Run executes one search: build the query graph over terms (occupying
// numPositions input token slots), assemble cfg's ranking rules, run
// the pipeline against universe, and paginate the output by
// cfg.Limit/cfg.Offset. A nil universe is treated as the empty set, so
// Run then returns no hits: it has no lookup that enumerates the full
// corpus.
func Run(db *dbcache.DatabaseCache, logger *applog.Logger, cfg searchconfig.Config, terms []queryterm.LocatedQueryTerm, numPositions int, universe *bitmap.Bitmap) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	// Every applog line for this run carries the same search id, so a
	// request-scoped log grep correlates one search's lines together.
	searchID := uuid.New()
	if logger != nil {
		logger = logger.With(zap.String("search_id", searchID.String()))
	}

	qg, err := querygraph.Build(terms, numPositions)
	if err != nil {
		return Result{}, err
	}
	if logger != nil {
		live := 0
		for _, n := range qg.Nodes {
			if !n.IsDeleted() {
				live++
			}
		}
		logger.QueryGraphBuilt(qg.NumNodes(), live)
	}

	rules, err := BuildRules(cfg, db, logger)
	if err != nil {
		return Result{}, err
	}
	pipeline := ranking.NewPipeline(rules, logger)

	// A nil universe is treated as empty: enumerating every live
	// document id is a storage-layer concern the core doesn't own, so
	// the caller supplies the universe (per Non-goals).
	u := bitmap.New()
	if universe != nil {
		u = *universe
	}

	// Requesting limit+1 internally detects "more available" without a
	// second round trip.
	fetch := cfg.Offset + cfg.Limit + 1
	ids, err := pipeline.Run(u, ranking.Query{Graph: qg}, fetch)
	if err != nil {
		return Result{}, err
	}

	result := paginate(ids, cfg.Limit, cfg.Offset)
	result.ID = searchID
	return result, nil
}

// paginate slices the ranked id stream into one page: "from" is the
// page's first id, "next" is the (limit+1)'th id if present, dropped
// from Hits.
func paginate(ids []bitmap.DocumentID, limit, offset int) Result {
	if offset >= len(ids) {
		return Result{Limit: limit}
	}
	page := ids[offset:]

	var next *bitmap.DocumentID
	if len(page) > limit {
		id := page[limit]
		next = &id
		page = page[:limit]
	}

	res := Result{Hits: page, Limit: limit}
	if len(page) > 0 {
		res.From = page[0]
	}
	res.Next = next
	return res
}

// BuildRules resolves cfg's ordered ranking_rules list into concrete
// ranking.Rule instances. Unknown names are already rejected by
// searchconfig.Config.Validate, but Run calls this on caller-constructed
// configs too, so the check is repeated here.
func BuildRules(cfg searchconfig.Config, db *dbcache.DatabaseCache, logger *applog.Logger) ([]ranking.Rule, error) {
	rules := make([]ranking.Rule, 0, len(cfg.RankingRules))
	for _, name := range cfg.RankingRules {
		rule, err := newRule(cfg, name, db, logger)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
