// Package applog wraps zap for the ranking pipeline: the observability
// hook threaded through query-graph construction, ranking-rule-graph
// building and bucket resolution. Every event gets its own named
// method instead of ad hoc Info/Debug call sites, with no global
// state — a Logger is constructed once per search and passed down by
// pointer.
package applog

import "go.uber.org/zap"

// Logger wraps *zap.Logger with the fixed set of fields every search-time
// log line carries (search id), following the constructor-injected,
// no-global-logger convention used throughout the service this pipeline
// is embedded in.
type Logger struct {
	z *zap.Logger
}

// New wraps an existing *zap.Logger. Passing nil yields a no-op logger
// (zap.NewNop()), which keeps call sites allocation-free in tests that
// don't care about log output.
func New(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

// Nop returns a Logger that discards everything, for tests and for
// ranking-rule-graph implementations that choose not to log at all.
func Nop() *Logger { return New(nil) }

// With returns a Logger scoped to an additional set of structured fields,
// e.g. the search id, without mutating the receiver.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{z: l.z.With(fields...)}
}

// QueryGraphBuilt logs the total node count (tombstones included) and
// the live, non-tombstoned node count of a freshly constructed
// QueryGraph.
func (l *Logger) QueryGraphBuilt(nodeCount, reachableCount int) {
	l.z.Debug("query graph built",
		zap.Int("nodes", nodeCount),
		zap.Int("reachable", reachableCount),
	)
}

// RankingRuleGraphBuilt logs that a ranking-rule graph was (re)built for
// a given rule id at the start of an iteration.
func (l *Logger) RankingRuleGraphBuilt(ruleID string, edgeCount int) {
	l.z.Debug("ranking rule graph built", zap.String("rule", ruleID), zap.Int("edges", edgeCount))
}

// PathsOfCost logs one batch from the K-cheapest-paths engine: the cost
// class and how many complete paths were found at that cost.
func (l *Logger) PathsOfCost(ruleID string, cost int, pathCount int) {
	l.z.Debug("cheapest paths batch",
		zap.String("rule", ruleID),
		zap.Int("cost", cost),
		zap.Int("paths", pathCount),
	)
}

// EmptyPrefixRecorded logs a prefix newly inserted into the empty-paths
// cache, which is the event that drives pruning.
func (l *Logger) EmptyPrefixRecorded(ruleID string, edgeIDs []int, reason string) {
	l.z.Debug("empty prefix recorded",
		zap.String("rule", ruleID),
		zap.Ints("edges", edgeIDs),
		zap.String("reason", reason),
	)
}

// Bucket logs a bucket emitted by a ranking rule's next_bucket.
func (l *Logger) Bucket(ruleID string, cost int, bucketLen int, universeLen int) {
	l.z.Info("bucket emitted",
		zap.String("rule", ruleID),
		zap.Int("cost", cost),
		zap.Int("bucket_len", bucketLen),
		zap.Int("universe_len", universeLen),
	)
}

// RuleExhausted logs a rule reaching the end of its iteration.
func (l *Logger) RuleExhausted(ruleID string) {
	l.z.Debug("rule exhausted", zap.String("rule", ruleID))
}

// FinalResult logs the final ranked id count delivered to the caller.
func (l *Logger) FinalResult(resultCount int, truncated bool) {
	l.z.Info("search complete", zap.Int("results", resultCount), zap.Bool("truncated", truncated))
}

// SearchAborted logs a pipeline abort: a rule failed mid-iteration and
// the pipeline does not recover from per-rule errors, it aborts.
func (l *Logger) SearchAborted(ruleID string, err error) {
	l.z.Error("search aborted", zap.String("rule", ruleID), zap.Error(err))
}
