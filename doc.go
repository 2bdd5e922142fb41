// Package rankgraph is the core of a graph-based full-text search
// ranking pipeline.
//
// A query is first turned into a QueryGraph (package querygraph): one
// node per positioned query term (a word or a fused phrase, carrying
// its derivations), laid out over the input token stream.
// Each ranking criterion (proximity, typo, words, attribute, exactness)
// builds its own cost-annotated ranking-rule graph over that same query
// graph (package rankgraph and its proximity/typo/words/attribute/
// exactness subpackages), and the K-cheapest-paths engine (package
// kpaths) enumerates Start->End paths through it in ascending cost
// order, caching resolved and empty edge sets along the way.
//
// Those pieces compose into a pull-based ranking rule (package ranking):
// a GraphBasedRule pulls buckets of document ids in increasing cost
// order and a Pipeline nests rules hierarchically, letting the next
// rule re-rank each bucket the previous one yields.
//
// Everything below ranking is storage-agnostic: dbcache.Index is the
// sole boundary to an inverted index, satisfied here by an in-memory
// fixture (storage/memindex) and a DynamoDB-backed implementation
// (storage/dynamodb). search ties the whole stack together behind one
// Run call, configured by searchconfig and logged through applog.
package rankgraph
