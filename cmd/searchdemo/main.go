// Command searchdemo exercises the ranking pipeline end to end against
// an in-memory fixture corpus: load a searchconfig.Config, build query
// terms from a free-text query, run search.Run, and print the paginated
// page of ranked document ids. It is a demo harness, not a server: it
// wires a config loader and a logger the way a real binary would, minus
// the HTTP plumbing this module doesn't own.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"go.uber.org/zap"

	"github.com/vuthanhtung2412/rankgraph/applog"
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/dbcache"
	"github.com/vuthanhtung2412/rankgraph/queryterm"
	"github.com/vuthanhtung2412/rankgraph/search"
	"github.com/vuthanhtung2412/rankgraph/searchconfig"
	"github.com/vuthanhtung2412/rankgraph/storage/memindex"
)

func main() {
	configPath := flag.String("config", "", "path to a searchconfig YAML file; defaults to [proximity, words] with limit 10")
	query := flag.String("query", "quick brown", "whitespace-separated query terms")
	verbose := flag.Bool("verbose", false, "log ranking-rule-graph construction and bucket resolution")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger := applog.Nop()
	if *verbose {
		zl, zerr := zap.NewDevelopment()
		if zerr != nil {
			log.Fatalf("building logger: %v", zerr)
		}
		defer zl.Sync()
		logger = applog.New(zl)
	}

	corpus := demoCorpus()
	idx := memindex.New(corpus)
	db := dbcache.New(idx)

	universe := bitmap.New()
	for _, doc := range corpus {
		universe = universe.Add(doc.ID)
	}

	terms := queryTerms(*query)
	result, err := search.Run(db, logger, cfg, terms, len(terms), &universe)
	if err != nil {
		log.Fatalf("search: %v", err)
	}

	fmt.Printf("query: %q\n", *query)
	fmt.Printf("rules: %v\n", cfg.RankingRules)
	fmt.Printf("hits (limit=%d, from=%d): %v\n", result.Limit, result.From, result.Hits)
	if result.Next != nil {
		fmt.Printf("next: %d\n", *result.Next)
	} else {
		fmt.Println("next: none")
	}
}

func loadConfig(path string) (searchconfig.Config, error) {
	if path == "" {
		return searchconfig.Config{
			RankingRules: []searchconfig.RuleName{searchconfig.RuleProximity, searchconfig.RuleWords},
			Limit:        10,
		}, nil
	}
	return searchconfig.Load(path)
}

// queryTerms splits the free-text query on whitespace into single-word
// LocatedQueryTerms with no typo or prefix derivations. Typo generation
// and tokenization are external collaborators this module doesn't own;
// the demo stands in for that step with the identity derivation.
func queryTerms(query string) []queryterm.LocatedQueryTerm {
	words := strings.Fields(query)
	terms := make([]queryterm.LocatedQueryTerm, 0, len(words))
	for i, w := range words {
		terms = append(terms, queryterm.NewWord(i, queryterm.Derivations{
			Original: w,
			ZeroTypo: []string{w},
		}))
	}
	return terms
}
