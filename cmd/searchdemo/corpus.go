package main

import (
	"github.com/vuthanhtung2412/rankgraph/bitmap"
	"github.com/vuthanhtung2412/rankgraph/storage/memindex"
)

// demoAttribute is the only attribute the demo corpus indexes; a real
// deployment would carry one id per searchable field (title, body, ...).
const demoAttribute bitmap.AttributeID = 0

// demoCorpus is a fixture where "quick brown" is adjacent in D1
// (proximity 1) and separated by one word in D2 (proximity 2), so a
// query for "quick brown" under the proximity rule ranks D1 ahead of
// D2.
func demoCorpus() []memindex.Document {
	return []memindex.Document{
		{ID: 1, Fields: map[bitmap.AttributeID][]string{
			demoAttribute: {"quick", "brown", "fox"},
		}},
		{ID: 2, Fields: map[bitmap.AttributeID][]string{
			demoAttribute: {"quick", "lazy", "brown", "fox"},
		}},
		{ID: 3, Fields: map[bitmap.AttributeID][]string{
			demoAttribute: {"slow", "brown", "turtle"},
		}},
	}
}
