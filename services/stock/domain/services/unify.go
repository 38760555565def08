package services

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UnifyNames merges the names observed on current stock with the
// curated autocompletion names into one deduplicated candidate list.
//
// Stock names are whitespace-trimmed before the merge; deduplication is
// case-sensitive exact match ("Milk" and "milk" both survive). The
// result is sorted with a locale-aware collator for tag. Inputs are
// never mutated.
func UnifyNames(stockNames, curatedNames []string, tag language.Tag) []string {
	seen := make(map[string]struct{}, len(stockNames)+len(curatedNames))
	out := make([]string, 0, len(stockNames)+len(curatedNames))

	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, n := range stockNames {
		add(strings.TrimSpace(n))
	}
	for _, n := range curatedNames {
		add(n)
	}

	collate.New(tag).SortStrings(out)
	return out
}
