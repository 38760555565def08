package services

import (
	"strings"

	"github.com/ghuser/shelfwatch/services/stock/domain/models"
)

// ReconcileResult is the outcome of parsing one bulk name import.
type ReconcileResult struct {
	// Upserts holds one entry per unique accepted name, keyed by its
	// normalized identifier, in first-seen order.
	Upserts []models.CommonName
	// Accepted counts unique accepted names, always len(Upserts).
	Accepted int
	// Rejected counts non-contributing lines: blank lines and lines
	// whose first field is empty after trimming.
	Rejected int
}

// ReconcileImport parses raw bulk text into a deduplicated canonical
// name set. Each line is split on tab when the line contains one, else
// on comma; the trimmed first field is the candidate name. Parsing is
// pure — applying the resulting upserts is the caller's separate,
// atomic batch write, which makes reconcile-then-apply idempotent.
func ReconcileImport(raw string) ReconcileResult {
	var res ReconcileResult
	seen := make(map[string]struct{})

	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			res.Rejected++
			continue
		}

		sep := ","
		if strings.Contains(line, "\t") {
			sep = "\t"
		}
		name := strings.TrimSpace(strings.SplitN(line, sep, 2)[0])
		if name == "" {
			res.Rejected++
			continue
		}

		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		cn, err := models.NewCommonName(name)
		if err != nil {
			continue // unreachable: name is non-empty by the check above
		}
		res.Upserts = append(res.Upserts, cn)
		res.Accepted++
	}

	return res
}
