package app

import (
	"strconv"
	"strings"
	"time"

	"github.com/vifm-go/vifm/internal/pane"
)

// parseSortCSV parses the rc file's "default-sort" value (a comma-separated
// list of signed pane.SortCriterion wire codes, matching the info file's
// own sort-key encoding so both persistence paths agree on one format) into
// a sort-key chain.
func parseSortCSV(s string) ([]pane.SortCriterion, error) {
	if strings.TrimSpace(s) == "" {
		return []pane.SortCriterion{pane.SortByName}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]pane.SortCriterion, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, pane.SortCriterion(n))
	}
	return out, nil
}

// engineTimeout converts the rc file's millisecond timeoutlen into a
// time.Duration, falling back to the Key Engine's own default when unset.
func engineTimeout(ms int) time.Duration {
	if ms <= 0 {
		return time.Second
	}
	return time.Duration(ms) * time.Millisecond
}
