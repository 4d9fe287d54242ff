// Package filterexpr implements the textual order-filter predicate that
// travels on the list endpoint's `filter` query parameter. Build produces
// the predicate from structured filter state the way the dashboard does;
// ToSQL parses a predicate back into a parameterized SQL condition.
package filterexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piksel-lt/orderdesk/internal/dateutil"
)

// State is the dashboard's filter panel state plus the free-text search
// box. Tri-state string fields use "" for "not set".
type State struct {
	Search        string
	Status        string // "taip", "ne", "rezervuota", "atšaukta" or ""
	Client        string
	Agency        string
	MediaReceived string // "", "true", "false"
	InvoiceSent   string // "", "true", "false"
	Month         string // "01".."12"
	Year          string // "2025"
}

// searchKeywords maps recognized search-text prefixes to extra predicate
// clauses. Typing a product-category keyword into the search box widens
// the match beyond the text columns. Kept as an explicit table so the rule
// is visible and extensible instead of a buried string comparison.
var searchKeywords = map[string]string{
	"viad": `viaduct=true`,
}

// Build renders the filter predicate for the given state. Clauses are
// joined with && in a fixed order; an empty state yields an empty string,
// which the backend reads as "match everything".
//
// The "rezervuota" and "atšaukta" status values have no backing field on
// the order record (approval is persisted as a plain boolean) and
// intentionally emit no clause. Promoting approval to a four-valued field
// needs a backend schema change and is tracked separately.
func Build(s State) string {
	var clauses []string

	if q := strings.TrimSpace(s.Search); q != "" {
		parts := []string{
			fmt.Sprintf(`client~%s`, quote(q)),
			fmt.Sprintf(`agency~%s`, quote(q)),
			fmt.Sprintf(`invoice_id~%s`, quote(q)),
		}
		for prefix, clause := range searchKeywords {
			if strings.HasPrefix(strings.ToLower(q), prefix) {
				parts = append(parts, clause)
			}
		}
		clauses = append(clauses, "("+strings.Join(parts, " || ")+")")
	}

	switch s.Status {
	case "taip":
		clauses = append(clauses, `approved=true`)
	case "ne":
		clauses = append(clauses, `approved=false`)
	}

	if c := strings.TrimSpace(s.Client); c != "" {
		clauses = append(clauses, fmt.Sprintf(`client~%s`, quote(c)))
	}
	if a := strings.TrimSpace(s.Agency); a != "" {
		clauses = append(clauses, fmt.Sprintf(`agency~%s`, quote(a)))
	}
	if s.MediaReceived != "" {
		clauses = append(clauses, "media_received="+s.MediaReceived)
	}
	if s.InvoiceSent != "" {
		clauses = append(clauses, "invoice_sent="+s.InvoiceSent)
	}

	// Month filter selects every order whose broadcast period intersects
	// the target month, not only orders fully contained in it.
	if s.Month != "" && s.Year != "" {
		if month, err := strconv.Atoi(s.Month); err == nil && month >= 1 && month <= 12 {
			if year, err := strconv.Atoi(s.Year); err == nil {
				first, last := dateutil.MonthBounds(year, month)
				clauses = append(clauses, fmt.Sprintf(`from<=%s && to>=%s`, quote(last), quote(first)))
			}
		}
	}

	return strings.Join(clauses, " && ")
}

func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return `"` + v + `"`
}
