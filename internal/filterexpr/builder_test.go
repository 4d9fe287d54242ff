package filterexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildEmptyStateMatchesEverything(t *testing.T) {
	assert.Equal(t, "", Build(State{}))
	assert.Equal(t, "", Build(State{Search: "   ", Client: " "}))
}

func TestBuildStatusClause(t *testing.T) {
	assert.Equal(t, `approved=true`, Build(State{Status: "taip"}))
	assert.Equal(t, `approved=false`, Build(State{Status: "ne"}))

	// No backing field exists for these two yet; they must not leak into
	// the predicate.
	assert.Equal(t, "", Build(State{Status: "rezervuota"}))
	assert.Equal(t, "", Build(State{Status: "atšaukta"}))
}

func TestBuildSearchGroup(t *testing.T) {
	got := Build(State{Search: "Maxima"})
	assert.Equal(t, `(client~"Maxima" || agency~"Maxima" || invoice_id~"Maxima")`, got)
}

func TestBuildSearchKeywordWidensGroup(t *testing.T) {
	got := Build(State{Search: "viadukas"})
	assert.Equal(t, `(client~"viadukas" || agency~"viadukas" || invoice_id~"viadukas" || viaduct=true)`, got)

	// Prefix match is case-insensitive, mid-string is not a match.
	assert.Contains(t, Build(State{Search: "Viaduct campaign"}), "viaduct=true")
	assert.NotContains(t, Build(State{Search: "prie viaduko"}), "viaduct=true")
}

func TestBuildTextAndTriStateClauses(t *testing.T) {
	got := Build(State{Client: "Lidl", Agency: "McCann", MediaReceived: "true", InvoiceSent: "false"})
	assert.Equal(t, `client~"Lidl" && agency~"McCann" && media_received=true && invoice_sent=false`, got)
}

func TestBuildMonthRangeUsesOverlapSemantics(t *testing.T) {
	got := Build(State{Month: "09", Year: "2025"})
	assert.Equal(t, `from<="2025-09-30" && to>="2025-09-01"`, got)

	// February gets its real month end.
	assert.Equal(t, `from<="2024-02-29" && to>="2024-02-01"`, Build(State{Month: "02", Year: "2024"}))

	// Month alone or year alone emits nothing.
	assert.Equal(t, "", Build(State{Month: "09"}))
	assert.Equal(t, "", Build(State{Year: "2025"}))
}

func TestBuildJoinsClausesInOrder(t *testing.T) {
	got := Build(State{Search: "CCC", Status: "taip", Client: "CCC", Month: "09", Year: "2025"})
	want := `(client~"CCC" || agency~"CCC" || invoice_id~"CCC") && approved=true && client~"CCC" && from<="2025-09-30" && to>="2025-09-01"`
	assert.Equal(t, want, got)
}

func TestBuildEscapesQuotes(t *testing.T) {
	got := Build(State{Client: `UAB "Piksel"`})
	assert.Equal(t, `client~"UAB \"Piksel\""`, got)
}
