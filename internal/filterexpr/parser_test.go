package filterexpr

import (
	"testing"

	"github.com/piksel-lt/orderdesk/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSQLEmptyFilter(t *testing.T) {
	cond, args, err := ToSQL("", 0)
	require.NoError(t, err)
	assert.Empty(t, cond)
	assert.Empty(t, args)
}

func TestToSQLEquality(t *testing.T) {
	cond, args, err := ToSQL(`approved=true`, 0)
	require.NoError(t, err)
	assert.Equal(t, "approved = $1", cond)
	assert.Equal(t, []any{true}, args)
}

func TestToSQLSubstringBecomesILike(t *testing.T) {
	cond, args, err := ToSQL(`client~"Maxima"`, 0)
	require.NoError(t, err)
	assert.Equal(t, "client ILIKE $1", cond)
	assert.Equal(t, []any{"%Maxima%"}, args)
}

func TestToSQLEscapesLikeMetacharacters(t *testing.T) {
	_, args, err := ToSQL(`client~"50%_off"`, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{`%50\%\_off%`}, args)
}

func TestToSQLFullDashboardPredicate(t *testing.T) {
	filter := `(client~"CCC" || agency~"CCC" || invoice_id~"CCC") && approved=true && from<="2025-09-30" && to>="2025-09-01"`
	cond, args, err := ToSQL(filter, 0)
	require.NoError(t, err)
	assert.Equal(t,
		"((client ILIKE $1 OR agency ILIKE $2 OR invoice_id ILIKE $3) AND approved = $4 AND from_date <= $5 AND to_date >= $6)",
		cond)
	assert.Equal(t, []any{"%CCC%", "%CCC%", "%CCC%", true, "2025-09-30", "2025-09-01"}, args)
}

func TestToSQLRespectsArgOffset(t *testing.T) {
	cond, args, err := ToSQL(`approved=false && media_received=true`, 2)
	require.NoError(t, err)
	assert.Equal(t, "(approved = $3 AND media_received = $4)", cond)
	assert.Equal(t, []any{false, true}, args)
}

func TestToSQLNumbersAndInequality(t *testing.T) {
	cond, args, err := ToSQL(`final_price>=100.5 && final_price!=0`, 0)
	require.NoError(t, err)
	assert.Equal(t, "(final_price >= $1 AND final_price <> $2)", cond)
	assert.Equal(t, []any{100.5, 0.0}, args)
}

func TestToSQLFieldRenames(t *testing.T) {
	cond, _, err := ToSQL(`from>="2025-01-01"`, 0)
	require.NoError(t, err)
	assert.Equal(t, "from_date >= $1", cond)
}

func TestToSQLEscapedQuotesInValue(t *testing.T) {
	_, args, err := ToSQL(`client~"UAB \"Piksel\""`, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{`%UAB "Piksel"%`}, args)
}

func TestToSQLRejectsBadInput(t *testing.T) {
	bad := []string{
		`password=true`,                // unknown field
		`client~Maxima`,                // unquoted substring value
		`client~"unterminated`,         // unterminated string
		`approved=`,                    // missing value
		`(approved=true`,               // missing close paren
		`approved=true && `,            // dangling operator
		`client="a" extra`,             // trailing garbage
		`approved=true; DROP TABLE x;`, // injection attempt
	}
	for _, filter := range bad {
		_, _, err := ToSQL(filter, 0)
		require.Error(t, err, "filter %q", filter)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "filter %q", filter)
	}
}

func TestBuildOutputAlwaysParses(t *testing.T) {
	states := []State{
		{},
		{Search: "Maxima"},
		{Search: "viad", Status: "taip"},
		{Client: `UAB "Piksel"`, Agency: "OMG", MediaReceived: "false"},
		{Status: "ne", Month: "02", Year: "2024", InvoiceSent: "true"},
	}
	for _, s := range states {
		filter := Build(s)
		_, _, err := ToSQL(filter, 0)
		assert.NoError(t, err, "filter %q", filter)
	}
}
