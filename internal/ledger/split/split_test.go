package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitledger/internal/ledger"
)

func shareAmounts(participants []Participant) []ledger.Money {
	amounts := make([]ledger.Money, len(participants))
	for i, p := range participants {
		amounts[i] = p.ShareAmount
	}
	return amounts
}

func sumShares(participants []Participant) ledger.Money {
	var sum ledger.Money
	for _, p := range participants {
		sum += p.ShareAmount
	}
	return sum
}

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name  string
		total ledger.Money
		users []int64
		want  []ledger.Money
	}{
		{"divides evenly", 9000, []int64{1, 2, 3}, []ledger.Money{3000, 3000, 3000}},
		{"last absorbs remainder", 10000, []int64{1, 2, 3}, []ledger.Money{3333, 3333, 3334}},
		{"two way odd cent", 101, []int64{1, 2}, []ledger.Money{51, 50}},
		{"single participant", 7550, []int64{1}, []ledger.Money{7550}},
		{"zero total", 0, []int64{1, 2}, []ledger.Money{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participants, err := Calculate(tt.total, EqualSpec{UserIDs: tt.users})
			require.NoError(t, err)
			assert.Equal(t, tt.want, shareAmounts(participants))
			assert.Equal(t, tt.total, sumShares(participants))
		})
	}
}

func TestEqualSplitNoParticipants(t *testing.T) {
	_, err := Calculate(100, EqualSpec{})
	assert.ErrorIs(t, err, ErrNoParticipants)
}

func TestPercentageSplit(t *testing.T) {
	participants, err := Calculate(7550, PercentageSpec{Shares: []PercentageShare{
		{UserID: 1, Percent: 50},
		{UserID: 2, Percent: 30},
		{UserID: 3, Percent: 20},
	}})
	require.NoError(t, err)

	assert.Equal(t, []ledger.Money{3775, 2265, 1510}, shareAmounts(participants))
	assert.Equal(t, ledger.Money(7550), sumShares(participants))
	assert.Equal(t, 50.0, participants[0].SharePercentage)
}

func TestPercentageSplitRemainder(t *testing.T) {
	// Three times one third rounds to 33.33 each; the last share picks up
	// the leftover cent.
	participants, err := Calculate(10000, PercentageSpec{Shares: []PercentageShare{
		{UserID: 1, Percent: 33.33},
		{UserID: 2, Percent: 33.33},
		{UserID: 3, Percent: 33.34},
	}})
	require.NoError(t, err)
	assert.Equal(t, ledger.Money(10000), sumShares(participants))
}

func TestPercentageSplitValidation(t *testing.T) {
	tests := []struct {
		name    string
		shares  []PercentageShare
		wantErr error
	}{
		{"sum below 100", []PercentageShare{{1, 50}, {2, 30}}, ErrPercentageSum},
		{"sum above 100", []PercentageShare{{1, 60}, {2, 50}}, ErrPercentageSum},
		{"negative percentage", []PercentageShare{{1, -10}, {2, 110}}, ErrPercentageOutOfRange},
		{"over 100 percent", []PercentageShare{{1, 150}}, ErrPercentageOutOfRange},
		{"empty", nil, ErrNoParticipants},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(10000, PercentageSpec{Shares: tt.shares})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExactSplit(t *testing.T) {
	participants, err := Calculate(10000, ExactSpec{Shares: []ExactShare{
		{UserID: 1, Amount: 6000},
		{UserID: 2, Amount: 4000},
	}})
	require.NoError(t, err)

	assert.Equal(t, []ledger.Money{6000, 4000}, shareAmounts(participants))
	assert.Equal(t, 60.0, participants[0].SharePercentage)
	assert.Equal(t, 40.0, participants[1].SharePercentage)
}

func TestExactSplitValidation(t *testing.T) {
	tests := []struct {
		name    string
		total   ledger.Money
		shares  []ExactShare
		wantErr error
	}{
		{"sum too low", 10000, []ExactShare{{1, 6000}, {2, 3000}}, ErrExactSum},
		{"sum too high", 10000, []ExactShare{{1, 6000}, {2, 5000}}, ErrExactSum},
		{"negative share", 10000, []ExactShare{{1, -100}, {2, 10100}}, ErrNegativeAmount},
		{"empty", 10000, nil, ErrNoParticipants},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.total, ExactSpec{Shares: tt.shares})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExactSplitWithinTolerance(t *testing.T) {
	// One minor unit off still reconciles.
	participants, err := Calculate(10000, ExactSpec{Shares: []ExactShare{
		{UserID: 1, Amount: 5000},
		{UserID: 2, Amount: 4999},
	}})
	require.NoError(t, err)
	assert.Len(t, participants, 2)
}

func TestSharesSplit(t *testing.T) {
	participants, err := Calculate(10000, SharesSpec{Shares: []CountShare{
		{UserID: 1, Count: 2},
		{UserID: 2, Count: 1},
		{UserID: 3, Count: 1},
	}})
	require.NoError(t, err)

	assert.Equal(t, []ledger.Money{5000, 2500, 2500}, shareAmounts(participants))
	assert.Equal(t, 2, participants[0].ShareCount)
	assert.Equal(t, ledger.Money(10000), sumShares(participants))
}

func TestSharesSplitRemainder(t *testing.T) {
	participants, err := Calculate(100, SharesSpec{Shares: []CountShare{
		{UserID: 1, Count: 1},
		{UserID: 2, Count: 1},
		{UserID: 3, Count: 1},
	}})
	require.NoError(t, err)
	assert.Equal(t, []ledger.Money{33, 33, 34}, shareAmounts(participants))
}

func TestSharesSplitValidation(t *testing.T) {
	_, err := Calculate(10000, SharesSpec{Shares: []CountShare{{UserID: 1, Count: 0}}})
	assert.ErrorIs(t, err, ErrInvalidShareCount)

	_, err = Calculate(10000, SharesSpec{Shares: []CountShare{{UserID: 1, Count: -2}}})
	assert.ErrorIs(t, err, ErrInvalidShareCount)

	_, err = Calculate(10000, SharesSpec{})
	assert.ErrorIs(t, err, ErrNoParticipants)
}

func TestCalculateNegativeTotal(t *testing.T) {
	_, err := Calculate(-100, EqualSpec{UserIDs: []int64{1}})
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestSplitSumInvariant(t *testing.T) {
	// Whatever the method, materialized shares must sum to the total exactly.
	totals := []ledger.Money{1, 99, 100, 101, 7550, 10000, 99999, 123457}

	for _, total := range totals {
		specs := []Spec{
			EqualSpec{UserIDs: []int64{1, 2, 3}},
			EqualSpec{UserIDs: []int64{1, 2, 3, 4, 5, 6, 7}},
			PercentageSpec{Shares: []PercentageShare{{1, 12.5}, {2, 37.5}, {3, 50}}},
			SharesSpec{Shares: []CountShare{{1, 3}, {2, 5}, {3, 7}}},
		}
		for _, spec := range specs {
			participants, err := Calculate(total, spec)
			require.NoError(t, err)
			assert.Equal(t, total, sumShares(participants), "method %s, total %d", spec.Method(), total)
		}
	}
}

func TestParseSpec(t *testing.T) {
	pct := func(v float64) *float64 { return &v }
	amt := func(v ledger.Money) *ledger.Money { return &v }
	cnt := func(v int) *int { return &v }

	t.Run("equal", func(t *testing.T) {
		spec, err := ParseSpec(MethodEqual, []Input{{UserID: 1}, {UserID: 2}})
		require.NoError(t, err)
		assert.Equal(t, MethodEqual, spec.Method())
	})

	t.Run("percentage", func(t *testing.T) {
		spec, err := ParseSpec(MethodPercentage, []Input{
			{UserID: 1, Percentage: pct(60)},
			{UserID: 2, Percentage: pct(40)},
		})
		require.NoError(t, err)
		assert.Equal(t, MethodPercentage, spec.Method())
	})

	t.Run("percentage missing field", func(t *testing.T) {
		_, err := ParseSpec(MethodPercentage, []Input{{UserID: 1}})
		assert.ErrorIs(t, err, ErrMissingPercentage)
	})

	t.Run("exact missing field", func(t *testing.T) {
		_, err := ParseSpec(MethodExact, []Input{{UserID: 1, Percentage: pct(50)}})
		assert.ErrorIs(t, err, ErrMissingExactAmount)
	})

	t.Run("exact", func(t *testing.T) {
		spec, err := ParseSpec(MethodExact, []Input{{UserID: 1, Amount: amt(100)}})
		require.NoError(t, err)
		assert.Equal(t, MethodExact, spec.Method())
	})

	t.Run("shares missing field", func(t *testing.T) {
		_, err := ParseSpec(MethodShares, []Input{{UserID: 1}})
		assert.ErrorIs(t, err, ErrMissingShareCount)
	})

	t.Run("shares", func(t *testing.T) {
		spec, err := ParseSpec(MethodShares, []Input{{UserID: 1, Shares: cnt(2)}})
		require.NoError(t, err)
		assert.Equal(t, MethodShares, spec.Method())
	})

	t.Run("duplicate participant", func(t *testing.T) {
		_, err := ParseSpec(MethodEqual, []Input{{UserID: 1}, {UserID: 1}})
		assert.ErrorIs(t, err, ErrDuplicateParticipant)
	})

	t.Run("no participants", func(t *testing.T) {
		_, err := ParseSpec(MethodEqual, nil)
		assert.ErrorIs(t, err, ErrNoParticipants)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := ParseSpec("RANDOM", []Input{{UserID: 1}})
		assert.Error(t, err)
	})
}
