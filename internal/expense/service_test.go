package expense

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitledger/internal/ledger"
	"github.com/fkhayef/splitledger/internal/ledger/split"
)

// PreviewSplit touches neither the repository nor the group source, so a
// zero-value service is enough.
func previewService() *Service {
	return &Service{}
}

func TestPreviewSplitEqual(t *testing.T) {
	preview, err := previewService().PreviewSplit(context.Background(), &PreviewSplitRequest{
		Amount:       "100.00",
		CurrencyCode: "USD",
		SplitMethod:  "EQUAL",
		Participants: []*ParticipantRequest{
			{UserID: 1},
			{UserID: 2},
			{UserID: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "100.00", preview.Amount)
	require.Len(t, preview.Participants, 3)
	assert.Equal(t, "33.33", preview.Participants[0].ShareAmount)
	assert.Equal(t, "33.33", preview.Participants[1].ShareAmount)
	assert.Equal(t, "33.34", preview.Participants[2].ShareAmount)
}

func TestPreviewSplitPercentage(t *testing.T) {
	pct := func(v float64) *float64 { return &v }

	preview, err := previewService().PreviewSplit(context.Background(), &PreviewSplitRequest{
		Amount:       "75.50",
		CurrencyCode: "USD",
		SplitMethod:  "PERCENTAGE",
		Participants: []*ParticipantRequest{
			{UserID: 1, Percentage: pct(50)},
			{UserID: 2, Percentage: pct(30)},
			{UserID: 3, Percentage: pct(20)},
		},
	})
	require.NoError(t, err)

	require.Len(t, preview.Participants, 3)
	assert.Equal(t, "37.75", preview.Participants[0].ShareAmount)
	assert.Equal(t, "22.65", preview.Participants[1].ShareAmount)
	assert.Equal(t, "15.10", preview.Participants[2].ShareAmount)
}

func TestPreviewSplitExactMismatch(t *testing.T) {
	amt := func(v string) *string { return &v }

	_, err := previewService().PreviewSplit(context.Background(), &PreviewSplitRequest{
		Amount:       "100.00",
		CurrencyCode: "USD",
		SplitMethod:  "EXACT",
		Participants: []*ParticipantRequest{
			{UserID: 1, Amount: amt("60.00")},
			{UserID: 2, Amount: amt("30.00")},
		},
	})
	assert.ErrorIs(t, err, split.ErrExactSum)
}

func TestPreviewSplitInvalidAmount(t *testing.T) {
	_, err := previewService().PreviewSplit(context.Background(), &PreviewSplitRequest{
		Amount:       "not-a-number",
		CurrencyCode: "USD",
		SplitMethod:  "EQUAL",
		Participants: []*ParticipantRequest{{UserID: 1}},
	})
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
}

func TestPreviewSplitZeroDecimalCurrency(t *testing.T) {
	preview, err := previewService().PreviewSplit(context.Background(), &PreviewSplitRequest{
		Amount:       "1000",
		CurrencyCode: "JPY",
		SplitMethod:  "EQUAL",
		Participants: []*ParticipantRequest{
			{UserID: 1},
			{UserID: 2},
			{UserID: 3},
		},
	})
	require.NoError(t, err)

	require.Len(t, preview.Participants, 3)
	assert.Equal(t, "333", preview.Participants[0].ShareAmount)
	assert.Equal(t, "334", preview.Participants[2].ShareAmount)
}
