package ledger

import "sort"

// =============================================================================
// SETTLEMENT PLANNER
// Reduces a list of net balances to a short list of payer→recipient
// transactions that zero everyone out. Greedy largest-creditor /
// largest-debtor matching: at most n-1 transactions for n non-zero balances.
// Not guaranteed globally transaction-optimal, but always terminates and
// always settles the full amount.
// =============================================================================

// GenerateSettlementPlan turns net balances into suggested payments.
// Members within one minor unit of zero are already settled and ignored.
// An empty or fully settled input yields an empty plan. The result is sorted
// by amount descending (payer then recipient ID as tiebreak).
func GenerateSettlementPlan(balances []Balance) []SettlementTransaction {
	var creditors, debtors []Balance
	for _, b := range balances {
		switch {
		case b.Amount > Tolerance:
			creditors = append(creditors, b)
		case b.Amount < -Tolerance:
			debtors = append(debtors, b)
		}
	}

	transactions := []SettlementTransaction{}

	for len(creditors) > 0 && len(debtors) > 0 {
		ci := largestCreditor(creditors)
		di := largestDebtor(debtors)

		amount := creditors[ci].Amount
		if owed := debtors[di].Amount.Abs(); owed < amount {
			amount = owed
		}

		transactions = append(transactions, SettlementTransaction{
			PayerID:       debtors[di].UserID,
			PayerName:     debtors[di].UserName,
			RecipientID:   creditors[ci].UserID,
			RecipientName: creditors[ci].UserName,
			Amount:        amount,
		})

		creditors[ci].Amount -= amount
		debtors[di].Amount += amount

		if creditors[ci].Amount.Abs() <= Tolerance {
			creditors = append(creditors[:ci], creditors[ci+1:]...)
		}
		if debtors[di].Amount.Abs() <= Tolerance {
			debtors = append(debtors[:di], debtors[di+1:]...)
		}
	}

	sort.Slice(transactions, func(i, j int) bool {
		if transactions[i].Amount != transactions[j].Amount {
			return transactions[i].Amount > transactions[j].Amount
		}
		if transactions[i].PayerID != transactions[j].PayerID {
			return transactions[i].PayerID < transactions[j].PayerID
		}
		return transactions[i].RecipientID < transactions[j].RecipientID
	})

	return transactions
}

// largestCreditor returns the index of the creditor with the largest balance.
// Equal balances resolve to the smallest user ID so plans are deterministic.
func largestCreditor(creditors []Balance) int {
	best := 0
	for i := 1; i < len(creditors); i++ {
		if creditors[i].Amount > creditors[best].Amount ||
			(creditors[i].Amount == creditors[best].Amount && creditors[i].UserID < creditors[best].UserID) {
			best = i
		}
	}
	return best
}

// largestDebtor returns the index of the debtor owing the most, with the same
// smallest-user-ID tiebreak.
func largestDebtor(debtors []Balance) int {
	best := 0
	for i := 1; i < len(debtors); i++ {
		if debtors[i].Amount < debtors[best].Amount ||
			(debtors[i].Amount == debtors[best].Amount && debtors[i].UserID < debtors[best].UserID) {
			best = i
		}
	}
	return best
}
