package ledger

import "sort"

// =============================================================================
// BALANCE ENGINE
// Aggregates expense shares and direct payments into one net balance per
// group member. Pure computation over an immutable snapshot: no I/O, no
// caching, and identical inputs always yield identical outputs.
// =============================================================================

// CalculateGroupBalances computes the net balance of every member from the
// group's expenses and payments. For each member:
//
//	balance = paid as expense payer + received as payment recipient
//	        - owed as expense participant - sent as payment payer
//
// Records in a currency other than groupCurrency do not enter the computation;
// they are returned as ExcludedRecords so callers can surface the limitation
// instead of silently dropping them. Members with no matching records get a
// zero balance. The result is sorted by display name (user ID as tiebreak).
func CalculateGroupBalances(members []Member, expenses []Expense, payments []Payment, groupCurrency Currency) ([]Balance, []ExcludedRecord) {
	byUser := make(map[int64]Money, len(members))
	for _, m := range members {
		byUser[m.UserID] = 0
	}

	var excluded []ExcludedRecord

	for _, e := range expenses {
		if e.Currency != groupCurrency {
			excluded = append(excluded, ExcludedRecord{Kind: RecordKindExpense, ID: e.ID, Currency: e.Currency})
			continue
		}
		if _, ok := byUser[e.PayerID]; ok {
			byUser[e.PayerID] += e.Amount
		}
		for _, p := range e.Participants {
			if _, ok := byUser[p.UserID]; ok {
				byUser[p.UserID] -= p.ShareAmount
			}
		}
	}

	for _, p := range payments {
		if p.Currency != groupCurrency {
			excluded = append(excluded, ExcludedRecord{Kind: RecordKindPayment, ID: p.ID, Currency: p.Currency})
			continue
		}
		if _, ok := byUser[p.PayerID]; ok {
			byUser[p.PayerID] -= p.Amount
		}
		if _, ok := byUser[p.RecipientID]; ok {
			byUser[p.RecipientID] += p.Amount
		}
	}

	balances := make([]Balance, 0, len(members))
	for _, m := range members {
		balances = append(balances, Balance{
			UserID:   m.UserID,
			UserName: m.DisplayName,
			Amount:   byUser[m.UserID],
		})
	}

	sort.Slice(balances, func(i, j int) bool {
		if balances[i].UserName != balances[j].UserName {
			return balances[i].UserName < balances[j].UserName
		}
		return balances[i].UserID < balances[j].UserID
	})

	return balances, excluded
}

// ValidateExpenseSplit reports whether the expense's participant shares
// reconcile with its amount within one minor unit.
func ValidateExpenseSplit(e Expense) bool {
	var total Money
	for _, p := range e.Participants {
		total += p.ShareAmount
	}
	return (e.Amount - total).Abs() <= Tolerance
}
