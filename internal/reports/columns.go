package reports

import "sort"

// Column names used by the statement tables.
const (
	ColHeader            = "Header"
	ColDataDiscriminator = "DataDiscriminator"
	ColAssetCategory     = "Asset Category"
	ColCurrency          = "Currency"
	ColSymbol            = "Symbol"
	ColDescription       = "Description"
	ColDate              = "Date"
	ColDateTime          = "Date/Time"
	ColSettleDate        = "Settle Date"
	ColQuantity          = "Quantity"
	ColAmount            = "Amount"
	ColProceeds          = "Proceeds"
	ColCommFee           = "Comm/Fee"
	ColRealizedPnL       = "Realized P/L"
	ColUnrealizedPnL     = "Unrealized P/L"
	ColValue             = "Value"
	ColCostBasis         = "Cost Basis"
	ColClosePrice        = "Close Price"
	ColMTMTotal          = "Mark-to-Market P/L Total"
	ColMTMPosition       = "Mark-to-Market P/L Position"
	ColMTMTransaction    = "Mark-to-Market P/L Transaction"
	ColCurrentQuantity   = "Current Quantity"
)

func sortedKeys(r Row) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// symbolsOf returns the distinct non-empty symbols of rows in first-seen
// order.
func symbolsOf(rows []Row) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range rows {
		s := r[ColSymbol]
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
