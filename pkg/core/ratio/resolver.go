package ratio

import (
	"strings"

	"finsight/pkg/core/statement"
)

// Item is a canonical line item the analysis needs to locate in the
// statement. All lookups go through Resolve so the matching policy lives in
// exactly one place.
type Item int

const (
	TotalAssets Item = iota
	CurrentAssets
	CurrentLiabilities
)

func (it Item) String() string {
	switch it {
	case TotalAssets:
		return "TỔNG CỘNG TÀI SẢN"
	case CurrentAssets:
		return "TÀI SẢN NGẮN HẠN"
	case CurrentLiabilities:
		return "NỢ NGẮN HẠN"
	default:
		return "unknown"
	}
}

// aliases maps each canonical item to the label substrings that identify it.
// Matching is case-insensitive; both the Vietnamese statement terms and
// their English equivalents are recognized.
var aliases = map[Item][]string{
	TotalAssets:        {"tổng cộng tài sản", "total assets"},
	CurrentAssets:      {"tài sản ngắn hạn", "current assets"},
	CurrentLiabilities: {"nợ ngắn hạn", "current liabilities"},
}

// Matches reports whether a row label identifies the given item.
func Matches(label string, item Item) bool {
	lowered := strings.ToLower(label)
	for _, a := range aliases[item] {
		if strings.Contains(lowered, a) {
			return true
		}
	}
	return false
}

// Resolve returns the index of the first row whose label contains one of the
// item's aliases. Ambiguity is legal: when several rows match, the first one
// in statement order is authoritative.
func Resolve(rows []statement.RawRow, item Item) (int, bool) {
	for i, r := range rows {
		if Matches(r.Label, item) {
			return i, true
		}
	}
	return -1, false
}
