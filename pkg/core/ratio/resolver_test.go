package ratio

import (
	"testing"

	"finsight/pkg/core/statement"
)

func TestResolve_VietnameseAndEnglishAliases(t *testing.T) {
	rows := []statement.RawRow{
		{Label: "A. TÀI SẢN NGẮN HẠN"},
		{Label: "C. NỢ NGẮN HẠN"},
		{Label: "TỔNG CỘNG TÀI SẢN (270 = 100 + 200)"},
	}

	cases := []struct {
		item Item
		want int
	}{
		{CurrentAssets, 0},
		{CurrentLiabilities, 1},
		{TotalAssets, 2},
	}
	for _, c := range cases {
		got, ok := Resolve(rows, c.item)
		if !ok || got != c.want {
			t.Errorf("Resolve(%v): expected index %d, got %d (ok=%v)", c.item, c.want, got, ok)
		}
	}

	english := []statement.RawRow{
		{Label: "Total Assets"},
		{Label: "Current assets"},
		{Label: "current LIABILITIES"},
	}
	if got, ok := Resolve(english, TotalAssets); !ok || got != 0 {
		t.Errorf("english total assets: got %d (ok=%v)", got, ok)
	}
	if got, ok := Resolve(english, CurrentLiabilities); !ok || got != 2 {
		t.Errorf("mixed-case current liabilities: got %d (ok=%v)", got, ok)
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	rows := []statement.RawRow{
		{Label: "TỔNG CỘNG TÀI SẢN", Prior: 1},
		{Label: "tổng cộng tài sản (điều chỉnh)", Prior: 2},
	}
	got, ok := Resolve(rows, TotalAssets)
	if !ok || got != 0 {
		t.Fatalf("ambiguous match: expected first row, got %d (ok=%v)", got, ok)
	}
}

func TestResolve_Missing(t *testing.T) {
	rows := []statement.RawRow{{Label: "Doanh thu thuần"}}
	if got, ok := Resolve(rows, CurrentLiabilities); ok || got != -1 {
		t.Fatalf("expected no match, got %d (ok=%v)", got, ok)
	}
}
