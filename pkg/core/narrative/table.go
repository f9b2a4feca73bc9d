package narrative

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"finsight/pkg/core/ratio"
)

// NotAvailable is the placeholder shown wherever a metric could not be
// computed.
const NotAvailable = "N/A"

// MarkdownTable renders the annotated statement as a Markdown table with the
// same column headings and number formats the results view uses: raw values
// with thousands separators, percentages with two decimals.
func MarkdownTable(rows []ratio.Row) string {
	var b strings.Builder
	b.WriteString("| Chỉ tiêu | Năm trước | Năm sau | Tốc độ tăng trưởng (%) | Tỷ trọng Năm trước (%) | Tỷ trọng Năm sau (%) |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			r.Label,
			FormatValue(r.Prior),
			FormatValue(r.Current),
			FormatPercent(r.GrowthPct),
			FormatPercent(r.PriorSharePct),
			FormatPercent(r.CurrentSharePct),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

// ContextBlock serializes everything the AI surfaces receive: the rendered
// table plus three scalar context lines (current-assets growth and the
// liquidity ratio for both years).
func ContextBlock(rows []ratio.Row, liq ratio.Liquidity) string {
	growth := NotAvailable
	for _, r := range rows {
		if ratio.Matches(r.Label, ratio.CurrentAssets) {
			growth = FormatPercent(r.GrowthPct)
			break
		}
	}

	liqPrior, liqCurrent := NotAvailable, NotAvailable
	if liq.Available {
		liqPrior = FormatRatio(liq.Prior)
		liqCurrent = FormatRatio(liq.Current)
	}

	var b strings.Builder
	b.WriteString("Toàn bộ Bảng phân tích (dữ liệu thô):\n")
	b.WriteString(MarkdownTable(rows))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Tăng trưởng Tài sản ngắn hạn (%%): %s\n", growth)
	fmt.Fprintf(&b, "Thanh toán hiện hành (N-1): %s\n", liqPrior)
	fmt.Fprintf(&b, "Thanh toán hiện hành (N): %s", liqCurrent)
	return b.String()
}

// FormatValue renders a raw statement value: no decimals, thousands
// separators.
func FormatValue(v float64) string {
	return humanize.CommafWithDigits(v, 0)
}

// FormatPercent renders a percentage column with two decimals.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatRatio renders a liquidity ratio with two decimals; non-finite values
// (a zero liabilities row divides to Inf) degrade to the N/A placeholder.
func FormatRatio(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f", v)
}
