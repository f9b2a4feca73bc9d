package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"finsight/pkg/core/config"
	"finsight/pkg/core/llm"
	"finsight/pkg/core/narrative"
	"finsight/pkg/core/ratio"
	"finsight/pkg/core/statement"
)

func main() {
	withAI := flag.Bool("ai", false, "also request the Gemini commentary")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: analyze [-ai] <file.xlsx>")
		os.Exit(2)
	}

	godotenv.Load()

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := statement.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lỗi cấu trúc dữ liệu: %v\n", err)
		os.Exit(1)
	}

	annotated, err := ratio.Annotate(rows)
	if err != nil {
		if errors.Is(err, ratio.ErrMissingTotalAssets) {
			fmt.Fprintln(os.Stderr, "Lỗi cấu trúc dữ liệu: Không tìm thấy chỉ tiêu 'TỔNG CỘNG TÀI SẢN'.")
		} else {
			fmt.Fprintf(os.Stderr, "Lỗi cấu trúc dữ liệu: %v\n", err)
		}
		os.Exit(1)
	}
	liq := ratio.ComputeLiquidity(rows)

	fmt.Println(narrative.MarkdownTable(annotated))
	fmt.Println()

	if liq.Available {
		fmt.Printf("Thanh toán hiện hành (Năm trước): %s lần\n", narrative.FormatRatio(liq.Prior))
		fmt.Printf("Thanh toán hiện hành (Năm sau):   %s lần (Δ %s)\n",
			narrative.FormatRatio(liq.Current), narrative.FormatRatio(liq.Delta))
	} else {
		fmt.Println("Thiếu chỉ tiêu 'TÀI SẢN NGẮN HẠN' hoặc 'NỢ NGẮN HẠN' để tính chỉ số.")
		fmt.Printf("Thanh toán hiện hành: %s\n", narrative.NotAvailable)
	}

	if *withAI {
		modelCfg := config.LoadModel("config/models.yaml")
		provider := &llm.GeminiProvider{Model: modelCfg.Name, Temperature: modelCfg.Temperature}
		summarizer := narrative.NewSummarizer(provider)

		fmt.Println()
		fmt.Println("Kết quả Phân tích từ Gemini AI:")
		fmt.Println(summarizer.Commentary(context.Background(), annotated, liq))
	}
}
