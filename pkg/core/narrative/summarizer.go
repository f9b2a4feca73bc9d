package narrative

import (
	"context"
	"fmt"
	"log/slog"

	"finsight/pkg/core/llm"
	"finsight/pkg/core/ratio"
	"finsight/pkg/core/utils"
)

const analysisPrompt = `Bạn là một chuyên gia phân tích tài chính chuyên nghiệp. Dựa trên các chỉ số tài chính sau, hãy đưa ra một nhận xét khách quan, ngắn gọn (khoảng 3-4 đoạn) về tình hình tài chính của doanh nghiệp. Đánh giá tập trung vào tốc độ tăng trưởng, thay đổi cơ cấu tài sản và khả năng thanh toán hiện hành.

Dữ liệu thô và chỉ số:
%s`

// Summarizer turns an annotated statement into natural-language commentary
// via the configured provider.
type Summarizer struct {
	provider llm.Provider
}

func NewSummarizer(provider llm.Provider) *Summarizer {
	return &Summarizer{provider: provider}
}

// Commentary requests an AI assessment of the analysis. It never returns an
// error: every failure path resolves to a displayable message, with distinct
// templates for provider errors, a missing credential, and everything else.
func (s *Summarizer) Commentary(ctx context.Context, rows []ratio.Row, liq ratio.Liquidity) string {
	prompt := fmt.Sprintf(analysisPrompt, ContextBlock(rows, liq))

	reply, err := s.provider.GenerateContent(ctx, prompt, "")
	if err != nil {
		slog.Warn("narrative generation failed", slog.String("error", err.Error()))
		return errorMessage(err)
	}

	cleaned := utils.SanitizeModelOutput(reply)
	if !utils.IsRenderableMarkdown(cleaned) {
		slog.Warn("narrative reply is not renderable markdown")
		return reply
	}
	return cleaned
}

func errorMessage(err error) string {
	switch llm.ClassifyError(err) {
	case llm.KindCredential:
		return "Lỗi: Không tìm thấy Khóa API 'GEMINI_API_KEY'. Vui lòng kiểm tra cấu hình."
	case llm.KindProvider:
		return fmt.Sprintf("Lỗi gọi Gemini API: Vui lòng kiểm tra Khóa API hoặc giới hạn sử dụng. Chi tiết lỗi: %v", err)
	default:
		return fmt.Sprintf("Đã xảy ra lỗi không xác định: %v", err)
	}
}
