package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"finsight/pkg/core/llm"
	"finsight/pkg/core/utils"
)

const baseInstruction = "Bạn là một trợ lý AI thông minh chuyên về phân tích tài chính. Hãy trả lời các câu hỏi của người dùng một cách chính xác, ngắn gọn và dựa trên ngữ cảnh dữ liệu tài chính mà họ đã cung cấp. Nếu không có dữ liệu, hãy hỏi lại."

// NoDataContext seeds the chat when the user has not uploaded a statement.
const NoDataContext = "Không có dữ liệu tài chính được tải lên."

// Message is one visible transcript entry.
type Message struct {
	Role    string    `json:"role"` // "user" or "assistant"
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Session owns the dialogue handle and the visible transcript for one user.
// It has two states: Uninitialized (no handle yet) and Active. The handle is
// created lazily on the first message; its system instruction embeds a
// snapshot of the analysis context at that moment and is NOT refreshed when
// a different file is uploaded later. Reset returns to Uninitialized.
type Session struct {
	provider llm.Provider

	mu       sync.Mutex
	chat     llm.Chat
	messages []Message
}

func NewSession(provider llm.Provider) *Session {
	return &Session{provider: provider}
}

// Ask forwards one user utterance and returns the assistant reply. Messages
// within a session are answered strictly in order. The reply is always a
// displayable string; provider failures are converted, never propagated.
func (s *Session) Ask(ctx context.Context, message string, contextData string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, Message{Role: "user", Content: message, At: time.Now()})
	reply := s.send(ctx, message, contextData)
	s.messages = append(s.messages, Message{Role: "assistant", Content: reply, At: time.Now()})
	return reply
}

func (s *Session) send(ctx context.Context, message string, contextData string) string {
	if s.chat == nil {
		instruction := baseInstruction
		if contextData != "" {
			instruction += "\n\nDữ liệu Phân tích Hiện tại:\n" + contextData + "\n\n"
		}

		chat, err := s.provider.StartChat(ctx, instruction)
		if err != nil {
			slog.Warn("chat session creation failed", slog.String("error", err.Error()))
			return errorMessage(err)
		}
		s.chat = chat
	}

	reply, err := s.chat.Send(ctx, message)
	if err != nil {
		slog.Warn("chat message failed", slog.String("error", err.Error()))
		return errorMessage(err)
	}
	return utils.SanitizeModelOutput(reply)
}

// Reset discards the dialogue handle and the transcript. The next message
// starts a fresh provider-side conversation seeded with whatever analysis
// context is current at that time.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = nil
	s.messages = nil
}

// Active reports whether a dialogue handle currently exists.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat != nil
}

// Transcript returns a copy of the visible message log.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func errorMessage(err error) string {
	switch llm.ClassifyError(err) {
	case llm.KindCredential:
		return "Lỗi: Vui lòng cấu hình Khóa API 'GEMINI_API_KEY' để sử dụng chức năng chat."
	case llm.KindProvider:
		return fmt.Sprintf("Lỗi API: Vui lòng kiểm tra Khóa API. Chi tiết: %v", err)
	default:
		return fmt.Sprintf("Đã xảy ra lỗi không xác định trong phiên chat: %v", err)
	}
}
