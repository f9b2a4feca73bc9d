package assistant

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"finsight/pkg/core/llm"
)

type fakeChat struct {
	sent  []string
	reply string
	err   error
}

func (c *fakeChat) Send(ctx context.Context, message string) (string, error) {
	c.sent = append(c.sent, message)
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

type fakeProvider struct {
	startErr     error
	instructions []string
	chats        []*fakeChat
}

func (p *fakeProvider) GenerateContent(ctx context.Context, prompt, systemPrompt string) (string, error) {
	return "", fmt.Errorf("not used")
}

func (p *fakeProvider) StartChat(ctx context.Context, systemInstruction string) (llm.Chat, error) {
	if p.startErr != nil {
		return nil, p.startErr
	}
	p.instructions = append(p.instructions, systemInstruction)
	c := &fakeChat{reply: "trả lời"}
	p.chats = append(p.chats, c)
	return c, nil
}

func TestSession_LazyInitWithContextSnapshot(t *testing.T) {
	p := &fakeProvider{}
	s := NewSession(p)

	if s.Active() {
		t.Fatal("session must start Uninitialized")
	}

	reply := s.Ask(context.Background(), "Tình hình thanh khoản?", "CONTEXT A")
	if reply != "trả lời" {
		t.Errorf("unexpected reply: %q", reply)
	}
	if !s.Active() {
		t.Fatal("session must be Active after the first message")
	}
	if len(p.instructions) != 1 {
		t.Fatalf("expected exactly one chat creation, got %d", len(p.instructions))
	}
	if !strings.Contains(p.instructions[0], "CONTEXT A") {
		t.Error("system instruction missing the analysis context snapshot")
	}
	if !strings.Contains(p.instructions[0], "trợ lý AI") {
		t.Error("system instruction missing the base assistant role")
	}
}

func TestSession_ContextStaysStaleAfterNewUpload(t *testing.T) {
	p := &fakeProvider{}
	s := NewSession(p)

	s.Ask(context.Background(), "câu 1", "CONTEXT A")
	// The caller's context changed (new file uploaded), but the existing
	// handle keeps the instruction it was created with.
	s.Ask(context.Background(), "câu 2", "CONTEXT B")

	if len(p.instructions) != 1 {
		t.Fatalf("expected a single chat creation, got %d", len(p.instructions))
	}
	if strings.Contains(p.instructions[0], "CONTEXT B") {
		t.Error("system instruction must not be refreshed mid-session")
	}
	if got := p.chats[0].sent; len(got) != 2 || got[1] != "câu 2" {
		t.Errorf("messages must append to the existing handle, got %v", got)
	}
}

func TestSession_ResetStartsFresh(t *testing.T) {
	p := &fakeProvider{}
	s := NewSession(p)

	s.Ask(context.Background(), "câu 1", "CONTEXT A")
	s.Reset()

	if s.Active() {
		t.Fatal("reset must return the session to Uninitialized")
	}
	if len(s.Transcript()) != 0 {
		t.Fatal("reset must clear the visible transcript")
	}

	s.Ask(context.Background(), "câu 2", "CONTEXT B")
	if len(p.instructions) != 2 {
		t.Fatalf("expected a second chat creation after reset, got %d", len(p.instructions))
	}
	if !strings.Contains(p.instructions[1], "CONTEXT B") {
		t.Error("fresh chat must seed with the context current at that time")
	}
}

func TestSession_TranscriptRecordsBothSides(t *testing.T) {
	p := &fakeProvider{}
	s := NewSession(p)

	s.Ask(context.Background(), "xin chào", "")

	msgs := s.Transcript()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 transcript entries, got %d", len(msgs))
	}
	if msgs[0].Role != "user" || msgs[0].Content != "xin chào" {
		t.Errorf("unexpected user entry: %+v", msgs[0])
	}
	if msgs[1].Role != "assistant" {
		t.Errorf("unexpected assistant entry: %+v", msgs[1])
	}
}

func TestSession_FailuresResolveToDisplayableText(t *testing.T) {
	p := &fakeProvider{startErr: llm.ErrMissingAPIKey}
	s := NewSession(p)

	reply := s.Ask(context.Background(), "câu hỏi", "")
	if !strings.Contains(reply, "GEMINI_API_KEY") {
		t.Errorf("expected credential message, got %q", reply)
	}
	if s.Active() {
		t.Error("failed creation must leave the session Uninitialized")
	}

	// A later attempt with the credential fixed starts cleanly.
	p.startErr = nil
	reply = s.Ask(context.Background(), "thử lại", "")
	if reply != "trả lời" {
		t.Errorf("expected recovery after credential fix, got %q", reply)
	}
}
