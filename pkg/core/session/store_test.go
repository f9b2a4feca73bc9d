package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"finsight/pkg/core/assistant"
	"finsight/pkg/core/llm"
	"finsight/pkg/core/ratio"
)

type nullProvider struct{}

func (nullProvider) GenerateContent(ctx context.Context, prompt, systemPrompt string) (string, error) {
	return "", fmt.Errorf("not used")
}

func (nullProvider) StartChat(ctx context.Context, systemInstruction string) (llm.Chat, error) {
	return nil, fmt.Errorf("not used")
}

func TestStore_GetOrCreate(t *testing.T) {
	store := NewStore(nullProvider{}, time.Hour)

	st := store.GetOrCreate("")
	if st.ID == "" {
		t.Fatal("new session must get an id")
	}
	if st.Assistant == nil {
		t.Fatal("new session must carry an assistant")
	}

	again := store.GetOrCreate(st.ID)
	if again != st {
		t.Error("existing id must return the same session")
	}

	other := store.GetOrCreate("unknown-id")
	if other == st || other.ID == st.ID {
		t.Error("unknown id must create a distinct session")
	}
}

func TestStore_GetUnknown(t *testing.T) {
	store := NewStore(nullProvider{}, time.Hour)
	if _, ok := store.Get(""); ok {
		t.Error("empty id must not resolve")
	}
	if _, ok := store.Get("missing"); ok {
		t.Error("unknown id must not resolve")
	}
}

func TestState_AnalysisLifecycle(t *testing.T) {
	st := &State{ID: "s", Assistant: assistant.NewSession(nullProvider{})}

	if _, _, ok := st.Analysis(); ok {
		t.Fatal("fresh session has no analysis")
	}
	if st.Context() != assistant.NoDataContext {
		t.Errorf("empty session context must be the no-data notice, got %q", st.Context())
	}

	rows := []ratio.Row{{}}
	st.SetAnalysis(rows, ratio.Liquidity{Available: true}, "BLOCK")

	got, liq, ok := st.Analysis()
	if !ok || len(got) != 1 || !liq.Available {
		t.Fatal("analysis not stored")
	}
	if st.Context() != "BLOCK" {
		t.Errorf("expected stored context block, got %q", st.Context())
	}
}
