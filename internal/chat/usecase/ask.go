package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"agentic-task-planner/internal/chat"
	"agentic-task-planner/internal/chat/repository"
	"agentic-task-planner/pkg/ollama"
)

// Ask answers a free-form prompt. The cache key is the exact prompt
// string; the cached value is the verbatim LLM payload, so a hit is
// byte-for-byte identical to the original answer. A payload with no
// usable reply yields a fixed placeholder which is recorded in history
// but never cached.
func (uc *implUseCase) Ask(ctx context.Context, input chat.AskInput) (chat.AskOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return chat.AskOutput{}, chat.ErrEmptyPrompt
	}

	if raw, ok := uc.cache.Get(input.Prompt); ok {
		if reply, ok := extractReply(raw); ok {
			uc.l.Infof(ctx, "%s: cache hit, prompt_length=%d", logPrefixAsk, len(input.Prompt))
			uc.persist(ctx, input, reply)
			return chat.AskOutput{Reply: reply, Cached: true}, nil
		}
		// A cached payload that no longer parses is useless. Drop it
		// and ask again.
		uc.l.Warnf(ctx, "%s: evicting unparseable cached payload", logPrefixAsk)
		uc.cache.Remove(input.Prompt)
	}

	raw, err := uc.llm.Generate(ctx, input.Prompt)
	if err != nil {
		uc.l.Errorf(ctx, "%s: llm.Generate failed: %v", logPrefixAsk, err)
		return chat.AskOutput{}, fmt.Errorf("chat: LLM call failed: %w", err)
	}

	reply, ok := extractReply(raw)
	if !ok {
		uc.l.Warnf(ctx, "%s: LLM payload carries no reply field", logPrefixAsk)
		uc.persist(ctx, input, msgParseFailure)
		return chat.AskOutput{Reply: msgParseFailure}, nil
	}

	uc.cache.Add(input.Prompt, raw)
	uc.persist(ctx, input, reply)

	return chat.AskOutput{Reply: reply}, nil
}

// extractReply pulls the reply text out of a verbatim generate payload.
func extractReply(raw []byte) (string, bool) {
	var payload ollama.GeneratePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", false
	}
	if payload.Response == "" {
		return "", false
	}
	return payload.Response, true
}

// persist records the exchange. History is best-effort: a storage
// failure is logged and the reply still goes out.
func (uc *implUseCase) persist(ctx context.Context, input chat.AskInput, reply string) {
	_, err := uc.repo.CreateResponse(ctx, repository.CreateResponseOptions{
		Prompt:    input.Prompt,
		Response:  reply,
		TaskID:    input.TaskID,
		SubtaskID: input.SubtaskID,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: failed to persist exchange: %v", logPrefixAsk, err)
	}
}
