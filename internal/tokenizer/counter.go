package tokenizer

import (
	openai "github.com/sashabaranov/go-openai"
)

// Message token overhead, based on OpenAI's chat format documentation.
const (
	// Per-message overhead tokens: <|start|>role<|end|>
	messageOverhead = 3

	// Reply priming tokens (assistant response start)
	replyPrimingTokens = 3

	// Name field overhead (if present)
	nameOverhead = 1
)

// CountMessages counts tokens for a slice of messages.
func (t *TiktokenTokenizer) CountMessages(messages []openai.ChatCompletionMessage, model string) (int, error) {
	total := 0

	for _, msg := range messages {
		tokens, err := t.countMessage(msg, model)
		if err != nil {
			return 0, err
		}
		total += tokens + messageOverhead
	}

	total += replyPrimingTokens

	return total, nil
}

// countMessage counts tokens for a single message.
func (t *TiktokenTokenizer) countMessage(msg openai.ChatCompletionMessage, model string) (int, error) {
	total := 0

	roleTokens, err := t.CountTokens(msg.Role, model)
	if err != nil {
		return 0, err
	}
	total += roleTokens

	contentTokens, err := t.CountTokens(msg.Content, model)
	if err != nil {
		return 0, err
	}
	total += contentTokens

	if msg.Name != "" {
		nameTokens, err := t.CountTokens(msg.Name, model)
		if err != nil {
			return 0, err
		}
		total += nameTokens + nameOverhead
	}

	return total, nil
}
