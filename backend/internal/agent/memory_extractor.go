package agent

import (
	"encoding/json"
	"strings"

	"brrr-bot/backend/internal/store"
)

const (
	memoryFenceOpen  = "```json"
	memoryFenceClose = "```"
)

type memoryBlock struct {
	Memories []memoryEntry `json:"memories"`
}

type memoryEntry struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Context string `json:"context"`
}

// ExtractMemories pulls the trailing fenced memory block out of a model
// reply. It returns the reply with the block removed plus the parsed
// memories. A missing or malformed block is not an error: the reply comes
// back unchanged with no memories. Running the result through again is a
// no-op since the cleaned reply no longer contains a fence.
func ExtractMemories(reply string) (string, []store.Memory) {
	if !strings.Contains(reply, memoryFenceOpen) || !strings.Contains(reply, `"memories"`) {
		return reply, nil
	}

	start := strings.LastIndex(reply, memoryFenceOpen)
	end := strings.Index(reply[start+len(memoryFenceOpen):], memoryFenceClose)
	if end == -1 {
		return reply, nil
	}
	end += start + len(memoryFenceOpen)

	var block memoryBlock
	raw := strings.TrimSpace(reply[start+len(memoryFenceOpen) : end])
	if err := json.Unmarshal([]byte(raw), &block); err != nil {
		return reply, nil
	}

	memories := make([]store.Memory, 0, len(block.Memories))
	for _, entry := range block.Memories {
		if entry.Key == "" || entry.Value == "" {
			continue
		}
		memories = append(memories, store.Memory{
			Key:     entry.Key,
			Value:   entry.Value,
			Context: entry.Context,
		})
	}

	// The block is expected at the end of the reply; anything after the
	// closing fence is dropped along with it.
	clean := strings.TrimSpace(reply[:start])
	return clean, memories
}
