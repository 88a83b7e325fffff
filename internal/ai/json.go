package ai

import (
	"encoding/json"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/rotisserie/eris"
)

// cleanJSON strips markdown fences and extracts the first balanced JSON
// object from a completion. Balance is tracked by brace depth with string
// and escape awareness, so prose containing stray braces after the object
// cannot truncate or extend the block.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	if block := firstJSONBlock(text); block != "" {
		return block
	}
	return strings.TrimSpace(text)
}

// firstJSONBlock returns the first brace-balanced {...} block, or "" when
// the text contains no complete object.
func firstJSONBlock(text string) string {
	start := -1
	depth := 0
	inString := false
	escape := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if escape {
			escape = false
			continue
		}
		if inString {
			switch c {
			case '\\':
				escape = true
			case '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// decodeObject parses a completion into a loosely-typed JSON object. On a
// plain unmarshal failure it attempts a repair pass for the usual model
// output defects (single quotes, trailing commas, unclosed braces) before
// giving up.
func decodeObject(text string) (map[string]any, error) {
	cleaned := cleanJSON(text)
	if cleaned == "" {
		return nil, eris.New("ai: completion contains no JSON object")
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err == nil {
		return raw, nil
	}

	repaired, err := jsonrepair.RepairJSON(cleaned)
	if err != nil {
		return nil, eris.Wrap(err, "ai: repair completion JSON")
	}
	if err := json.Unmarshal([]byte(repaired), &raw); err != nil {
		return nil, eris.Wrap(err, "ai: unmarshal repaired completion")
	}
	return raw, nil
}
