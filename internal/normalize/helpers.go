package normalize

import (
	"encoding/json"

	"github.com/jonathan/resume-studio/internal/types"
)

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// itemVisible applies the visibility rule: only the literal value false
// hides an item; a missing flag or any other value normalizes to visible.
func itemVisible(item map[string]any) bool {
	if flag, ok := item["visible"].(bool); ok {
		return flag
	}
	return true
}

// subItemsFrom converts a raw list into sub-items, skipping values that are
// neither strings nor objects. The result is never nil.
func subItemsFrom(v any) []types.SubItem {
	raw := asSlice(v)
	items := make([]types.SubItem, 0, len(raw))
	for _, entry := range raw {
		if sub, ok := types.SubItemFromValue(entry); ok {
			items = append(items, sub)
		}
	}
	return items
}

// deepCopyMap clones opaque map data through a JSON round trip so the
// normalized document never aliases its input.
func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
