package normalize

import "github.com/jonathan/resume-studio/internal/types"

// migrateIcon converts an icon value to the current single-size shape. The
// legacy representation expressed size as a width/height pair; it collapses
// to one value, preferring width, then height, then the fixed default.
// Position and image data pass through unchanged. A non-object icon yields
// nil.
func migrateIcon(v any) *types.Icon {
	raw := asMap(v)
	if raw == nil {
		return nil
	}

	icon := &types.Icon{
		Image:    asString(raw["image"]),
		Position: deepCopyMap(asMap(raw["position"])),
	}

	switch size := raw["size"].(type) {
	case float64:
		icon.Size = int(size)
	case map[string]any:
		if width, ok := size["width"].(float64); ok {
			icon.Size = int(width)
		} else if height, ok := size["height"].(float64); ok {
			icon.Size = int(height)
		} else {
			icon.Size = types.DefaultIconSize
		}
	default:
		icon.Size = types.DefaultIconSize
	}

	return icon
}
