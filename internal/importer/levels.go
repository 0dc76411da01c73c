package importer

import (
	"strconv"
	"strings"
)

// Skill level names derived from endorsement counts.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// SkillLevelFromEndorsements maps an endorsement count onto a qualitative
// skill level. Boundaries are inclusive on the lower bound.
func SkillLevelFromEndorsements(count int) string {
	switch {
	case count >= 50:
		return LevelExpert
	case count >= 20:
		return LevelAdvanced
	case count >= 5:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// parseEndorsementCount reads an endorsement count from its raw column
// value. Anything unparseable counts as zero.
func parseEndorsementCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
