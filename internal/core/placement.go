package core

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Placement is where an image sits on the entry canvas.
type Placement struct {
	X        int
	Y        int
	Rotation float64
}

type placementMeta struct {
	Filename string  `json:"filename"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rot      float64 `json:"rot"`
}

// ParsePlacements decodes the placement side channel into a lookup keyed by the
// client's original filename. When the same filename appears more than once the
// last entry wins. An empty input yields an empty lookup.
func ParsePlacements(raw string) (map[string]Placement, error) {
	placements := make(map[string]Placement)
	if strings.TrimSpace(raw) == "" {
		return placements, nil
	}

	var metas []placementMeta
	if err := json.Unmarshal([]byte(raw), &metas); err != nil {
		return placements, fmt.Errorf("decode placement metadata: %w", err)
	}

	for _, m := range metas {
		placements[m.Filename] = Placement{
			X:        int(m.X),
			Y:        int(m.Y),
			Rotation: m.Rot,
		}
	}

	return placements, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

const fallbackFilename = "image"

// SecureFilename reduces a client supplied filename to a safe ASCII base name:
// accents are folded, path separators and whitespace become underscores and
// anything outside letters, digits, dot, underscore and dash is dropped.
func SecureFilename(name string) string {
	var ascii strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r < 0x80 {
			ascii.WriteRune(r)
		}
	}

	cleaned := strings.NewReplacer("/", " ", "\\", " ").Replace(ascii.String())
	cleaned = strings.Join(strings.Fields(cleaned), "_")
	cleaned = unsafeFilenameChars.ReplaceAllString(cleaned, "")
	cleaned = strings.Trim(cleaned, "._")

	if cleaned == "" {
		return fallbackFilename
	}
	return cleaned
}
