package profile

import (
	"strings"

	"github.com/collegecupid/cupid-cli/internal/client/models"
)

// AddInterest normalizes tag by trimming whitespace and appends it to the
// draft. It is a no-op (returning false) when the tag is empty, already
// present, or the list is at capacity.
func (w *Wizard) AddInterest(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	if len(w.draft.Interests) >= models.MaxInterests {
		return false
	}
	for _, existing := range w.draft.Interests {
		if existing == tag {
			return false
		}
	}
	w.draft.Interests = append(w.draft.Interests, tag)
	return true
}

// RemoveInterest removes tag by exact match; a no-op (returning false) when
// the tag is absent.
func (w *Wizard) RemoveInterest(tag string) bool {
	for i, existing := range w.draft.Interests {
		if existing == tag {
			w.draft.Interests = append(w.draft.Interests[:i], w.draft.Interests[i+1:]...)
			return true
		}
	}
	return false
}
