package catalog

// MaxSelected is the most characters a single story can feature.
const MaxSelected = 3

// Toggle flips a character's membership in the current selection.
// If the character is already selected (by id) it is removed; otherwise it
// is appended, unless the selection is full, in which case the selection is
// returned unchanged. Insertion order is preserved — it becomes the
// character order in the generated story.
func Toggle(selected []Character, c Character) []Character {
	for i, s := range selected {
		if s.ID == c.ID {
			out := make([]Character, 0, len(selected)-1)
			out = append(out, selected[:i]...)
			out = append(out, selected[i+1:]...)
			return out
		}
	}

	if len(selected) >= MaxSelected {
		return selected
	}

	out := make([]Character, 0, len(selected)+1)
	out = append(out, selected...)
	out = append(out, c)
	return out
}
