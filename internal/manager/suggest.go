package manager

import "github.com/sahilm/fuzzy"

const (
	maxSuggestions = 3
	minSuggestLen  = 3
)

// Suggest returns up to three candidates that fuzzily match input, best first.
// Inputs shorter than three characters match too much to be useful.
func Suggest(input string, candidates []string) []string {
	if len(input) < minSuggestLen {
		return nil
	}
	var out []string
	for _, match := range fuzzy.Find(input, candidates) {
		if match.Str == input {
			continue
		}
		out = append(out, match.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func (m *Manager) SuggestInstalled(name string) []string {
	return Suggest(name, m.store.Installed().Names())
}

func (m *Manager) SuggestAvailable(name string) []string {
	return Suggest(name, m.store.Available().Names())
}
