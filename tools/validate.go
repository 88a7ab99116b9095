package tools

import "fmt"

// MaxQueryLength is the maximum allowed search query length
const MaxQueryLength = 500

// validateQuery validates a search or lookup phrase.
func validateQuery(query string) error {
	if query == "" {
		return fmt.Errorf("query is required")
	}
	if len(query) > MaxQueryLength {
		return fmt.Errorf("query exceeds maximum length of %d characters", MaxQueryLength)
	}
	return nil
}

// validateIDs validates a list of article, wiki or user ids.
func validateIDs(what string, ids []int) error {
	if len(ids) == 0 {
		return fmt.Errorf("at least one %s id is required", what)
	}
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("invalid %s id %d: must be positive", what, id)
		}
	}
	return nil
}

// validateID validates a single positive id.
func validateID(what string, id int) error {
	if id <= 0 {
		return fmt.Errorf("invalid %s id %d: must be positive", what, id)
	}
	return nil
}

// validateHub validates a hub name.
func validateHub(hub string) error {
	if hub == "" {
		return fmt.Errorf("hub is required")
	}
	return nil
}
