package cart

import (
	"sort"
	"strings"
)

// LineKey derives the deterministic identity of a cart line from the
// product id and the canonicalized modifier selections. Modifier ids are
// sorted, and within each modifier the selected option ids are sorted, so
// two selections differing only in order produce the same key. A product
// added with no selections at all keys as "<product_id>-simple".
func LineKey(productID string, selections map[string][]string) string {
	var modifierIDs []string
	for id, opts := range selections {
		if len(opts) == 0 {
			continue
		}
		modifierIDs = append(modifierIDs, id)
	}
	if len(modifierIDs) == 0 {
		return productID + "-simple"
	}
	sort.Strings(modifierIDs)

	parts := make([]string, 0, len(modifierIDs))
	for _, id := range modifierIDs {
		opts := make([]string, len(selections[id]))
		copy(opts, selections[id])
		sort.Strings(opts)
		parts = append(parts, id+":"+strings.Join(opts, ","))
	}
	return productID + "-" + strings.Join(parts, "|")
}
