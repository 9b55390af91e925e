// Package merge builds the final display list for one resource kind: pinned
// wishlist items first, then fresh results that are not already pinned.
package merge

import "billettlyst/models"

// displayReady guards against items the cards cannot render: both a name and
// a primary image are required.
func displayReady[T models.Cataloged](item T) bool {
	return item.DisplayName() != "" && item.PrimaryImage() != ""
}

// Project concatenates pinned items (in their stored order) with the fresh
// items whose id is not already pinned, then drops anything not display-ready.
// Every id appears at most once in the output and pinned items always precede
// fresh ones.
func Project[T models.Cataloged](pinned, fresh []T) []T {
	seen := make(map[string]bool, len(pinned))
	out := make([]T, 0, len(pinned)+len(fresh))

	for _, item := range pinned {
		id := item.ItemID()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if displayReady(item) {
			out = append(out, item)
		}
	}

	for _, item := range fresh {
		id := item.ItemID()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if displayReady(item) {
			out = append(out, item)
		}
	}

	return out
}
