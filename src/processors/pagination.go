package processors

import (
	"sort"

	"github.com/JayRichh/steamshare/src/models"
)

// FilterByApp retains only items whose app id equals the caller-supplied
// filter. The comparison is on the literal string, matching the query
// parameter against the item's own app id.
func FilterByApp(items []models.InventoryItem, appID string) []models.InventoryItem {
	filtered := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.AppID == appID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortItems orders items deterministically: items with a rarity color first,
// colored items by descending color string (Steam's rarity coding convention,
// not a real color comparison), uncolored items by ascending name. The sort
// is stable, so ties keep the original asset order and pagination stays
// deterministic across requests.
func SortItems(items []models.InventoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.NameColor != "" && b.NameColor == "":
			return true
		case a.NameColor == "" && b.NameColor != "":
			return false
		case a.NameColor != "" && b.NameColor != "":
			return a.NameColor > b.NameColor
		default:
			return a.Name < b.Name
		}
	})
}

// Paginate assembles the response envelope. The has-more flag and cursor are
// passed through from upstream untouched: the service only ever sees one
// page, so upstream-declared pagination truth is authoritative.
func Paginate(items []models.InventoryItem, total, page, limit int, hasMore bool, nextCursor, appID, contextID string) models.InventoryPage {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return models.InventoryPage{
		Success:    true,
		Items:      items,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasMore:    hasMore,
		NextCursor: nextCursor,
		AppID:      appID,
		ContextID:  contextID,
	}
}
