package services

import (
	"context"

	"github.com/JayRichh/steamshare/src/models"
)

// FetchInventoryParams identifies one upstream inventory page request.
// StartAssetID is the opaque continuation cursor and must be empty on the
// first page.
type FetchInventoryParams struct {
	SteamID      string
	AppID        string
	ContextID    string
	Count        int
	StartAssetID string
	Locale       string
}

// SteamService talks to the Steam Community inventory endpoint.
type SteamService interface {
	FetchInventoryPage(ctx context.Context, params FetchInventoryParams) (*models.RawInventoryPage, error)
}

// InventoryQuery is the caller's view of an inventory page request, before
// app/context resolution and clamping.
type InventoryQuery struct {
	SteamID string
	AppID   string // optional catalog selector and filter
	Page    int
	Limit   int
	Cursor  string
	Locale  string
}

// InventoryService runs the full pipeline: resolve, fetch, reconcile,
// filter/sort/paginate.
type InventoryService interface {
	GetInventory(ctx context.Context, query InventoryQuery) (*models.InventoryPage, error)
}
