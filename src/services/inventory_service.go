package services

import (
	"context"

	"github.com/JayRichh/steamshare/src/logger"
	"github.com/JayRichh/steamshare/src/models"
	"github.com/JayRichh/steamshare/src/processors"
)

type inventoryServiceImpl struct {
	steamService SteamService
}

func NewInventoryService(steamService SteamService) InventoryService {
	return &inventoryServiceImpl{
		steamService: steamService,
	}
}

// GetInventory runs one request through the whole pipeline. Reconciliation
// loss never fails the request; upstream and transport errors do, and are
// returned as-is for the handler to classify.
func (s *inventoryServiceImpl) GetInventory(ctx context.Context, query InventoryQuery) (*models.InventoryPage, error) {
	appID, contextID := ResolveAppContext(query.AppID)

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit <= 0 || limit > MaxInventoryPageSize {
		limit = MaxInventoryPageSize
	}

	// The cursor only means something past the first page.
	cursor := ""
	if page > 1 {
		cursor = query.Cursor
	}

	raw, err := s.steamService.FetchInventoryPage(ctx, FetchInventoryParams{
		SteamID:      query.SteamID,
		AppID:        appID,
		ContextID:    contextID,
		Count:        limit,
		StartAssetID: cursor,
		Locale:       query.Locale,
	})
	if err != nil {
		return nil, err
	}

	items, dropped := processors.ReconcileInventory(raw.Assets, raw.Descriptions)
	if dropped > 0 {
		logger.FromContext(ctx).Info("Inventory reconciliation dropped assets",
			"steamID", query.SteamID,
			"appID", appID,
			"dropped", dropped,
			"kept", len(items))
	}

	if query.AppID != "" {
		items = processors.FilterByApp(items, query.AppID)
	}
	processors.SortItems(items)

	envelope := processors.Paginate(items, raw.TotalInventoryCount, page, limit,
		raw.MoreItems == 1, raw.LastAssetID, appID, contextID)
	return &envelope, nil
}
