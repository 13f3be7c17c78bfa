package processors

import (
	"net/url"
	"strconv"

	"github.com/JayRichh/steamshare/src/models"
)

// ReconcileInventory joins raw asset rows with their (classid, instanceid)
// descriptions and returns only fully-valid items, in input asset order.
// Assets without a matching description, and matches that fail the required
// field check, are dropped; the dropped count is returned for telemetry.
// Dropping is the designed degradation here, never an error.
func ReconcileInventory(assets []models.RawAsset, descriptions []models.RawDescription) ([]models.InventoryItem, int) {
	// Index descriptions by key once; first occurrence wins.
	index := make(map[string]*models.RawDescription, len(descriptions))
	for i := range descriptions {
		key := descriptionKey(descriptions[i].ClassID, descriptions[i].InstanceID)
		if _, exists := index[key]; !exists {
			index[key] = &descriptions[i]
		}
	}

	items := make([]models.InventoryItem, 0, len(assets))
	dropped := 0
	for _, asset := range assets {
		desc, ok := index[descriptionKey(asset.ClassID, asset.InstanceID)]
		if !ok {
			dropped++
			continue
		}
		item, ok := buildItem(asset, desc)
		if !ok {
			dropped++
			continue
		}
		items = append(items, item)
	}
	return items, dropped
}

func descriptionKey(classID, instanceID string) string {
	return classID + "_" + instanceID
}

// buildItem merges one asset with its description and runs the full
// required-field validation. It reports false when any required field is
// missing, in which case the caller must not use the returned item.
func buildItem(asset models.RawAsset, desc *models.RawDescription) (models.InventoryItem, bool) {
	if asset.AppID <= 0 ||
		asset.ContextID == "" ||
		asset.AssetID == "" ||
		asset.ClassID == "" ||
		asset.InstanceID == "" ||
		asset.Amount == "" {
		return models.InventoryItem{}, false
	}
	if desc.Name == "" ||
		desc.MarketHashName == "" ||
		desc.MarketName == "" ||
		desc.Type == "" ||
		desc.IconURL == "" {
		return models.InventoryItem{}, false
	}
	if desc.Tradable == nil || desc.Marketable == nil || desc.Commodity == nil || desc.MarketTradableRestriction == nil {
		return models.InventoryItem{}, false
	}

	item := models.InventoryItem{
		AppID:      strconv.FormatInt(asset.AppID, 10),
		ContextID:  asset.ContextID,
		AssetID:    asset.AssetID,
		ClassID:    asset.ClassID,
		InstanceID: asset.InstanceID,
		Amount:     asset.Amount,

		Name:           desc.Name,
		MarketHashName: url.PathEscape(desc.MarketHashName),
		MarketName:     desc.MarketName,
		Type:           desc.Type,
		IconURL:        desc.IconURL,

		Tradable:                  *desc.Tradable,
		Marketable:                *desc.Marketable,
		Commodity:                 *desc.Commodity,
		MarketTradableRestriction: *desc.MarketTradableRestriction,

		Descriptions: desc.Descriptions,
		Tags:         desc.Tags,

		NameColor:       desc.NameColor,
		BackgroundColor: desc.BackgroundColor,
		IconURLLarge:    desc.IconURLLarge,
		Actions:         desc.Actions,
	}

	// Containers are part of the contract even when Steam omits them.
	if item.Descriptions == nil {
		item.Descriptions = []models.ItemDescription{}
	}
	if item.Tags == nil {
		item.Tags = []models.ItemTag{}
	}

	return item, true
}
