package processors

import (
	"testing"

	"github.com/JayRichh/steamshare/src/models"
)

func intPtr(v int) *int { return &v }

func validAsset(assetID, classID, instanceID string) models.RawAsset {
	return models.RawAsset{
		AppID:      753,
		ContextID:  "6",
		AssetID:    assetID,
		ClassID:    classID,
		InstanceID: instanceID,
		Amount:     "1",
	}
}

func validDescription(classID, instanceID, name string) models.RawDescription {
	return models.RawDescription{
		AppID:                     753,
		ClassID:                   classID,
		InstanceID:                instanceID,
		Name:                      name,
		MarketHashName:            name,
		MarketName:                name,
		Type:                      "Trading Card",
		IconURL:                   "icon/" + name,
		Tradable:                  intPtr(1),
		Marketable:                intPtr(1),
		Commodity:                 intPtr(0),
		MarketTradableRestriction: intPtr(7),
	}
}

func TestReconcileDropsAssetsWithoutDescription(t *testing.T) {
	assets := []models.RawAsset{validAsset("A", "1", "0")}

	items, dropped := ReconcileInventory(assets, nil)
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
	if dropped != 1 {
		t.Fatalf("expected dropped = 1, got %d", dropped)
	}
}

func TestReconcileExcludedCountMatchesLoss(t *testing.T) {
	assets := []models.RawAsset{
		validAsset("A", "1", "0"),
		validAsset("B", "2", "0"),
		validAsset("C", "3", "0"),
	}
	descriptions := []models.RawDescription{
		validDescription("2", "0", "Card B"),
	}

	items, dropped := ReconcileInventory(assets, descriptions)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if dropped != len(assets)-len(items) {
		t.Fatalf("dropped = %d, want %d", dropped, len(assets)-len(items))
	}
	if items[0].AssetID != "B" {
		t.Fatalf("kept item asset id = %q, want %q", items[0].AssetID, "B")
	}
}

func TestReconcileMergesFields(t *testing.T) {
	asset := validAsset("A1", "10", "0")
	asset.Amount = "3"
	desc := validDescription("10", "0", "Foil Badge")
	desc.MarketHashName = "753-Foil Badge"
	desc.NameColor = "cf6a32"
	desc.IconURLLarge = "icon/large"
	desc.Descriptions = []models.ItemDescription{{Value: "A shiny badge"}}
	desc.Tags = []models.ItemTag{{Category: "item_class", InternalName: "item_class_1"}}
	desc.Actions = []models.ItemAction{{Link: "https://example", Name: "View"}}

	items, dropped := ReconcileInventory([]models.RawAsset{asset}, []models.RawDescription{desc})
	if dropped != 0 || len(items) != 1 {
		t.Fatalf("expected 1 item and 0 dropped, got %d items, %d dropped", len(items), dropped)
	}

	item := items[0]
	if item.AppID != "753" || item.ContextID != "6" || item.AssetID != "A1" {
		t.Fatalf("identity not carried over: %+v", item)
	}
	if item.Amount != "3" {
		t.Fatalf("amount = %q, want %q", item.Amount, "3")
	}
	if item.MarketHashName != "753-Foil%20Badge" {
		t.Fatalf("market hash name not percent-encoded: %q", item.MarketHashName)
	}
	if item.Tradable != 1 || item.Marketable != 1 || item.Commodity != 0 || item.MarketTradableRestriction != 7 {
		t.Fatalf("flags not carried over: %+v", item)
	}
	if item.NameColor != "cf6a32" || item.IconURLLarge != "icon/large" {
		t.Fatalf("optional fields not carried over: %+v", item)
	}
	if len(item.Descriptions) != 1 || len(item.Tags) != 1 || len(item.Actions) != 1 {
		t.Fatalf("collections not carried over: %+v", item)
	}
}

func TestReconcileValidationGates(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(a *models.RawAsset, d *models.RawDescription)
	}{
		{"empty amount", func(a *models.RawAsset, d *models.RawDescription) { a.Amount = "" }},
		{"empty asset id", func(a *models.RawAsset, d *models.RawDescription) { a.AssetID = "" }},
		{"zero app id", func(a *models.RawAsset, d *models.RawDescription) { a.AppID = 0 }},
		{"empty context", func(a *models.RawAsset, d *models.RawDescription) { a.ContextID = "" }},
		{"empty name", func(a *models.RawAsset, d *models.RawDescription) { d.Name = "" }},
		{"empty market hash name", func(a *models.RawAsset, d *models.RawDescription) { d.MarketHashName = "" }},
		{"empty market name", func(a *models.RawAsset, d *models.RawDescription) { d.MarketName = "" }},
		{"empty type", func(a *models.RawAsset, d *models.RawDescription) { d.Type = "" }},
		{"empty icon", func(a *models.RawAsset, d *models.RawDescription) { d.IconURL = "" }},
		{"missing tradable flag", func(a *models.RawAsset, d *models.RawDescription) { d.Tradable = nil }},
		{"missing marketable flag", func(a *models.RawAsset, d *models.RawDescription) { d.Marketable = nil }},
		{"missing commodity flag", func(a *models.RawAsset, d *models.RawDescription) { d.Commodity = nil }},
		{"missing restriction counter", func(a *models.RawAsset, d *models.RawDescription) { d.MarketTradableRestriction = nil }},
	}

	for _, tc := range cases {
		asset := validAsset("A", "1", "0")
		desc := validDescription("1", "0", "Card")
		tc.mutate(&asset, &desc)

		items, dropped := ReconcileInventory([]models.RawAsset{asset}, []models.RawDescription{desc})
		if len(items) != 0 || dropped != 1 {
			t.Fatalf("%s: expected item to be dropped, got %d items, %d dropped", tc.name, len(items), dropped)
		}
	}
}

func TestReconcileContainersAreNeverNil(t *testing.T) {
	items, _ := ReconcileInventory(
		[]models.RawAsset{validAsset("A", "1", "0")},
		[]models.RawDescription{validDescription("1", "0", "Card")},
	)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Descriptions == nil {
		t.Fatal("descriptions container is nil, want empty slice")
	}
	if items[0].Tags == nil {
		t.Fatal("tags container is nil, want empty slice")
	}
}

func TestReconcilePreservesAssetOrder(t *testing.T) {
	assets := []models.RawAsset{
		validAsset("C", "3", "0"),
		validAsset("A", "1", "0"),
		validAsset("B", "2", "0"),
	}
	descriptions := []models.RawDescription{
		validDescription("1", "0", "One"),
		validDescription("2", "0", "Two"),
		validDescription("3", "0", "Three"),
	}

	items, _ := ReconcileInventory(assets, descriptions)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"C", "A", "B"} {
		if items[i].AssetID != want {
			t.Fatalf("items[%d].AssetID = %q, want %q", i, items[i].AssetID, want)
		}
	}
}

func TestReconcileFirstMatchingDescriptionWins(t *testing.T) {
	first := validDescription("1", "0", "First")
	second := validDescription("1", "0", "Second")

	items, _ := ReconcileInventory(
		[]models.RawAsset{validAsset("A", "1", "0")},
		[]models.RawDescription{first, second},
	)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "First" {
		t.Fatalf("matched description = %q, want the first occurrence", items[0].Name)
	}
}
