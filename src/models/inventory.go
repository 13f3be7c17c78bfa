package models

// Raw wire types for the Steam Community inventory endpoint. Steam does not
// guarantee any of these fields; absent arrays decode as nil and absent
// numeric flags decode as nil pointers so validation can tell "missing"
// apart from zero.

// RawAsset is one row of the "assets" array: identity and quantity only,
// no descriptive metadata.
type RawAsset struct {
	AppID      int64  `json:"appid"`
	ContextID  string `json:"contextid"`
	AssetID    string `json:"assetid"`
	ClassID    string `json:"classid"`
	InstanceID string `json:"instanceid"`
	Amount     string `json:"amount"`
}

// RawDescription is type-level metadata keyed by (classid, instanceid).
type RawDescription struct {
	AppID                     int64             `json:"appid"`
	ClassID                   string            `json:"classid"`
	InstanceID                string            `json:"instanceid"`
	Name                      string            `json:"name"`
	MarketHashName            string            `json:"market_hash_name"`
	MarketName                string            `json:"market_name"`
	Type                      string            `json:"type"`
	IconURL                   string            `json:"icon_url"`
	IconURLLarge              string            `json:"icon_url_large"`
	Tradable                  *int              `json:"tradable"`
	Marketable                *int              `json:"marketable"`
	Commodity                 *int              `json:"commodity"`
	MarketTradableRestriction *int              `json:"market_tradable_restriction"`
	NameColor                 string            `json:"name_color"`
	BackgroundColor           string            `json:"background_color"`
	Descriptions              []ItemDescription `json:"descriptions"`
	Actions                   []ItemAction      `json:"actions"`
	Tags                      []ItemTag         `json:"tags"`
}

type ItemDescription struct {
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
	Color string `json:"color,omitempty"`
}

type ItemAction struct {
	Link string `json:"link"`
	Name string `json:"name"`
}

type ItemTag struct {
	Category              string `json:"category"`
	InternalName          string `json:"internal_name"`
	LocalizedCategoryName string `json:"localized_category_name,omitempty"`
	LocalizedTagName      string `json:"localized_tag_name,omitempty"`
	Color                 string `json:"color,omitempty"`
}

// RawInventoryPage is one decoded upstream response. Steam signals "there is
// another page" with more_items=1 and hands back the last asset id as the
// continuation cursor.
type RawInventoryPage struct {
	Assets              []RawAsset       `json:"assets"`
	Descriptions        []RawDescription `json:"descriptions"`
	TotalInventoryCount int              `json:"total_inventory_count"`
	MoreItems           int              `json:"more_items"`
	LastAssetID         string           `json:"last_assetid"`
	Success             int              `json:"success"`
	Error               string           `json:"error"`
}

// InventoryItem is a reconciled asset+description pair. An item only exists
// once every required field below passed validation; there are no partially
// populated items.
type InventoryItem struct {
	AppID      string `json:"app_id"`
	ContextID  string `json:"context_id"`
	AssetID    string `json:"asset_id"`
	ClassID    string `json:"class_id"`
	InstanceID string `json:"instance_id"`
	Amount     string `json:"amount"`

	Name           string `json:"name"`
	MarketHashName string `json:"market_hash_name"` // percent-encoded for URL embedding
	MarketName     string `json:"market_name"`
	Type           string `json:"type"`
	IconURL        string `json:"icon_url"`

	Tradable                  int `json:"tradable"`
	Marketable                int `json:"marketable"`
	Commodity                 int `json:"commodity"`
	MarketTradableRestriction int `json:"market_tradable_restriction"`

	// Always present, possibly empty.
	Descriptions []ItemDescription `json:"descriptions"`
	Tags         []ItemTag         `json:"tags"`

	NameColor       string       `json:"name_color,omitempty"`
	BackgroundColor string       `json:"background_color,omitempty"`
	IconURLLarge    string       `json:"icon_url_large,omitempty"`
	Actions         []ItemAction `json:"actions,omitempty"`
}

// InventoryPage is the success response envelope. Built fresh per request,
// never persisted.
type InventoryPage struct {
	Success    bool            `json:"success"`
	Items      []InventoryItem `json:"items"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	HasMore    bool            `json:"has_more"`
	NextCursor string          `json:"next_cursor,omitempty"`
	AppID      string          `json:"app_id"`
	ContextID  string          `json:"context_id"`
}

// InventoryError is the uniform failure envelope. Details is only populated
// in development mode.
type InventoryError struct {
	Success    bool            `json:"success"`
	Error      string          `json:"error"`
	Details    string          `json:"details,omitempty"`
	Items      []InventoryItem `json:"items"`
	TotalCount int             `json:"total_count"`
}
