package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/JayRichh/steamshare/src/logger"
	"github.com/JayRichh/steamshare/src/services"
	"github.com/JayRichh/steamshare/src/utils"
)

const genericFetchError = "Failed to fetch inventory"

type InventoryHandler struct {
	inventoryService services.InventoryService
}

func NewInventoryHandler(inventoryService services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// HandleGetInventory serves GET /api/steam/inventory. Query parameters:
// steamid (defaults to the authenticated identity), page (default 1),
// limit (default 100, capped at 100), appid (optional filter), cursor
// (only honored past page 1), l (locale).
func (h *InventoryHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	authedID, ok := GetSteamIDFromContext(r.Context())
	if !ok {
		writeErrorEnvelope(w, http.StatusUnauthorized, "Authentication required", "no session identity in request context")
		return
	}

	q := r.URL.Query()

	steamID := strings.TrimSpace(q.Get("steamid"))
	if steamID == "" {
		steamID = authedID
	}
	if !isSteamID64(steamID) {
		writeErrorEnvelope(w, http.StatusBadRequest, "Missing or invalid Steam ID",
			fmt.Sprintf("steamid %q is not a SteamID64", steamID))
		return
	}

	page := parsePositiveInt(q.Get("page"), 1)
	limit := parsePositiveInt(q.Get("limit"), services.MaxInventoryPageSize)
	if limit > services.MaxInventoryPageSize {
		limit = services.MaxInventoryPageSize
	}
	appFilter := strings.TrimSpace(q.Get("appid"))

	result, err := h.inventoryService.GetInventory(r.Context(), services.InventoryQuery{
		SteamID: steamID,
		AppID:   appFilter,
		Page:    page,
		Limit:   limit,
		Cursor:  q.Get("cursor"),
		Locale:  q.Get("l"),
	})
	if err != nil {
		log.Error("Inventory fetch failed", "steamID", steamID, "appID", appFilter, "error", err)
		writeErrorEnvelope(w, http.StatusInternalServerError, genericFetchError, err.Error())
		return
	}

	// Advisory cache metadata for the CDN: 5 minute shared cache with
	// stale-while-revalidate, plus tags for targeted invalidation.
	w.Header().Set("Cache-Control", "public, s-maxage=300, stale-while-revalidate=600")
	cacheTags := fmt.Sprintf("user-%s-inventory", steamID)
	if appFilter != "" {
		cacheTags += fmt.Sprintf(",app-%s-inventory", appFilter)
	}
	w.Header().Set("Cache-Tag", cacheTags)

	if etag, etagErr := utils.GenerateETag(result); etagErr == nil {
		quotedETag := fmt.Sprintf("\"%s\"", etag)
		w.Header().Set("ETag", quotedETag)

		if clientETag := r.Header.Get("If-None-Match"); clientETag != "" {
			for _, cETag := range strings.Split(clientETag, ",") {
				if strings.TrimSpace(cETag) == quotedETag {
					log.Debug("ETag match, returning 304 Not Modified", "steamID", steamID)
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	} else {
		log.Warn("Failed to generate ETag for inventory response", "steamID", steamID, "error", etagErr)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// isSteamID64 checks the shape of a SteamID64: exactly 17 digits.
func isSteamID64(id string) bool {
	if len(id) != 17 {
		return false
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
