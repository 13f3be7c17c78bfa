package services

import "strconv"

const (
	// Steam Community items live in app 753, context 6.
	CommunityAppID     = "753"
	CommunityContextID = "6"
	// In-game items of any regular title use context 2.
	GameContextID = "2"
)

// Valve titles the gallery links to directly.
var firstPartyAppIDs = map[string]bool{
	"440": true, // Team Fortress 2
	"570": true, // Dota 2
	"730": true, // Counter-Strike 2
}

// ResolveAppContext maps an optional caller-supplied app id to the
// (appid, contextid) pair the Steam endpoint expects. The caller's id is
// advisory only: anything unparseable silently falls back to the community
// inventory rather than failing. Pure and total.
func ResolveAppContext(appID string) (string, string) {
	if appID == "" || appID == CommunityAppID {
		return CommunityAppID, CommunityContextID
	}
	if firstPartyAppIDs[appID] {
		return appID, GameContextID
	}
	if n, err := strconv.ParseInt(appID, 10, 64); err == nil && n >= 0 {
		return appID, GameContextID
	}
	return CommunityAppID, CommunityContextID
}
