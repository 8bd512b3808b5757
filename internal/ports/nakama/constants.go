package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameRummy is the authoritative match handler name registered with Nakama.
	MatchNameRummy = "rummy_match"

	// MatchLabelKey_OpenSeats is the label key carrying the open seat count.
	MatchLabelKey_OpenSeats = "open"

	// MaxSeats is the table size of a Nakama match.
	MaxSeats = 4

	gameConfigPath    = "data/game_config.json"
	botIdentitiesPath = "data/bot_identities.json"
)
