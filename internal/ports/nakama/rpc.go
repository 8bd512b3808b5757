package nakama

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RegisterRPCs wires the module's RPC handlers.
func RegisterRPCs(initializer runtime.Initializer) error {
	return initializer.RegisterRpc(RpcQuickMatch, RpcFindMatch)
}

// RpcFindMatch searches for an available match with open seats.
// If an available match is found, it returns the Match ID.
// If no match is found, it creates a new match and returns its ID.
//
// Payload: (Optional) Unused for now.
// Returns: String containing the Match ID.
func RpcFindMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	// Filter on the "open" key of the JSON label: at least one open seat.
	limit := 1
	authoritative := true
	labelQuery := fmt.Sprintf("+label.%s:>=1", MatchLabelKey_OpenSeats)
	minSize := 0
	maxSize := MaxSeats

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, labelQuery)
	if err != nil {
		logger.Error("RpcFindMatch [User:%s]: Failed to list matches: %v", userID, err)
		return "", err
	}

	if len(matches) > 0 {
		matchID := matches[0].MatchId
		logger.Info("RpcFindMatch [User:%s]: Found existing match %s", userID, matchID)
		return matchID, nil
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameRummy, nil)
	if err != nil {
		logger.Error("RpcFindMatch [User:%s]: Failed to create match: %v", userID, err)
		return "", err
	}

	logger.Info("RpcFindMatch [User:%s]: Created new match %s", userID, matchID)
	return matchID, nil
}
