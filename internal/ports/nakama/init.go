package nakama

import (
	"context"
	"database/sql"

	"rummy/internal/config"
	"rummy/internal/players"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires RPCs and match handlers for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := config.LoadGameConfig(gameConfigPath); err != nil {
		logger.Warn("InitModule: Could not load game config: %v", err)
	}
	if err := players.LoadIdentities(botIdentitiesPath); err != nil {
		logger.Warn("InitModule: Could not load bot identities: %v", err)
	}
	if err := players.ProvisionBots(ctx, nk, logger); err != nil {
		logger.Warn("InitModule: Could not provision bot accounts: %v", err)
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameRummy, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return newMatchHandler(), nil
	}); err != nil {
		return err
	}

	logger.Info("Rummy Go module loaded.")
	return nil
}
