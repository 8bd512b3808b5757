package players

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"
)

// BotIdentity is one entry of the bot account pool. The pool is loaded from a
// JSON file at module init; without a file a small built-in pool is used so
// matches can still be filled.
type BotIdentity struct {
	DeviceID    string `json:"device_id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Level       string `json:"level"`
}

var (
	botIdentities []BotIdentity
	botIDMap      map[string]bool
	loadOnce      sync.Once
	provisionOnce sync.Once
	loadErr       error
)

var fallbackIdentities = []BotIdentity{
	{UserID: "bot-ada", Username: "ada", DisplayName: "Ada", Level: "greedy"},
	{UserID: "bot-blaise", Username: "blaise", DisplayName: "Blaise", Level: "greedy"},
	{UserID: "bot-kurt", Username: "kurt", DisplayName: "Kurt", Level: "basic"},
	{UserID: "bot-grace", Username: "grace", DisplayName: "Grace", Level: "basic"},
}

// LoadIdentities loads the bot pool from the given path. It runs at most once;
// later calls return the first result.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("read bot identities: %w", err)
			return
		}
		if err := json.Unmarshal(data, &botIdentities); err != nil {
			loadErr = fmt.Errorf("unmarshal bot identities: %w", err)
			return
		}
		botIDMap = make(map[string]bool, len(botIdentities))
		for _, identity := range botIdentities {
			if identity.UserID != "" {
				botIDMap[identity.UserID] = true
			}
		}
	})
	return loadErr
}

// ProvisionBots authenticates the pooled bot accounts so they exist in the
// Nakama database before the first match asks for one.
func ProvisionBots(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger) error {
	provisionOnce.Do(func() {
		for i := range pool() {
			identity := &pool()[i]
			if identity.DeviceID == "" {
				continue
			}
			userID, username, _, err := nk.AuthenticateDevice(ctx, identity.DeviceID, identity.Username, true)
			if err != nil {
				logger.Error("provision bot %s: %v", identity.Username, err)
				continue
			}
			identity.UserID = userID
			identity.Username = username
			if botIDMap == nil {
				botIDMap = make(map[string]bool)
			}
			botIDMap[userID] = true

			metadata := map[string]interface{}{"is_bot": true, "level": identity.Level}
			if err := nk.AccountUpdateId(ctx, userID, username, metadata, identity.DisplayName, "", "", "", ""); err != nil {
				logger.Warn("update bot account %s: %v", userID, err)
			}
		}
	})
	return nil
}

func pool() []BotIdentity {
	if len(botIdentities) > 0 {
		return botIdentities
	}
	return fallbackIdentities
}

// Identity returns a bot identity by index, cycling through the pool.
func Identity(index int) BotIdentity {
	p := pool()
	return p[index%len(p)]
}

// IsBot reports whether the user ID belongs to the bot pool.
func IsBot(userID string) bool {
	if botIDMap != nil && botIDMap[userID] {
		return true
	}
	for _, identity := range fallbackIdentities {
		if identity.UserID == userID {
			return true
		}
	}
	return false
}
