package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"

	"rummy/internal/app"
	"rummy/internal/config"
	"rummy/internal/domain"
	"rummy/internal/players"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats         [MaxSeats]string            `json:"seats"`        // Array of user IDs, empty string means seat is empty
	OwnerSeat     int                         `json:"owner_seat"`   // Seat index of the match owner
	RoundNumber   int                         `json:"round"`        // Next contract round to deal, 1..7
	Tick          int64                       `json:"tick"`         // Current tick of the match for turn pacing
	Presences     map[string]runtime.Presence `json:"-"`            // Map UserId -> Presence for targeted messaging
	App           *app.Service                `json:"-"`            // Rules engine use-cases
	Round         *app.Round                  `json:"-"`            // Current active hand (nil if in lobby)
	PlayerOrder   []string                    `json:"player_order"` // Engine seat index -> user ID, fixed at deal
	BotsEnabled   bool                        `json:"bots_enabled"`
	BotMinDelay   int                         `json:"bot_min_delay"`
	BotMaxDelay   int                         `json:"bot_max_delay"`
	BotAutoFill   int                         `json:"bot_auto_fill_delay"`
	BotWaitUntil  int64                       `json:"bot_wait_until"`
	SoloSinceTick int64                       `json:"solo_since_tick"`
	TurnDuration  int                         `json:"turn_duration"` // Seconds a human seat may stall before the engine plays for it
	TurnDeadline  int64                       `json:"turn_deadline"` // Tick when the current human turn expires
	TurnMark      int                         `json:"turn_mark"`     // Round.Turns value the deadline was armed for
	Bots          map[string]app.Player       `json:"-"`             // Active bot strategies keyed by user ID
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return MaxSeats - ms.GetOpenSeatsCount()
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !players.IsBot(seat) {
			count++
		}
	}
	return count
}

// engineSeatOf maps a user ID to its seat in the running hand, or -1.
func (ms *MatchState) engineSeatOf(userID string) int {
	for i, id := range ms.PlayerOrder {
		if id == userID {
			return i
		}
	}
	return -1
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !players.IsBot(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !players.IsBot(userID) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := players.LoadIdentities(botIdentitiesPath); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig(gameConfigPath); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	minDelay, maxDelay := config.GetBotThinkDelay()
	state := &MatchState{
		OwnerSeat:    -1,
		RoundNumber:  1,
		Presences:    make(map[string]runtime.Presence),
		App:          app.NewService(nil, config.Rules()),
		Bots:         make(map[string]app.Player),
		BotMinDelay:  minDelay,
		BotMaxDelay:  maxDelay,
		BotAutoFill:  config.GetBotAutoFillDelay(),
		TurnDuration: config.GetTurnDuration(),
	}

	// Environment overrides for bot behaviour.
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if val, ok := env["rummy_bots_enabled"]; ok {
			state.BotsEnabled = val == "true"
		}
		if val, ok := env["rummy_bot_min_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				state.BotMinDelay = i
			}
		}
		if val, ok := env["rummy_bot_max_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				state.BotMaxDelay = i
			}
		}
		if val, ok := env["rummy_bot_auto_fill_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				state.BotAutoFill = i
			}
		}
		if val, ok := env["rummy_turn_duration_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				state.TurnDuration = i
			}
		}
	}

	label, err := json.Marshal(MatchLabel{Open: state.GetOpenSeatsCount(), State: "lobby"})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(label)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace (if no hand is running).
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Round == nil {
			for _, seat := range matchState.Seats {
				if players.IsBot(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		// Assign seat: try empty seats first, then bots (if lobby).
		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Round == nil {
			for i, seatUserID := range matchState.Seats {
				if players.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", p.GetUserId())
		}
	}

	// Ensure owner seat is assigned to a human player only.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		for i, seatUserID := range matchState.Seats {
			if seatUserID == p.GetUserId() {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
				break
			}
		}
	}

	newOwnerSeat := findFirstHumanSeat(matchState.Seats[:])
	if newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
		if newOwnerSeat >= 0 {
			logger.Debug("MatchLeave: Owner set to human seat %d.", newOwnerSeat)
		}
	}

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartHand:
			mh.handleStartHand(matchState, dispatcher, logger, msg)
		case OpDrawCard:
			mh.handleDrawCard(matchState, dispatcher, logger, msg)
		case OpPlayTurn:
			mh.handlePlayTurn(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.processTurnClock(matchState, dispatcher, logger)

	if matchState.BotsEnabled {
		mh.processBots(matchState, dispatcher, logger)
	}

	return matchState
}

// processTurnClock enforces the per-turn clock on human seats. A seat that
// stalls past the deadline gets a minimal engine-played turn (deck draw,
// highest discard) so the table keeps moving. Bot seats pace themselves.
func (mh *matchHandler) processTurnClock(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Round == nil || state.Round.Phase != app.PhasePlaying || state.TurnDuration <= 0 {
		state.TurnDeadline = 0
		return
	}
	seat := state.Round.CurrentSeat
	if seat < 0 || seat >= len(state.PlayerOrder) {
		return
	}
	userID := state.PlayerOrder[seat]
	if _, isBot := state.Bots[userID]; isBot {
		state.TurnDeadline = 0
		return
	}

	// Arm (or re-arm after a committed turn) the deadline for this turn.
	if state.TurnDeadline == 0 || state.TurnMark != state.Round.Turns {
		state.TurnMark = state.Round.Turns
		state.TurnDeadline = state.Tick + int64(state.TurnDuration)
		return
	}
	if state.Tick < state.TurnDeadline {
		return
	}
	state.TurnDeadline = 0

	logger.Warn("processTurnClock: Seat %d (%s) stalled past %d seconds, playing a fallback turn", seat, userID, state.TurnDuration)
	if !state.Round.Drawn {
		_, events, err := state.App.Draw(state.Round, seat, app.DrawFromDeck)
		if err != nil {
			logger.Error("processTurnClock: Fallback draw failed for seat %d: %v", seat, err)
			return
		}
		mh.broadcastEvents(state, dispatcher, logger, events)
	}
	turn, err := players.Basic{}.PlayTurn(app.BuildView(state.Round, seat))
	if err != nil {
		logger.Error("processTurnClock: Fallback turn failed for seat %d: %v", seat, err)
		return
	}
	events, err := state.App.PlayTurn(state.Round, seat, turn)
	if err != nil {
		logger.Error("processTurnClock: Fallback turn rejected for seat %d: %v", seat, err)
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// 1. Auto-fill lobby with bots if there's only one human player after delay.
	if state.Round == nil {
		if state.GetHumanPlayerCount() == 1 {
			if state.SoloSinceTick == 0 {
				state.SoloSinceTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.SoloSinceTick >= int64(state.BotAutoFill) {
				added := false
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					identity := players.Identity(i)
					level, err := players.ParseLevel(identity.Level)
					if err != nil {
						level, _ = players.ParseLevel(config.GetBotLevel())
					}
					strategy, err := players.New(level, config.Rules())
					if err != nil {
						logger.Error("processBots: Failed to create bot strategy for %s: %v", identity.UserID, err)
						continue
					}
					state.Seats[i] = identity.UserID
					state.Bots[identity.UserID] = strategy
					logger.Info("processBots: Added bot %s (%s) to seat %d", identity.Username, identity.UserID, i)
					added = true
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastMatchState(state, dispatcher, logger)
				}
				state.SoloSinceTick = 0
			}
		} else {
			state.SoloSinceTick = 0
		}
		return
	}

	// 2. Handle bot turns in a running hand.
	if state.Round.Phase != app.PhasePlaying {
		return
	}
	seat := state.Round.CurrentSeat
	if seat < 0 || seat >= len(state.PlayerOrder) {
		return
	}
	userID := state.PlayerOrder[seat]
	strategy, isBotTurn := state.Bots[userID]
	if !isBotTurn {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := state.BotMinDelay
		if state.BotMaxDelay > state.BotMinDelay {
			delay += rand.Intn(state.BotMaxDelay - state.BotMinDelay + 1)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s (seat %d) will act at tick %d", userID, seat, state.BotWaitUntil)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	source := strategy.DecideDraw(app.BuildView(state.Round, seat))
	_, events, err := state.App.Draw(state.Round, seat, source)
	if err != nil {
		logger.Error("processBots: Bot %s failed to draw from %s: %v", userID, source, err)
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)

	turn, err := strategy.PlayTurn(app.BuildView(state.Round, seat))
	if err != nil {
		logger.Error("processBots: Bot %s failed to plan a turn: %v", userID, err)
		return
	}
	events, err = state.App.PlayTurn(state.Round, seat, turn)
	if err != nil {
		logger.Error("processBots: Bot %s played an invalid turn: %v", userID, err)
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleStartHand(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := -1
	for i, seatUserID := range state.Seats {
		if seatUserID == senderID {
			senderSeat = i
			break
		}
	}

	var request StartHandRequest
	if len(msg.GetData()) > 0 {
		if err := json.Unmarshal(msg.GetData(), &request); err != nil {
			logger.Warn("StartHand: Invalid request from %s: %v", senderID, err)
			return
		}
	}

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartHand: User %s tried to start but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}
	if state.Round != nil {
		logger.Warn("StartHand: A hand is already running.")
		return
	}

	roundNumber := state.RoundNumber
	if request.Round > 0 {
		roundNumber = request.Round
	}

	// Engine seats are the occupied table seats in order.
	var order []string
	for _, seatUserID := range state.Seats {
		if seatUserID != "" {
			order = append(order, seatUserID)
		}
	}
	if len(order) < app.MinSeats {
		logger.Warn("StartHand: Cannot start with %d players. Need at least %d.", len(order), app.MinSeats)
		return
	}

	round, events, err := state.App.Deal(len(order), roundNumber)
	if err != nil {
		logger.Error("StartHand: Failed to deal round %d: %v", roundNumber, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	state.Round = round
	state.RoundNumber = roundNumber
	state.PlayerOrder = order

	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastEvents(state, dispatcher, logger, events)

	logger.Info("StartHand: Round %d dealt to %d players.", roundNumber, len(order))
}

func (mh *matchHandler) handleDrawCard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Round == nil {
		logger.Warn("DrawCard: No hand is running.")
		return
	}
	seat := state.engineSeatOf(senderID)
	if seat < 0 {
		logger.Warn("DrawCard: User %s is not seated in the hand.", senderID)
		return
	}

	var request DrawCardRequest
	if len(msg.GetData()) > 0 {
		if err := json.Unmarshal(msg.GetData(), &request); err != nil {
			logger.Warn("DrawCard: Invalid request from %s: %v", senderID, err)
			return
		}
	}
	source, ok := parseDrawSource(request.Source)
	if !ok {
		mh.sendError(state, dispatcher, logger, senderID, 400, "unknown draw source: "+request.Source)
		return
	}

	_, events, err := state.App.Draw(state.Round, seat, source)
	if err != nil {
		logger.Warn("DrawCard: User %s (seat %d) failed to draw: %v", senderID, seat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePlayTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Round == nil {
		logger.Warn("PlayTurn: No hand is running.")
		return
	}
	seat := state.engineSeatOf(senderID)
	if seat < 0 {
		logger.Warn("PlayTurn: User %s is not seated in the hand.", senderID)
		return
	}

	var request PlayTurnRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("PlayTurn: Invalid request from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed turn payload")
		return
	}

	events, err := state.App.PlayTurn(state.Round, seat, toTurn(request))
	if err != nil {
		logger.Warn("PlayTurn: User %s (seat %d) rejected: %v", senderID, seat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snapshot := MatchStateDTO{
		Seats:     state.Seats[:],
		OwnerSeat: state.OwnerSeat,
		Round:     state.RoundNumber,
	}
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}
		displayName := userID
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		} else if players.IsBot(userID) {
			displayName = players.Identity(i).DisplayName
		}
		snapshot.Players = append(snapshot.Players, PlayerStateDTO{
			UserID:      userID,
			Seat:        i,
			IsOwner:     i == state.OwnerSeat,
			IsBot:       players.IsBot(userID),
			DisplayName: displayName,
		})
	}

	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("Failed to marshal match state: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchState, bytes, nil, nil, true)
}

func (mh *matchHandler) broadcastEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
}

// broadcastEvent converts an engine event to its JSON DTO and dispatches it,
// mapping recipient seats to connected presences.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	var payload interface{}

	switch ev.Kind {
	case app.EventHandStarted:
		opCode = OpHandStarted
		p := ev.Payload.(app.HandStartedPayload)
		payload = HandStartedDTO{
			HandID:    p.HandID.String(),
			Round:     p.Round,
			Contract:  p.Contract.String(),
			HandSize:  p.Contract.HandSize,
			Seats:     p.Seats,
			FirstSeat: p.FirstSeat,
			Upcard:    p.Upcard,
		}
	case app.EventHandDealt:
		opCode = OpHandDealt
		p := ev.Payload.(app.HandDealtPayload)
		payload = HandDealtDTO{Seat: p.Seat, Hand: p.Hand}
	case app.EventCardDrawn:
		opCode = OpCardDrawn
		p := ev.Payload.(app.CardDrawnPayload)
		payload = CardDrawnDTO{Seat: p.Seat, Source: p.Source.String(), Card: p.Card}
	case app.EventTurnCommitted:
		opCode = OpTurnCommitted
		p := ev.Payload.(app.TurnCommittedPayload)
		payload = TurnCommittedDTO{Seat: p.Seat, Moves: toMoveDTOs(p.Moves)}
	case app.EventPlayerLaidDown:
		opCode = OpPlayerLaidDown
		p := ev.Payload.(app.PlayerLaidDownPayload)
		payload = PlayerLaidDownDTO{Seat: p.Seat}
	case app.EventCardDiscarded:
		opCode = OpCardDiscarded
		p := ev.Payload.(app.CardDiscardedPayload)
		payload = CardDiscardedDTO{Seat: p.Seat, Card: p.Card, NextSeat: p.NextSeat}
	case app.EventHandEnded:
		opCode = OpHandEnded
		p := ev.Payload.(app.HandEndedPayload)

		// The hand is over: back to the lobby, next contract up.
		state.Round = nil
		state.PlayerOrder = nil
		state.BotWaitUntil = 0
		if state.RoundNumber < domain.RoundCount {
			state.RoundNumber++
		} else {
			state.RoundNumber = 1
		}
		mh.updateLabel(state, dispatcher, logger)

		payload = HandEndedDTO{
			HandID:     p.HandID.String(),
			WinnerSeat: p.WinnerSeat,
			Turns:      p.Turns,
			NextRound:  state.RoundNumber,
		}
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Targeted events go only to the seats' connected presences. If every
	// intended recipient is offline (a bot seat), nothing is sent.
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, seat := range ev.Recipients {
			if seat < 0 || seat >= len(state.PlayerOrder) {
				continue
			}
			if p, ok := state.Presences[state.PlayerOrder[seat]]; ok {
				recipients = append(recipients, p)
			}
		}
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// sendError sends a GameErrorDTO to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(GameErrorDTO{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal error event: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	matchState := "lobby"
	if state.Round != nil {
		matchState = "playing"
	}

	label, err := json.Marshal(MatchLabel{Open: state.GetOpenSeatsCount(), State: matchState})
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(label)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
