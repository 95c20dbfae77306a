package game

import (
	"context"
	"errors"
	"fmt"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/game"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	"github.com/half-nothing/adventurous-traveler/internal/utils"
	"strings"
	"unicode/utf8"
)

const playerNameMaxLength = 64

// StateMachine 游戏状态机, 同一个游戏的所有修改在进程内串行执行,
// 并在数据库层使用行锁与版本号防止并发覆盖
type StateMachine struct {
	logger        log.LoggerInterface
	config        *config.GameConfig
	gameOperation operation.GameOperationInterface
	random        Random
	events        *EventGenerator
	shop          *ShopResolver
	delivery      *DeliveryChecker
	locks         *utils.KeyedMutex
}

func NewStateMachine(
	logger log.LoggerInterface,
	gameConfig *config.GameConfig,
	gameOperation operation.GameOperationInterface,
	random Random,
) *StateMachine {
	return &StateMachine{
		logger:        logger,
		config:        gameConfig,
		gameOperation: gameOperation,
		random:        random,
		events:        NewEventGenerator(gameOperation, gameConfig.SelectionPolicy, random),
		shop:          NewShopResolver(gameOperation, gameConfig.Lootbox, random),
		delivery:      NewDeliveryChecker(gameOperation, gameConfig.ArtifactsToWin),
		locks:         utils.NewKeyedMutex(),
	}
}

// wrapError 将存储层错误转换为 *Error
func (machine *StateMachine) wrapError(operationName string, err error) error {
	if err == nil {
		return nil
	}
	var gameErr *Error
	if errors.As(err, &gameErr) {
		return gameErr
	}
	switch {
	case errors.Is(err, operation.ErrGameNotFound):
		return NotFoundError("game not found", err)
	case errors.Is(err, operation.ErrAirportNotFound):
		return NotFoundError("airport not found", err)
	case errors.Is(err, operation.ErrShopItemNotFound):
		return NotFoundError("shop item not found", err)
	case errors.Is(err, operation.ErrConcurrentUpdate):
		machine.logger.WarnF("%s: %v", operationName, err)
		return NewError(KindStore, "game was modified concurrently, please retry", err)
	case errors.Is(err, context.DeadlineExceeded):
		machine.logger.ErrorF("%s: store timeout: %v", operationName, err)
		return NewError(KindStore, "game store timeout", err)
	default:
		machine.logger.ErrorF("%s: store error: %v", operationName, err)
		return StoreError(err)
	}
}

// evaluateStatus 根据计数器推进胜负状态, 终局状态不会再改变
func (machine *StateMachine) evaluateStatus(game *operation.Game) (changed bool) {
	if !game.IsActive() {
		return false
	}
	switch {
	case game.ArtifactsDelivered >= machine.config.ArtifactsToWin:
		game.Status = operation.GameWon
	case game.FlightsTaken >= machine.config.MaxFlights:
		game.Status = operation.GameLost
	default:
		return false
	}
	machine.logger.InfoF("Game %s of %s finished with status %s", game.ID, game.PlayerName, game.Status)
	return true
}

func (machine *StateMachine) CreateGame(playerName string) (*GameState, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, ValidationError("player name must not be empty")
	}
	if utf8.RuneCountInString(playerName) > playerNameMaxLength {
		return nil, ValidationError("player name must not be longer than %d characters", playerNameMaxLength)
	}

	var state *GameState
	err := machine.gameOperation.Transaction(func(tx operation.GameTransactionInterface) error {
		airports, err := tx.GetAirports()
		if err != nil {
			return err
		}
		artifacts, err := tx.GetArtifacts()
		if err != nil {
			return err
		}
		if len(artifacts) < machine.config.ArtifactsToWin {
			return NotFoundError(fmt.Sprintf("at least %d artifacts are required, found %d",
				machine.config.ArtifactsToWin, len(artifacts)), nil)
		}
		artifacts = artifacts[:machine.config.ArtifactsToWin]
		if len(airports) < len(artifacts)+1 {
			return NotFoundError(fmt.Sprintf("at least %d airports are required, found %d",
				len(artifacts)+1, len(airports)), nil)
		}

		start := airports[machine.random.IntN(len(airports))]
		candidates := utils.Filter(airports, func(airport *operation.Airport) bool { return airport.ID != start.ID })
		shuffle(machine.random, candidates)

		game := machine.gameOperation.NewGame(playerName, start.ID,
			machine.config.StartMoney, machine.config.StartFuel, machine.config.StartMaxFuel)
		gameArtifacts := make([]*operation.GameArtifact, 0, len(artifacts))
		for i, artifact := range artifacts {
			gameArtifacts = append(gameArtifacts, machine.gameOperation.NewGameArtifact(game, artifact, candidates[i]))
		}
		if err := tx.CreateGame(game, gameArtifacts); err != nil {
			return err
		}
		gameLog := machine.gameOperation.NewGameLog(game, operation.LogEvent, fmt.Sprintf("Game started for %s", playerName))
		if err := tx.AddGameLog(gameLog); err != nil {
			return err
		}

		game.CurrentAirport = start
		state = &GameState{
			Game:            game,
			CurrentArtifact: gameArtifacts[0],
			Artifacts:       gameArtifacts,
			RecentLogs:      []*operation.GameLog{gameLog},
		}
		return nil
	})
	if err != nil {
		return nil, machine.wrapError("CreateGame", err)
	}
	machine.logger.InfoF("Game %s started for %s at %s", state.Game.ID, playerName, state.Game.CurrentAirport.Code)
	return state, nil
}

func (machine *StateMachine) Travel(gameId string, destinationAirportId uint) (*TravelResult, error) {
	unlock := machine.locks.Lock(gameId)
	defer unlock()

	var result *TravelResult
	err := machine.gameOperation.Transaction(func(tx operation.GameTransactionInterface) error {
		game, err := tx.LockGameById(gameId)
		if err != nil {
			return err
		}
		if !game.IsActive() {
			return InvalidStateError("game is already over (%s)", game.Status)
		}
		if game.FlightsTaken >= machine.config.MaxFlights {
			return InvalidStateError("max flights reached")
		}
		if destinationAirportId == game.CurrentAirportId {
			return ValidationError("already at the destination airport")
		}
		destination, err := tx.GetAirportById(destinationAirportId)
		if err != nil {
			return err
		}
		origin, err := tx.GetAirportById(game.CurrentAirportId)
		if err != nil {
			return err
		}

		distance := DistanceInKilometers(AirportPosition(origin), AirportPosition(destination))
		if distance < machine.config.MinFlightDistance {
			return ValidationError("flight of %d km is shorter than the minimum of %d km", distance, machine.config.MinFlightDistance)
		}
		fuelNeeded := FuelNeeded(distance, game.FuelEfficiencyBonus)
		if fuelNeeded > game.Fuel {
			return InsufficientResourceError("not enough fuel, need %d km but only %d km left", fuelNeeded, game.Fuel)
		}

		game.Fuel -= fuelNeeded
		game.CurrentAirportId = destination.ID
		game.FlightsTaken++
		flightLog := machine.gameOperation.NewGameLog(game, operation.LogFlight, fmt.Sprintf("Flew from %s to %s", origin.Code, destination.Code))
		flightLog.DistanceKm = distance
		flightLog.FuelChange = -fuelNeeded
		if err := tx.AddGameLog(flightLog); err != nil {
			return err
		}

		result = &TravelResult{Game: game, From: origin, To: destination, DistanceKm: distance, FuelCost: fuelNeeded}

		if machine.random.Float64() < machine.config.EventChance {
			eventTypes, err := tx.GetEventTypes()
			if err != nil {
				return err
			}
			if result.Event, err = machine.events.Trigger(tx, game, eventTypes); err != nil {
				return err
			}
		}

		if result.Delivery, err = machine.delivery.Check(tx, game, destination.ID); err != nil {
			return err
		}

		machine.evaluateStatus(game)
		if err := tx.SaveGame(game); err != nil {
			return err
		}
		game.CurrentAirport = destination
		return nil
	})
	if err != nil {
		return nil, machine.wrapError("Travel", err)
	}
	return result, nil
}

func (machine *StateMachine) Buy(gameId string, shopItemId uint) (*PurchaseResult, error) {
	unlock := machine.locks.Lock(gameId)
	defer unlock()

	var result *PurchaseResult
	err := machine.gameOperation.Transaction(func(tx operation.GameTransactionInterface) error {
		game, err := tx.LockGameById(gameId)
		if err != nil {
			return err
		}
		if !game.IsActive() {
			return InvalidStateError("game is already over (%s)", game.Status)
		}
		item, err := tx.GetShopItemById(shopItemId)
		if err != nil {
			return err
		}
		if game.Money < item.Price {
			return InsufficientResourceError("not enough money, %s costs %d but only %d left", item.Name, item.Price, game.Money)
		}
		if result, err = machine.shop.Resolve(tx, game, item); err != nil {
			return err
		}
		return tx.SaveGame(game)
	})
	if err != nil {
		return nil, machine.wrapError("Buy", err)
	}
	return result, nil
}

func (machine *StateMachine) GetCurrentState(gameId string) (*GameState, error) {
	unlock := machine.locks.Lock(gameId)
	defer unlock()

	state := &GameState{}
	err := machine.gameOperation.Transaction(func(tx operation.GameTransactionInterface) error {
		game, err := tx.LockGameById(gameId)
		if err != nil {
			return err
		}
		if machine.evaluateStatus(game) {
			if err := tx.SaveGame(game); err != nil {
				return err
			}
		}
		if game.CurrentAirport, err = tx.GetAirportById(game.CurrentAirportId); err != nil {
			return err
		}
		if state.Artifacts, err = tx.GetGameArtifacts(game.ID); err != nil {
			return err
		}
		state.CurrentArtifact = utils.Find(state.Artifacts, func(gameArtifact *operation.GameArtifact) bool {
			return gameArtifact.ArtifactOrder == game.CurrentArtifactNumber
		})
		if state.RecentLogs, err = tx.GetRecentGameLogs(game.ID, machine.config.RecentLogCount); err != nil {
			return err
		}
		state.Game = game
		return nil
	})
	if err != nil {
		return nil, machine.wrapError("GetCurrentState", err)
	}
	return state, nil
}
