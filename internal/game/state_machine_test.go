package game

import (
	"strings"
	"sync"
	"testing"

	"github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/game"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGame(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.machine.CreateGame("   ")
	assertKind(t, KindValidation, err)
	_, err = env.machine.CreateGame(strings.Repeat("x", 65))
	assertKind(t, KindValidation, err)

	state := env.newGame(t)
	game := state.Game
	assert.Len(t, game.ID, 36)
	assert.Equal(t, "Amelia", game.PlayerName)
	assert.Equal(t, 10000, game.Money)
	assert.Equal(t, 2500, game.Fuel)
	assert.Equal(t, 5000, game.MaxFuelCapacity)
	assert.Equal(t, 0, game.FlightsTaken)
	assert.Equal(t, 0, game.ArtifactsDelivered)
	assert.Equal(t, 1, game.CurrentArtifactNumber)
	assert.Equal(t, operation.GameActive, game.Status)
	require.NotNil(t, game.CurrentAirport)

	require.Len(t, state.Artifacts, 10)
	deliveryAirports := make(map[uint]bool)
	for i, gameArtifact := range state.Artifacts {
		assert.Equal(t, i+1, gameArtifact.ArtifactOrder)
		assert.NotEqual(t, game.CurrentAirportId, gameArtifact.DeliveryAirportId)
		assert.False(t, deliveryAirports[gameArtifact.DeliveryAirportId], "delivery airports must be distinct")
		deliveryAirports[gameArtifact.DeliveryAirportId] = true
	}

	loaded := env.state(t, game.ID)
	assert.Equal(t, game.CurrentAirportId, loaded.Game.CurrentAirport.ID)
	require.NotNil(t, loaded.CurrentArtifact)
	assert.Equal(t, 1, loaded.CurrentArtifact.ArtifactOrder)
	assert.NotNil(t, loaded.CurrentArtifact.DeliveryAirport)
	require.Len(t, loaded.RecentLogs, 1)
	assert.Equal(t, "Game started for Amelia", loaded.RecentLogs[0].Description)
}

func TestCreateGameNeedsEnoughAirports(t *testing.T) {
	env := newTestEnv(t, withSeed(func(seed *operation.SeedData) {
		seed.Airports = seed.Airports[:10]
	}))

	_, err := env.machine.CreateGame("Amelia")

	assertKind(t, KindNotFound, err)
}

func TestCreateGameNeedsEnoughArtifacts(t *testing.T) {
	env := newTestEnv(t, withSeed(func(seed *operation.SeedData) {
		seed.Artifacts = seed.Artifacts[:9]
	}))

	_, err := env.machine.CreateGame("Amelia")

	assertKind(t, KindNotFound, err)
}

func TestTravelPreconditions(t *testing.T) {
	env := newTestEnv(t, noEvents())
	state := env.newGame(t)

	_, err := env.machine.Travel("00000000-0000-0000-0000-000000000000", state.Artifacts[0].DeliveryAirportId)
	assertKind(t, KindNotFound, err)

	_, err = env.machine.Travel(state.Game.ID, state.Game.CurrentAirportId)
	assertKind(t, KindValidation, err)

	_, err = env.machine.Travel(state.Game.ID, 100000)
	assertKind(t, KindNotFound, err)

	after := env.state(t, state.Game.ID)
	assert.Equal(t, 0, after.Game.FlightsTaken)
	assert.Equal(t, state.Game.Fuel, after.Game.Fuel)
}

func TestTravelRejectsShortFlights(t *testing.T) {
	env := newTestEnv(t, noEvents(), plentyOfFuel(), withSeed(func(seed *operation.SeedData) {
		seed.Airports = append(seed.Airports, &operation.Airport{
			Code: "TKU", Name: "Turku Airport", City: "Turku", Country: "Finland", Latitude: 60.5141, Longitude: 22.2628,
		})
	}))
	state := env.newGame(t)
	helsinki := env.airport(t, "HEL")
	turku := env.airport(t, "TKU")

	current := state.Game.CurrentAirport
	if current.ID != helsinki.ID && current.ID != turku.ID {
		_, err := env.machine.Travel(state.Game.ID, helsinki.ID)
		require.NoError(t, err)
		current = helsinki
	}
	target := helsinki
	if current.ID == helsinki.ID {
		target = turku
	}
	before := env.state(t, state.Game.ID).Game

	_, err := env.machine.Travel(state.Game.ID, target.ID)

	assertKind(t, KindValidation, err)
	after := env.state(t, state.Game.ID).Game
	assert.Equal(t, before.FlightsTaken, after.FlightsTaken)
	assert.Equal(t, before.Fuel, after.Fuel)
	assert.Equal(t, current.ID, after.CurrentAirportId)
}

func TestTravelInsufficientFuelDoesNotMutate(t *testing.T) {
	env := newTestEnv(t, noEvents(), withGameConfig(func(gameConfig *config.GameConfig) {
		gameConfig.StartFuel = 150
	}))
	state := env.newGame(t)
	destination := state.Artifacts[0].DeliveryAirport

	_, err := env.machine.Travel(state.Game.ID, destination.ID)

	assertKind(t, KindInsufficientResource, err)
	after := env.state(t, state.Game.ID)
	assert.Equal(t, 150, after.Game.Fuel)
	assert.Equal(t, 0, after.Game.FlightsTaken)
	assert.Equal(t, state.Game.CurrentAirportId, after.Game.CurrentAirportId)
	assert.Equal(t, 10000, after.Game.Money)
	assert.Len(t, after.RecentLogs, 1)
	assert.False(t, after.Artifacts[0].Delivered)
}

func TestTravelConsumesExactFuel(t *testing.T) {
	env := newTestEnv(t, noEvents(), plentyOfFuel())
	state := env.newGame(t)
	destination := env.unassignedAirports(t, state)[0]
	distance := DistanceInKilometers(AirportPosition(state.Game.CurrentAirport), AirportPosition(destination))

	result, err := env.machine.Travel(state.Game.ID, destination.ID)

	require.NoError(t, err)
	assert.Equal(t, distance, result.DistanceKm)
	assert.Equal(t, distance, result.FuelCost)
	assert.Nil(t, result.Event)
	assert.False(t, result.Delivery.Delivered)
	assert.Equal(t, 1, result.Game.FlightsTaken)
	assert.Equal(t, 1_000_000-distance, result.Game.Fuel)
	assert.Equal(t, destination.ID, result.Game.CurrentAirport.ID)

	after := env.state(t, state.Game.ID)
	assert.Equal(t, result.Game.Fuel, after.Game.Fuel)
	require.Len(t, after.RecentLogs, 2)
	flightLog := after.RecentLogs[0]
	assert.Equal(t, operation.LogFlight, flightLog.LogType)
	assert.Equal(t, "Flew from "+state.Game.CurrentAirport.Code+" to "+destination.Code, flightLog.Description)
	assert.Equal(t, distance, flightLog.DistanceKm)
	assert.Equal(t, -distance, flightLog.FuelChange)
}

func TestTravelAppliesFuelEfficiency(t *testing.T) {
	env := newTestEnv(t, noEvents(), plentyOfFuel())
	state := env.newGame(t)
	engines := env.shopItem(t, "Efficient Engines")
	_, err := env.machine.Buy(state.Game.ID, engines.ID)
	require.NoError(t, err)
	destination := env.unassignedAirports(t, state)[0]
	distance := DistanceInKilometers(AirportPosition(state.Game.CurrentAirport), AirportPosition(destination))

	result, err := env.machine.Travel(state.Game.ID, destination.ID)

	require.NoError(t, err)
	assert.Equal(t, FuelNeeded(distance, engines.EffectValue), result.FuelCost)
	assert.Equal(t, 1_000_000-result.FuelCost, result.Game.Fuel)
}

func TestTravelTriggersEvents(t *testing.T) {
	env := newTestEnv(t, plentyOfFuel(), withGameConfig(func(gameConfig *config.GameConfig) {
		gameConfig.EventChance = 1
	}))
	state := env.newGame(t)
	destination := env.unassignedAirports(t, state)[0]

	result, err := env.machine.Travel(state.Game.ID, destination.ID)

	require.NoError(t, err)
	require.NotNil(t, result.Event)
	assert.NotEmpty(t, result.Event.Name)
	after := env.state(t, state.Game.ID)
	assert.Equal(t, operation.LogEvent, after.RecentLogs[0].LogType)
	assert.Equal(t, 10000+result.Event.MoneyChange, after.Game.Money)
}

func TestDeliveryFollowsArtifactOrder(t *testing.T) {
	env := newTestEnv(t, noEvents(), plentyOfFuel())
	state := env.newGame(t)
	first := state.Artifacts[0]
	second := state.Artifacts[1]

	result, err := env.machine.Travel(state.Game.ID, second.DeliveryAirportId)
	require.NoError(t, err)
	assert.False(t, result.Delivery.Delivered)
	assert.Equal(t, 1, result.Game.CurrentArtifactNumber)
	assert.Equal(t, 0, result.Game.ArtifactsDelivered)

	moneyBefore := result.Game.Money
	result, err = env.machine.Travel(state.Game.ID, first.DeliveryAirportId)
	require.NoError(t, err)
	require.True(t, result.Delivery.Delivered)
	assert.Equal(t, first.Artifact.ID, result.Delivery.Artifact.ID)
	assert.Equal(t, first.Artifact.RewardMoney, result.Delivery.RewardMoney)
	assert.Equal(t, 2, result.Game.CurrentArtifactNumber)
	assert.Equal(t, 1, result.Game.ArtifactsDelivered)
	assert.Equal(t, moneyBefore+first.Artifact.RewardMoney, result.Game.Money)

	after := env.state(t, state.Game.ID)
	assert.True(t, after.Artifacts[0].Delivered)
	assert.NotNil(t, after.Artifacts[0].DeliveredAt)
	assert.Equal(t, 2, after.CurrentArtifact.ArtifactOrder)
	assert.Equal(t, "Delivered "+first.Artifact.Name+"!", after.RecentLogs[0].Description)
}

func TestDeliveryIsIdempotent(t *testing.T) {
	env := newTestEnv(t, noEvents(), plentyOfFuel())
	state := env.newGame(t)
	first := state.Artifacts[0]
	elsewhere := env.unassignedAirports(t, state)[0]

	_, err := env.machine.Travel(state.Game.ID, first.DeliveryAirportId)
	require.NoError(t, err)
	_, err = env.machine.Travel(state.Game.ID, elsewhere.ID)
	require.NoError(t, err)
	moneyBefore := env.state(t, state.Game.ID).Game.Money

	result, err := env.machine.Travel(state.Game.ID, first.DeliveryAirportId)

	require.NoError(t, err)
	assert.False(t, result.Delivery.Delivered)
	assert.Equal(t, 1, result.Game.ArtifactsDelivered)
	assert.Equal(t, moneyBefore, result.Game.Money)
}

func TestWinIsTerminal(t *testing.T) {
	env := newTestEnv(t, noEvents(), plentyOfFuel())
	state := env.newGame(t)

	var result *TravelResult
	var err error
	for _, gameArtifact := range state.Artifacts {
		result, err = env.machine.Travel(state.Game.ID, gameArtifact.DeliveryAirportId)
		require.NoError(t, err)
		require.True(t, result.Delivery.Delivered)
	}
	assert.Equal(t, operation.GameWon, result.Game.Status)
	assert.Equal(t, 10, result.Game.ArtifactsDelivered)
	assert.Equal(t, 10, result.Game.FlightsTaken)

	_, err = env.machine.Travel(state.Game.ID, state.Artifacts[0].DeliveryAirportId)
	assertKind(t, KindInvalidState, err)
	_, err = env.machine.Buy(state.Game.ID, env.shopItem(t, "Fuel Canister").ID)
	assertKind(t, KindInvalidState, err)

	final := env.state(t, state.Game.ID)
	assert.Equal(t, operation.GameWon, final.Game.Status)
	assert.Nil(t, final.CurrentArtifact)
	assert.Equal(t, result.Game.Money, final.Game.Money)
	assert.Equal(t, 10, final.Game.FlightsTaken)
}

func TestLoseAfterMaxFlights(t *testing.T) {
	env := newTestEnv(t, noEvents(), plentyOfFuel())
	state := env.newGame(t)
	spare := env.unassignedAirports(t, state)
	require.GreaterOrEqual(t, len(spare), 2)

	flights := 0
	for _, gameArtifact := range state.Artifacts[:7] {
		_, err := env.machine.Travel(state.Game.ID, gameArtifact.DeliveryAirportId)
		require.NoError(t, err)
		flights++
	}
	var result *TravelResult
	for flights < 20 {
		var err error
		result, err = env.machine.Travel(state.Game.ID, spare[flights%2].ID)
		require.NoError(t, err)
		flights++
	}

	assert.Equal(t, 7, result.Game.ArtifactsDelivered)
	assert.Equal(t, operation.GameLost, result.Game.Status)
	_, err := env.machine.Travel(state.Game.ID, state.Artifacts[7].DeliveryAirportId)
	assertKind(t, KindInvalidState, err)

	for i := 0; i < 3; i++ {
		again := env.state(t, state.Game.ID)
		assert.Equal(t, operation.GameLost, again.Game.Status)
		assert.Equal(t, 20, again.Game.FlightsTaken)
		assert.Equal(t, 7, again.Game.ArtifactsDelivered)
	}
}

func TestGetCurrentStateRepairsStaleStatus(t *testing.T) {
	env := newTestEnv(t)
	state := env.newGame(t)
	err := env.operations.GameOperation().Transaction(func(tx operation.GameTransactionInterface) error {
		game, err := tx.LockGameById(state.Game.ID)
		if err != nil {
			return err
		}
		game.FlightsTaken = 20
		game.ArtifactsDelivered = 7
		return tx.SaveGame(game)
	})
	require.NoError(t, err)

	first := env.state(t, state.Game.ID)
	second := env.state(t, state.Game.ID)

	assert.Equal(t, operation.GameLost, first.Game.Status)
	assert.Equal(t, operation.GameLost, second.Game.Status)
	assert.Equal(t, first.Game.Money, second.Game.Money)
}

func TestBuyEffects(t *testing.T) {
	env := newTestEnv(t)
	state := env.newGame(t)
	gameId := state.Game.ID

	canister := env.shopItem(t, "Fuel Canister")
	result, err := env.machine.Buy(gameId, canister.ID)
	require.NoError(t, err)
	assert.Equal(t, 2500+canister.EffectValue, result.Game.Fuel)
	assert.Equal(t, 10000-canister.Price, result.Game.Money)

	tanker := env.shopItem(t, "Fuel Tanker")
	for i := 0; i < 3; i++ {
		result, err = env.machine.Buy(gameId, tanker.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, 5000, result.Game.Fuel, "fuel is capped at max capacity")

	tanks := env.shopItem(t, "Extended Tanks")
	result, err = env.machine.Buy(gameId, tanks.ID)
	require.NoError(t, err)
	assert.Equal(t, 5000+tanks.EffectValue, result.Game.MaxFuelCapacity)

	card := env.shopItem(t, "Frequent Flyer Card")
	result, err = env.machine.Buy(gameId, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card.EffectValue, result.Game.FlightDiscountPercent)
	assert.Zero(t, result.LootboxMoney)

	after := env.state(t, gameId)
	assert.Equal(t, result.Game.Money, after.Game.Money)
	assert.Equal(t, operation.LogPurchase, after.RecentLogs[0].LogType)
	assert.Equal(t, "Bought "+card.Name, after.RecentLogs[0].Description)
	assert.Equal(t, -card.Price, after.RecentLogs[0].MoneyChange)
}

func TestBuyLootbox(t *testing.T) {
	env := newTestEnv(t)
	state := env.newGame(t)
	gold := env.shopItem(t, "Gold Lootbox")
	tier := env.config.Game.Lootbox.Gold

	result, err := env.machine.Buy(state.Game.ID, gold.ID)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.LootboxMoney, tier.Money.Min)
	assert.LessOrEqual(t, result.LootboxMoney, tier.Money.Max)
	assert.GreaterOrEqual(t, result.LootboxFuel, tier.Fuel.Min)
	assert.LessOrEqual(t, result.LootboxFuel, tier.Fuel.Max)
	assert.Equal(t, 10000-gold.Price+result.LootboxMoney, result.Game.Money)
	assert.Equal(t, min(5000, 2500+result.LootboxFuel), result.Game.Fuel)

	after := env.state(t, state.Game.ID)
	assert.Equal(t, result.LootboxMoney-gold.Price, after.RecentLogs[0].MoneyChange)
}

func TestBuyFailures(t *testing.T) {
	env := newTestEnv(t, withGameConfig(func(gameConfig *config.GameConfig) {
		gameConfig.StartMoney = 100
	}))
	state := env.newGame(t)

	_, err := env.machine.Buy(state.Game.ID, 100000)
	assertKind(t, KindNotFound, err)
	_, err = env.machine.Buy("missing", env.shopItem(t, "Fuel Canister").ID)
	assertKind(t, KindNotFound, err)
	_, err = env.machine.Buy(state.Game.ID, env.shopItem(t, "Fuel Canister").ID)
	assertKind(t, KindInsufficientResource, err)

	after := env.state(t, state.Game.ID)
	assert.Equal(t, 100, after.Game.Money)
	assert.Equal(t, 2500, after.Game.Fuel)
	assert.Len(t, after.RecentLogs, 1)
}

func TestConcurrentTravelKeepsConsistentFuel(t *testing.T) {
	env := newTestEnv(t, noEvents(), withGameConfig(func(gameConfig *config.GameConfig) {
		gameConfig.StartFuel = 20000
		gameConfig.StartMaxFuel = 20000
	}))
	state := env.newGame(t)
	destinations := env.unassignedAirports(t, state)
	// 第二个状态机绕过进程内的锁, 只依赖数据库层的串行化
	other := NewStateMachine(env.logger, env.config.Game, env.operations.GameOperation(), NewRandom(7))

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	fuelSpent := 0
	for i, destination := range destinations {
		machine := env.machine
		if i%2 == 1 {
			machine = other
		}
		wg.Add(1)
		go func(machine *StateMachine, destinationId uint) {
			defer wg.Done()
			result, err := machine.Travel(state.Game.ID, destinationId)
			if err != nil {
				kind := KindOf(err)
				assert.Contains(t, []ErrorKind{KindValidation, KindInsufficientResource, KindStore}, kind, "%v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			successes++
			fuelSpent += result.FuelCost
		}(machine, destination.ID)
	}
	wg.Wait()

	after := env.state(t, state.Game.ID)
	assert.GreaterOrEqual(t, successes, 1)
	assert.Equal(t, successes, after.Game.FlightsTaken)
	assert.Equal(t, 20000-fuelSpent, after.Game.Fuel)
	assert.GreaterOrEqual(t, after.Game.Fuel, 0)
}
