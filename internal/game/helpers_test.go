package game

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/half-nothing/adventurous-traveler/internal/base"
	"github.com/half-nothing/adventurous-traveler/internal/database"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/game"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	machine    *StateMachine
	operations *operation.DatabaseOperations
	config     *config.Config
	logger     *base.Logger
}

type envOption func(cfg *config.Config, seed *operation.SeedData)

func withGameConfig(mutate func(gameConfig *config.GameConfig)) envOption {
	return func(cfg *config.Config, _ *operation.SeedData) { mutate(cfg.Game) }
}

func withSeed(mutate func(seed *operation.SeedData)) envOption {
	return func(_ *config.Config, seed *operation.SeedData) { mutate(seed) }
}

// noEvents 关闭随机事件, 便于精确断言燃油变化
func noEvents() envOption {
	return withGameConfig(func(gameConfig *config.GameConfig) { gameConfig.EventChance = 0 })
}

func plentyOfFuel() envOption {
	return withGameConfig(func(gameConfig *config.GameConfig) {
		gameConfig.StartFuel = 1_000_000
		gameConfig.StartMaxFuel = 1_000_000
	})
}

func newTestEnv(t *testing.T, options ...envOption) *testEnv {
	t.Helper()
	logger := base.NewLoggerWithOutput(io.Discard)
	logger.Init(false)

	cfg := config.DefaultConfig()
	cfg.Database.Database = filepath.Join(t.TempDir(), "traveler.db")
	seed, err := database.LoadSeedData(logger, cfg.Game)
	require.NoError(t, err)
	for _, option := range options {
		option(cfg, seed)
	}
	result := cfg.CheckValid(logger)
	require.False(t, result.IsFail(), "%v", result.Error())

	closer, operations, err := database.ConnectDatabase(logger, cfg, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Invoke(context.Background()) })

	_, err = operations.ReferenceOperation().SeedReferenceData(seed)
	require.NoError(t, err)

	return &testEnv{
		machine:    NewStateMachine(logger, cfg.Game, operations.GameOperation(), NewRandom(42)),
		operations: operations,
		config:     cfg,
		logger:     logger,
	}
}

func (env *testEnv) newGame(t *testing.T) *GameState {
	t.Helper()
	state, err := env.machine.CreateGame("Amelia")
	require.NoError(t, err)
	return state
}

func (env *testEnv) state(t *testing.T, gameId string) *GameState {
	t.Helper()
	state, err := env.machine.GetCurrentState(gameId)
	require.NoError(t, err)
	return state
}

func (env *testEnv) airport(t *testing.T, code string) *operation.Airport {
	t.Helper()
	airports, err := env.operations.ReferenceOperation().GetAirports()
	require.NoError(t, err)
	for _, airport := range airports {
		if airport.Code == code {
			return airport
		}
	}
	t.Fatalf("airport %s not seeded", code)
	return nil
}

func (env *testEnv) shopItem(t *testing.T, name string) *operation.ShopItem {
	t.Helper()
	items, err := env.operations.ReferenceOperation().GetShopItems()
	require.NoError(t, err)
	for _, item := range items {
		if item.Name == name {
			return item
		}
	}
	t.Fatalf("shop item %s not seeded", name)
	return nil
}

// unassignedAirports 返回既不是起点也不是任何交付地点的机场
func (env *testEnv) unassignedAirports(t *testing.T, state *GameState) []*operation.Airport {
	t.Helper()
	used := map[uint]bool{state.Game.CurrentAirportId: true}
	for _, gameArtifact := range state.Artifacts {
		used[gameArtifact.DeliveryAirportId] = true
	}
	airports, err := env.operations.ReferenceOperation().GetAirports()
	require.NoError(t, err)
	result := make([]*operation.Airport, 0)
	for _, airport := range airports {
		if !used[airport.ID] {
			result = append(result, airport)
		}
	}
	return result
}

func assertKind(t *testing.T, expected ErrorKind, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, expected, KindOf(err), "unexpected error: %v", err)
}
