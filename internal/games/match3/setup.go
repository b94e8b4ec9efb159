package match3

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/games/match3/board"
	"github.com/vovakirdan/tilematch/internal/games/match3/engine"
)

// boardRetries is how many fresh boards are dealt before one without a
// valid swap is accepted.
const boardRetries = 32

// Setup is a freshly dealt board for one variant.
type Setup struct {
	Variant config.VariantConfig // Resolved, difficulty applied
	Engine  *engine.Engine
}

// NewSetup deals a board for the variant and wraps it in an engine that
// presents through p. The same settings and seed always deal the same board.
func NewSetup(s Settings, variantID string, seed int64, p engine.Presenter) (*Setup, error) {
	v, ok := s.Config.Variant(variantID)
	if !ok {
		return nil, fmt.Errorf("match3: unknown variant %q", variantID)
	}
	v = s.Config.Resolve(v)
	config.ApplyMatch3Preset(&v, s.Difficulty, len(s.Config.Items))

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|1))
	catalog, err := board.NewCatalog(Items(s.Config.Items[:v.Items]), rng)
	if err != nil {
		return nil, fmt.Errorf("match3: catalog: %w", err)
	}

	minMatch := s.Config.Rules.MinMatch
	grid, err := dealBoard(v.Width, v.Height, catalog, minMatch, s.Config.Rules.SettleOnSetup)
	if err != nil {
		return nil, err
	}

	logger := s.Logger
	if logger != nil {
		logger = logger.With("game", variantID)
	}
	eng, err := engine.New(grid, catalog, p,
		engine.WithLogger(logger),
		engine.WithMinMatch(minMatch),
		engine.WithRemoteSwap(s.Config.Rules.AllowRemoteSwap),
	)
	if err != nil {
		return nil, fmt.Errorf("match3: engine: %w", err)
	}

	return &Setup{Variant: v, Engine: eng}, nil
}

// dealBoard draws boards until one is settled and has at least one swap.
func dealBoard(w, h int, catalog board.Catalog, minMatch int, settle bool) (*board.Grid, error) {
	var grid *board.Grid
	for range boardRetries {
		var err error
		grid, err = board.NewGrid(w, h, catalog)
		if err != nil {
			return nil, fmt.Errorf("match3: grid: %w", err)
		}
		if settle {
			if err := board.Settle(grid, catalog, minMatch); err != nil {
				continue
			}
		}
		if len(board.FindSwaps(grid, minMatch)) > 0 {
			return grid, nil
		}
	}
	return grid, nil
}
