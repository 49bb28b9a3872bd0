package schedule

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aykutsen/groupstage/internal/domain/game"
	"github.com/aykutsen/groupstage/internal/domain/team"
)

var (
	// ErrRosterSize rejects generation for any roster that does not match the
	// template's slot count. Configuration error, not an internal fault.
	ErrRosterSize = errors.New("roster must contain exactly four teams")

	// ErrUnboundSlot signals a template entry referencing a slot with no
	// bound team. Cannot happen with a valid roster; checked anyway so a bad
	// template never produces a half-built schedule.
	ErrUnboundSlot = errors.New("template references an unbound slot")
)

const (
	// SlotCount is the number of abstract positions the pairing calendar is
	// written against. Teams are bound to slots only at generation time.
	SlotCount = 4

	// TotalWeeks and MatchesPerWeek are fixed by the template shape below.
	TotalWeeks     = 6
	MatchesPerWeek = 2
)

type pairing struct {
	home, away int
}

// rounds is the double round-robin pairing calendar over slots 0..3. The
// second half mirrors the first with home and away swapped, so every slot
// plays 6 games (3 home, 3 away), meets every other slot exactly twice, and
// appears exactly once per week.
var rounds = [TotalWeeks][MatchesPerWeek]pairing{
	{{0, 1}, {2, 3}},
	{{1, 2}, {3, 0}},
	{{0, 2}, {1, 3}},
	{{1, 0}, {3, 2}},
	{{2, 1}, {0, 3}},
	{{2, 0}, {3, 1}},
}

// IDGenerator mints opaque fixture ids.
type IDGenerator interface {
	NewID() (string, error)
}

// Generate binds the four teams to the template's slots with a uniformly
// random permutation and expands the calendar into a concrete fixture list.
// The calendar itself never changes; only the slot binding does, so schedule
// balance holds by construction while matchup order differs per call.
func Generate(teams []team.Team, ids IDGenerator, rng *rand.Rand) ([]game.Game, error) {
	if len(teams) != SlotCount {
		return nil, fmt.Errorf("%w: got %d", ErrRosterSize, len(teams))
	}

	slots := make([]team.Team, SlotCount)
	for slot, idx := range rng.Perm(SlotCount) {
		slots[slot] = teams[idx]
	}

	games := make([]game.Game, 0, TotalWeeks*MatchesPerWeek)
	for week, round := range rounds {
		for _, p := range round {
			if p.home >= len(slots) || p.away >= len(slots) {
				return nil, fmt.Errorf("%w: week %d pairing (%d,%d)", ErrUnboundSlot, week+1, p.home, p.away)
			}

			id, err := ids.NewID()
			if err != nil {
				return nil, fmt.Errorf("mint fixture id: %w", err)
			}

			games = append(games, game.Game{
				ID:         id,
				Week:       week + 1,
				HomeTeamID: slots[p.home].ID,
				AwayTeamID: slots[p.away].ID,
			})
		}
	}

	return games, nil
}
