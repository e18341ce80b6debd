package ranking

import (
	"math/rand/v2"
	"sort"

	"vehicle/finder/internal/domain"
)

const (
	focalID  = 2
	centerID = 1
)

// Rand is the random source used for match percentages.
type Rand interface {
	IntN(n int) int
}

// DefaultRand draws from the process-wide generator.
var DefaultRand Rand = globalRand{}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Order returns the display order: id 2 first, id 1 second, everything else
// by ascending id. Only numeric ids take the fixed slots. The input slice is
// not modified.
func Order(candidates []domain.VehicleCandidate) []domain.VehicleCandidate {
	out := make([]domain.VehicleCandidate, 0, len(candidates))
	rest := make([]domain.VehicleCandidate, 0, len(candidates))

	var focal, center *domain.VehicleCandidate
	for i := range candidates {
		c := candidates[i]
		id, numeric := c.NumericID()
		switch {
		case numeric && id == focalID && focal == nil:
			focal = &c
		case numeric && id == centerID && center == nil:
			center = &c
		default:
			rest = append(rest, c)
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].ID < rest[j].ID
	})

	if focal != nil {
		out = append(out, *focal)
	}
	if center != nil {
		out = append(out, *center)
	}
	return append(out, rest...)
}

// MatchPercentage draws a score for a display position. Positions past the
// second share the lowest band.
func MatchPercentage(position int, rng Rand) int {
	if rng == nil {
		rng = DefaultRand
	}
	// Each band is inclusive on both ends, hence 11 values.
	draw := rng.IntN(11)
	switch position {
	case 0:
		return 90 + draw
	case 1:
		return 80 + draw
	default:
		return 70 + draw
	}
}

func TierFor(percentage int) domain.MatchTier {
	switch {
	case percentage >= 90:
		return domain.MatchTierHigh
	case percentage >= 80:
		return domain.MatchTierMedium
	default:
		return domain.MatchTierLow
	}
}

// MedalFor keys the medal by the candidate's own id, not by display position.
func MedalFor(id int64) domain.Medal {
	switch id {
	case 1:
		return domain.MedalGold
	case 2:
		return domain.MedalSilver
	default:
		return domain.MedalBronze
	}
}

func medalOf(c domain.VehicleCandidate) domain.Medal {
	if id, numeric := c.NumericID(); numeric {
		return MedalFor(id)
	}
	return domain.MedalBronze
}

// Rank orders the candidates for display and annotates each one.
func Rank(candidates []domain.VehicleCandidate, rng Rand) []domain.RankedCandidate {
	ordered := Order(candidates)
	ranked := make([]domain.RankedCandidate, 0, len(ordered))
	for i, c := range ordered {
		pct := MatchPercentage(i, rng)
		ranked = append(ranked, domain.RankedCandidate{
			VehicleCandidate: c,
			DisplayRank:      i + 1,
			MatchPercentage:  pct,
			MatchTier:        TierFor(pct),
			Medal:            medalOf(c),
		})
	}
	return ranked
}
