package ranking

import (
	"math/rand/v2"
	"testing"

	"vehicle/finder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand int

func (f fixedRand) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func candidates(ids ...int64) []domain.VehicleCandidate {
	out := make([]domain.VehicleCandidate, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.VehicleCandidate{ID: id, Brand: "brand", Model: "model"})
	}
	return out
}

func ids(cs []domain.VehicleCandidate) []int64 {
	out := make([]int64, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name string
		in   []int64
		want []int64
	}{
		{"server order 3,1,2", []int64{3, 1, 2}, []int64{2, 1, 3}},
		{"server order 1,2,3", []int64{1, 2, 3}, []int64{2, 1, 3}},
		{"neither focal id present", []int64{5, 9}, []int64{5, 9}},
		{"others sorted ascending", []int64{9, 1, 4, 2, 7}, []int64{2, 1, 4, 7, 9}},
		{"only id 1", []int64{3, 1}, []int64{1, 3}},
		{"only id 2", []int64{4, 2, 3}, []int64{2, 3, 4}},
		{"empty", []int64{}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Order(candidates(tt.in...))))
		})
	}
}

func TestOrder_EachCandidateOnce(t *testing.T) {
	in := candidates(2, 1, 2, 1, 5)
	out := Order(in)

	require.Len(t, out, len(in))
	assert.Equal(t, []int64{2, 1, 1, 2, 5}, ids(out))
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	in := candidates(3, 1, 2)
	_ = Order(in)
	assert.Equal(t, []int64{3, 1, 2}, ids(in))
}

func TestMatchPercentage_Bands(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		p0 := MatchPercentage(0, rng)
		p1 := MatchPercentage(1, rng)
		p2 := MatchPercentage(2, rng)
		p7 := MatchPercentage(7, rng)

		assert.True(t, p0 >= 90 && p0 <= 100, "position 0 got %d", p0)
		assert.True(t, p1 >= 80 && p1 <= 90, "position 1 got %d", p1)
		assert.True(t, p2 >= 70 && p2 <= 80, "position 2 got %d", p2)
		assert.True(t, p7 >= 70 && p7 <= 80, "position 7 got %d", p7)
	}
}

func TestMatchPercentage_BandEdges(t *testing.T) {
	assert.Equal(t, 90, MatchPercentage(0, fixedRand(0)))
	assert.Equal(t, 100, MatchPercentage(0, fixedRand(10)))
	assert.Equal(t, 80, MatchPercentage(1, fixedRand(0)))
	assert.Equal(t, 90, MatchPercentage(1, fixedRand(10)))
	assert.Equal(t, 70, MatchPercentage(3, fixedRand(0)))
	assert.Equal(t, 80, MatchPercentage(3, fixedRand(10)))
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, domain.MatchTierHigh, TierFor(100))
	assert.Equal(t, domain.MatchTierHigh, TierFor(90))
	assert.Equal(t, domain.MatchTierMedium, TierFor(89))
	assert.Equal(t, domain.MatchTierMedium, TierFor(80))
	assert.Equal(t, domain.MatchTierLow, TierFor(79))
	assert.Equal(t, domain.MatchTierLow, TierFor(70))
}

func TestMedalFor_KeyedByID(t *testing.T) {
	assert.Equal(t, domain.MedalGold, MedalFor(1))
	assert.Equal(t, domain.MedalSilver, MedalFor(2))
	assert.Equal(t, domain.MedalBronze, MedalFor(3))
	assert.Equal(t, domain.MedalBronze, MedalFor(42))
	assert.Equal(t, domain.MedalBronze, MedalFor(0))
}

func TestRank(t *testing.T) {
	ranked := Rank(candidates(1, 2, 3), rand.New(rand.NewPCG(7, 7)))
	require.Len(t, ranked, 3)

	assert.Equal(t, int64(2), ranked[0].ID)
	assert.Equal(t, int64(1), ranked[1].ID)
	assert.Equal(t, int64(3), ranked[2].ID)

	// Display position and medal are independent derivations.
	assert.Equal(t, domain.MedalSilver, ranked[0].Medal)
	assert.Equal(t, domain.MedalGold, ranked[1].Medal)
	assert.Equal(t, domain.MedalBronze, ranked[2].Medal)

	for i, r := range ranked {
		assert.Equal(t, i+1, r.DisplayRank)
		assert.Equal(t, TierFor(r.MatchPercentage), r.MatchTier)
	}
	assert.Equal(t, domain.MatchTierHigh, ranked[0].MatchTier)
	assert.GreaterOrEqual(t, ranked[1].MatchPercentage, 80)
	assert.LessOrEqual(t, ranked[1].MatchPercentage, 90)
	assert.GreaterOrEqual(t, ranked[2].MatchPercentage, 70)
	assert.LessOrEqual(t, ranked[2].MatchPercentage, 80)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil, fixedRand(0)))
}

func TestRank_NilRandUsesDefault(t *testing.T) {
	ranked := Rank(candidates(5), nil)
	require.Len(t, ranked, 1)
	assert.GreaterOrEqual(t, ranked[0].MatchPercentage, 90)
}

func TestRank_StringIDsTakeNoFixedSlot(t *testing.T) {
	in := []domain.VehicleCandidate{
		{ID: 2, StringID: true, Brand: "Kia"},
		{ID: 1, Brand: "Toyota"},
		{ID: 3, Brand: "Hyundai"},
	}

	ranked := Rank(in, fixedRand(0))
	require.Len(t, ranked, 3)

	assert.Equal(t, "Toyota", ranked[0].Brand)
	assert.Equal(t, "Kia", ranked[1].Brand)
	assert.Equal(t, "Hyundai", ranked[2].Brand)

	assert.Equal(t, domain.MedalGold, ranked[0].Medal)
	assert.Equal(t, domain.MedalBronze, ranked[1].Medal)
}
