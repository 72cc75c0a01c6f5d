package scoring

import (
	"math"
	"sort"

	"github.com/Cornjebus/junie/internal/types"
)

// DefaultTopN is the default size of the final recommendation list.
const DefaultTopN = 5

// scoreEpsilon bounds floating-point noise when comparing totals. Totals
// within epsilon are ties and keep their retrieval-stage relative order.
const scoreEpsilon = 1e-9

// Rank orders candidates by descending total score and truncates to topN.
// The sort is stable: ties favor the candidate retrieval ranked higher,
// since retrieval is similarity-ordered. Ranking is fully deterministic for
// identical inputs.
func Rank(candidates []types.ScoredCandidate, topN int) []types.ScoredCandidate {
	if topN < 0 {
		topN = DefaultTopN
	}

	ranked := make([]types.ScoredCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		di := ranked[i].Scores.Total - ranked[j].Scores.Total
		if math.Abs(di) <= scoreEpsilon {
			return false // tie: preserve retrieval order
		}
		return di > 0
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
