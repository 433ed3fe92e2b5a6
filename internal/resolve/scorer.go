package resolve

import (
	"math"
	"sort"

	"cardmatch/internal/model"
)

// rankCandidates scores and orders fetched candidates best-first,
// returning at most topK. name_score is the token-sort name similarity
// scaled to [0,100] (0 when the input name is empty); number_score is
// 100 only when the candidate's own normalized number equals the target.
// Ties keep fetch order (stable sort) rather than introducing another
// tie-break field: the number filter already narrows candidates sharply.
func rankCandidates(name string, target int, hasTarget bool, candidates []model.CardEntry, topK int) []model.RankedCandidate {
	if len(candidates) == 0 {
		return nil
	}

	ranked := make([]model.RankedCandidate, 0, len(candidates))
	for _, card := range candidates {
		nameScore := 0.0
		if name != "" {
			nameScore = nameSimilarity(name, card.Name) * 100
		}

		numberScore := 0.0
		if hasTarget {
			if candidateNum, ok := ExtractNumber(card.Number); ok && candidateNum == target {
				numberScore = 100
			}
		}

		combined := int(math.Round(NameWeight*nameScore + NumberWeight*numberScore))

		ranked = append(ranked, model.RankedCandidate{
			Score:    combined,
			Name:     card.Name,
			Number:   card.Number,
			URL:      card.URL,
			SetSlug:  card.SetSlug,
			SetURL:   card.SetURL,
			Ungraded: card.Ungraded,
			Grade9:   card.Grade9,
			PSA10:    card.PSA10,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}
