package product

import (
	"context"
	"fmt"
	"sort"
)

// Resolution bundles a requested product with its language equivalents.
type Resolution struct {
	Original    Product
	Equivalents []Product
}

// Display picks the record to show for a target language: the original when
// its language matches, otherwise the first equivalent in that language
// (lowest ID wins), otherwise the original. The boolean reports whether a
// language match was found.
func (r *Resolution) Display(targetLanguage string) (*Product, bool) {
	if r.Original.LanguageCode == targetLanguage {
		return &r.Original, true
	}
	for i := range r.Equivalents {
		if r.Equivalents[i].LanguageCode == targetLanguage {
			return &r.Equivalents[i], true
		}
	}
	return &r.Original, false
}

// Resolver resolves products across languages in batched passes.
type Resolver struct {
	repo Repository
}

// NewResolver creates a new Resolver.
func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve returns, for each requested product ID, the original record plus
// all equivalent records. The whole batch costs three repository round-trips
// regardless of input size: originals, equivalency links, equivalent details.
// IDs absent from the store are omitted from the result.
func (r *Resolver) Resolve(ctx context.Context, ids []int64, targetLanguage string) (map[int64]*Resolution, error) {
	result := make(map[int64]*Resolution, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	originals, err := r.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch originals: %w", err)
	}
	for _, p := range originals {
		result[p.ID] = &Resolution{Original: p}
	}
	if len(result) == 0 {
		return result, nil
	}

	links, err := r.repo.GetEquivalencyLinks(ctx, keys(result))
	if err != nil {
		return nil, fmt.Errorf("fetch equivalency links: %w", err)
	}

	// Union both sides of the symmetric relation into per-input candidate
	// sets. Self-loops (legacy data) are treated as no-op equivalencies.
	candidates := make(map[int64]map[int64]struct{})
	for _, link := range links {
		addCandidate(candidates, result, link.ProductAID, link.ProductBID)
		addCandidate(candidates, result, link.ProductBID, link.ProductAID)
	}

	needed := make(map[int64]struct{})
	for _, set := range candidates {
		for id := range set {
			needed[id] = struct{}{}
		}
	}
	if len(needed) == 0 {
		return result, nil
	}

	equivalents, err := r.repo.GetByIDs(ctx, setToSlice(needed))
	if err != nil {
		return nil, fmt.Errorf("fetch equivalents: %w", err)
	}
	byID := make(map[int64]Product, len(equivalents))
	for _, p := range equivalents {
		byID[p.ID] = p
	}

	for inputID, set := range candidates {
		res := result[inputID]
		for candidateID := range set {
			if p, ok := byID[candidateID]; ok {
				res.Equivalents = append(res.Equivalents, p)
			}
		}
		// Lowest ID first keeps same-language tie-breaks deterministic.
		sort.Slice(res.Equivalents, func(i, j int) bool {
			return res.Equivalents[i].ID < res.Equivalents[j].ID
		})
	}

	return result, nil
}

func addCandidate(candidates map[int64]map[int64]struct{}, result map[int64]*Resolution, inputID, candidateID int64) {
	if _, requested := result[inputID]; !requested {
		return
	}
	if inputID == candidateID {
		return
	}
	set, ok := candidates[inputID]
	if !ok {
		set = make(map[int64]struct{})
		candidates[inputID] = set
	}
	set[candidateID] = struct{}{}
}

func keys(m map[int64]*Resolution) []int64 {
	out := make([]int64, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func setToSlice(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
