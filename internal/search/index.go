package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"kirana_back_end/internal/models"
)

// Index — index de recherche floue construit une seule fois à partir du
// catalogue complet. Champs indexés : name, description, category, sku.
type Index struct {
	products []models.Product
}

func NewIndex(products []models.Product) *Index {
	idx := &Index{products: make([]models.Product, len(products))}
	copy(idx.products, products)
	return idx
}

type scored struct {
	product models.Product
	rank    int
	pos     int
}

// Search — requête vide ou blanche : catalogue complet dans l'ordre
// d'origine. Sinon, produits correspondants triés du meilleur match au
// moins bon. Pas de limite côté index, les appelants tronquent.
func (idx *Index) Search(query string) []models.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]models.Product, len(idx.products))
		copy(out, idx.products)
		return out
	}

	var results []scored
	for i, p := range idx.products {
		rank := bestRank(query, p.Name, p.Description, p.Category, p.SKU)
		if rank < 0 {
			continue
		}
		results = append(results, scored{product: p, rank: rank, pos: i})
	}

	// Tri stable : meilleur rang d'abord, ordre catalogue à rang égal
	sort.Slice(results, func(a, b int) bool {
		if results[a].rank != results[b].rank {
			return results[a].rank < results[b].rank
		}
		return results[a].pos < results[b].pos
	})

	out := make([]models.Product, len(results))
	for i, r := range results {
		out[i] = r.product
	}
	return out
}

// bestRank — meilleur rang (distance, plus petit = plus pertinent) parmi
// les champs. -1 si aucun champ ne matche.
func bestRank(query string, fields ...string) int {
	best := -1
	for _, f := range fields {
		rank := fuzzy.RankMatchNormalizedFold(query, f)
		if rank < 0 {
			continue
		}
		if best < 0 || rank < best {
			best = rank
		}
	}
	return best
}
