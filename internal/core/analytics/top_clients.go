// Package analytics turns the raw aggregate rows read from the store into
// the reports shown to the user. Nothing here touches the database.
package analytics

import (
	"sort"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
)

// DefaultTopClients is how many clients the top-clients report shows when
// no limit is given.
const DefaultTopClients = 5

// TopClients ranks clients by order count, highest first, and keeps the
// first n. Clients with equal counts keep their input order, so for a fixed
// table state the result is deterministic and always a prefix of the full
// ranking. n <= 0 means DefaultTopClients.
func TopClients(counts []domain.ClientOrderCount, n int) []domain.ClientOrderCount {
	if n <= 0 {
		n = DefaultTopClients
	}

	ranked := make([]domain.ClientOrderCount, len(counts))
	copy(ranked, counts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Orders > ranked[j].Orders
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
