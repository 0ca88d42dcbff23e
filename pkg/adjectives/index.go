package adjectives

import "animalscraper/pkg/models"

// Index maps each collateral adjective to the animals sharing it. Keys keep
// the order in which they were first seen; animals keep row order.
type Index struct {
	keys    []string
	animals map[string][]models.Animal
}

// BuildIndex folds animals into an Index. Animals are not deduplicated, and
// an animal without adjectives contributes nothing.
func BuildIndex(animals []models.Animal) *Index {
	idx := &Index{animals: make(map[string][]models.Animal)}
	for _, animal := range animals {
		if !animal.HasAdjectives() {
			continue
		}
		for _, adj := range animal.CollateralAdjectives {
			if _, seen := idx.animals[adj]; !seen {
				idx.keys = append(idx.keys, adj)
			}
			idx.animals[adj] = append(idx.animals[adj], animal)
		}
	}
	return idx
}

// Keys returns the adjectives in first-seen order
func (i *Index) Keys() []string {
	keys := make([]string, len(i.keys))
	copy(keys, i.keys)
	return keys
}

// Animals returns the animals sharing adj, in row order
func (i *Index) Animals(adj string) []models.Animal {
	return i.animals[adj]
}

// Len is the number of distinct adjectives
func (i *Index) Len() int {
	return len(i.keys)
}

// Map returns the index as a plain map
func (i *Index) Map() map[string][]models.Animal {
	m := make(map[string][]models.Animal, len(i.animals))
	for k, v := range i.animals {
		m[k] = append([]models.Animal(nil), v...)
	}
	return m
}

// Names returns the animal names per adjective, convenient for reports
func (i *Index) Names(adj string) []string {
	animals := i.animals[adj]
	names := make([]string, len(animals))
	for n, a := range animals {
		names[n] = a.Name
	}
	return names
}
