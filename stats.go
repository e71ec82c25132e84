package robinmap

type Stats struct {
	Size       int
	Capacity   int
	LoadFactor float64

	MaxDisplacement  int
	MeanDisplacement float64

	// Histogram[d] is the number of entries sitting d slots away from their home bucket.
	Histogram []int
}

// Stats scans the whole table, don't call it on a hot path.
func (t *table[K, V]) Stats() Stats {
	stats := Stats{
		Size:     t.size,
		Capacity: len(t.slots),
	}

	if stats.Capacity > 0 {
		stats.LoadFactor = float64(t.size) / float64(stats.Capacity)
	}

	var total int
	for i := range t.slots {
		s := &t.slots[i]
		if s.isEmpty() {
			continue
		}

		d := int(s.dist)
		for len(stats.Histogram) <= d {
			stats.Histogram = append(stats.Histogram, 0)
		}

		stats.Histogram[d]++
		stats.MaxDisplacement = max(stats.MaxDisplacement, d)
		total += d
	}

	if t.size > 0 {
		stats.MeanDisplacement = float64(total) / float64(t.size)
	}

	return stats
}
