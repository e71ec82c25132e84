package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/homier/robinmap"
	"github.com/homier/robinmap/internal/keygen"
	"github.com/homier/robinmap/internal/linear"
)

type Report struct {
	Keys int

	RobinHood robinmap.Stats

	LinearMax  int
	LinearMean float64
}

// Probe fills a Robin Hood map and a linear probing table of the same
// final capacity with the configured key set and compares displacement.
func Probe(cfg Config, logger *zap.Logger) (Report, error) {
	dist, err := keygen.ParseDist(cfg.Dist)
	if err != nil {
		return Report{}, err
	}

	hash, err := keygen.Hasher(cfg.Hash)
	if err != nil {
		return Report{}, err
	}

	keys := keygen.Generate(dist, cfg.Keys, cfg.Seed)
	logger.Debug("keys generated", zap.Int("count", len(keys)), zap.String("dist", cfg.Dist))

	m := robinmap.New(cfg.Capacity, robinmap.WithHashFunc[uint64, uint64](hash))
	defer m.Close()

	lastCap := m.Cap()
	for i, k := range keys {
		if _, _, err := m.Insert(k, uint64(i)); err != nil {
			return Report{}, fmt.Errorf("insert key %d: %w", k, err)
		}

		if m.Cap() != lastCap {
			logger.Debug("map grew", zap.Int("from", lastCap), zap.Int("to", m.Cap()), zap.Int("size", m.Len()))
			lastCap = m.Cap()
		}
	}

	for i, k := range keys {
		if v, ok := m.Get(k); !ok || v != uint64(i) {
			return Report{}, fmt.Errorf("key %d lost after insert", k)
		}
	}

	lp := linear.New(m.Cap(), hash)
	for _, k := range keys {
		if _, err := lp.Insert(k); err != nil {
			return Report{}, fmt.Errorf("linear baseline: %w", err)
		}
	}

	report := Report{
		Keys:      len(keys),
		RobinHood: m.Stats(),
	}
	report.LinearMax, report.LinearMean = lp.Displacement()

	logger.Info("probe finished",
		zap.Int("size", report.RobinHood.Size),
		zap.Int("capacity", report.RobinHood.Capacity),
		zap.Int("robinhood_max", report.RobinHood.MaxDisplacement),
		zap.Int("linear_max", report.LinearMax),
	)

	return report, nil
}

func (r Report) WriteTo(w io.Writer) (int64, error) {
	var n int64

	write := func(format string, args ...any) error {
		c, err := fmt.Fprintf(w, format, args...)
		n += int64(c)
		return err
	}

	s := r.RobinHood
	if err := write("keys        %d\ncapacity    %d\nload factor %.3f\n\n", r.Keys, s.Capacity, s.LoadFactor); err != nil {
		return n, err
	}

	if err := write("%-10s %8s %8s\n", "", "max", "mean"); err != nil {
		return n, err
	}

	if err := write("%-10s %8d %8.3f\n", "robinhood", s.MaxDisplacement, s.MeanDisplacement); err != nil {
		return n, err
	}

	if err := write("%-10s %8d %8.3f\n\n", "linear", r.LinearMax, r.LinearMean); err != nil {
		return n, err
	}

	if err := write("displacement histogram\n"); err != nil {
		return n, err
	}

	for d, count := range s.Histogram {
		if count == 0 {
			continue
		}

		if err := write("%4d %d\n", d, count); err != nil {
			return n, err
		}
	}

	return n, nil
}
