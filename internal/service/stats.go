package service

import (
	"cmp"
	"context"
	"slices"

	"biolink/internal/model"

	"github.com/rs/zerolog/log"
)

// StatsService computes dashboard statistics from the full visit history
type StatsService struct {
	store       VisitStoreInterface
	accountName string
	recentLimit int
}

// NewStatsService creates a new Stats Service.
// recentLimit caps the visit listing; zero or less lists every visit.
func NewStatsService(store VisitStoreInterface, accountName string, recentLimit int) *StatsService {
	return &StatsService{
		store:       store,
		accountName: accountName,
		recentLimit: recentLimit,
	}
}

// Stats returns aggregate statistics over every stored visit
func (ss *StatsService) Stats(ctx context.Context) *model.Stats {
	return Aggregate(ss.history(ctx))
}

// Dashboard returns the statistics, ranked breakdowns and newest-first visit listing
func (ss *StatsService) Dashboard(ctx context.Context) *model.Dashboard {
	visits := ss.history(ctx)
	stats := Aggregate(visits)

	n := len(visits)
	if ss.recentLimit > 0 && n > ss.recentLimit {
		n = ss.recentLimit
	}
	recent := make([]model.VisitRow, 0, n)
	for i := len(visits) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, model.NewVisitRow(&visits[i]))
	}

	return &model.Dashboard{
		AccountName: ss.accountName,
		Stats:       stats,
		Countries:   RankCounts(stats.Countries),
		Devices:     RankCounts(stats.Devices),
		Recent:      recent,
	}
}

// history reads the store; a failed read is an empty history
func (ss *StatsService) history(ctx context.Context) []model.Visit {
	visits, err := ss.store.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read visit history")
		return nil
	}
	return visits
}

// Aggregate counts visits by country and device in a single pass
func Aggregate(visits []model.Visit) *model.Stats {
	stats := &model.Stats{
		TotalClicks: len(visits),
		Countries:   make(map[string]int),
		Devices:     make(map[string]int),
	}

	for i := range visits {
		stats.Countries[visits[i].Country]++
		stats.Devices[string(visits[i].Device)]++
	}

	stats.LeadingDevice = leadingKey(stats.Devices)
	return stats
}

// leadingKey returns the key with the highest count, the smallest key on a tie,
// or "N/A" for an empty map
func leadingKey(counts map[string]int) string {
	leading, best := model.NotAvailable, 0
	for key, count := range counts {
		if count > best || (count == best && key < leading) {
			leading, best = key, count
		}
	}
	return leading
}

// RankCounts orders a frequency map by descending count, then ascending key
func RankCounts(counts map[string]int) []model.CountStat {
	ranked := make([]model.CountStat, 0, len(counts))
	for key, count := range counts {
		ranked = append(ranked, model.CountStat{Key: key, Count: count})
	}

	slices.SortFunc(ranked, func(a, b model.CountStat) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return ranked
}
