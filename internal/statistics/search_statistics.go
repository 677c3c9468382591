// Package statistics aggregates search history into per-month counts.
package statistics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hanlexi/hanlexi/internal/history"
)

// SearchStatistics holds search counts for one month.
type SearchStatistics struct {
	Period         string // "2026-08"
	SearchCount    int    // Total recorded searches
	UniqueQueries  int    // Distinct queries, case-insensitive
	ChineseQueries int    // Searches entered in Chinese script
}

// AggregateStatistics holds totals across all periods with global unique counts.
type AggregateStatistics struct {
	SearchCount    int
	UniqueQueries  int // Distinct queries, deduplicated across periods
	ChineseQueries int
}

// StatisticsResult holds both per-period and aggregate statistics.
type StatisticsResult struct {
	Periods   []SearchStatistics
	Aggregate AggregateStatistics
}

type periodData struct {
	searchTotal   int
	uniqueQueries map[string]struct{}
	chineseTotal  int
}

// CalculateStatistics aggregates history entries into monthly statistics.
// It accepts optional year and month filters, 0 meaning no filter. Entries
// without a timestamp are skipped.
func CalculateStatistics(entries []history.Entry, year, month int) StatisticsResult {
	stats := make(map[string]*periodData)
	globalUniqueQueries := make(map[string]struct{})

	var totalSearches, totalChinese int
	for _, entry := range entries {
		if entry.CreatedAt.IsZero() {
			continue
		}

		entryYear := entry.CreatedAt.Year()
		entryMonth := int(entry.CreatedAt.Month())
		if !matchesFilter(entryYear, entryMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", entryYear, entryMonth)
		ensurePeriodExists(stats, period)

		key := strings.ToLower(entry.Query)
		stats[period].searchTotal++
		stats[period].uniqueQueries[key] = struct{}{}
		globalUniqueQueries[key] = struct{}{}
		totalSearches++
		if entry.IsChinese {
			stats[period].chineseTotal++
			totalChinese++
		}
	}

	periods := make([]SearchStatistics, 0, len(stats))
	for period, data := range stats {
		periods = append(periods, SearchStatistics{
			Period:         period,
			SearchCount:    data.searchTotal,
			UniqueQueries:  len(data.uniqueQueries),
			ChineseQueries: data.chineseTotal,
		})
	}

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods: periods,
		Aggregate: AggregateStatistics{
			SearchCount:    totalSearches,
			UniqueQueries:  len(globalUniqueQueries),
			ChineseQueries: totalChinese,
		},
	}
}

func ensurePeriodExists(stats map[string]*periodData, period string) {
	if stats[period] == nil {
		stats[period] = &periodData{
			uniqueQueries: make(map[string]struct{}),
		}
	}
}

func matchesFilter(entryYear, entryMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if entryYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return entryMonth == filterMonth
}
