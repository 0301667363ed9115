package settlement

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/worklogpay/settlement-backend-go/internal/domain/settlement"
	"github.com/worklogpay/settlement-backend-go/internal/domain/worklog"
)

// dedupeSegments merges segment slices, keeping the first occurrence of each
// segment id. The period query and the failed-recovery query can both return
// the same segment.
func dedupeSegments(groups ...[]settlement.EligibleSegment) []settlement.EligibleSegment {
	seen := make(map[string]bool)
	var merged []settlement.EligibleSegment
	for _, group := range groups {
		for _, seg := range group {
			if seen[seg.SegmentID] {
				continue
			}
			seen[seg.SegmentID] = true
			merged = append(merged, seg)
		}
	}
	return merged
}

func distinctWorklogIDs(segments []settlement.EligibleSegment) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, seg := range segments {
		if seen[seg.WorklogID] {
			continue
		}
		seen[seg.WorklogID] = true
		ids = append(ids, seg.WorklogID)
	}
	return ids
}

// aggregateTotals groups segments by worker and computes gross, adjustments
// and net per worker. Adjustments are summed over every adjustment of the
// worklogs touched by the worker's segments, with no date filter: an
// adjustment recorded after an earlier payout still lands on the next
// remittance that touches the same worklog. Net is gross plus signed
// adjustments and may be negative; over-deduction is surfaced, not clamped.
// Workers with no eligible segments produce no entry.
func aggregateTotals(segments []settlement.EligibleSegment, adjustments []worklog.Adjustment) []settlement.WorkerTotals {
	adjustmentByWorklog := make(map[string]decimal.Decimal)
	for _, a := range adjustments {
		adjustmentByWorklog[a.WorklogID] = adjustmentByWorklog[a.WorklogID].Add(a.SignedAmount())
	}

	byWorker := make(map[string]*settlement.WorkerTotals)
	worklogsByWorker := make(map[string]map[string]bool)
	for _, seg := range segments {
		totals, ok := byWorker[seg.WorkerUserID]
		if !ok {
			totals = &settlement.WorkerTotals{WorkerUserID: seg.WorkerUserID}
			byWorker[seg.WorkerUserID] = totals
			worklogsByWorker[seg.WorkerUserID] = make(map[string]bool)
		}
		totals.Gross = totals.Gross.Add(seg.GrossAmount())
		totals.Segments = append(totals.Segments, seg)
		worklogsByWorker[seg.WorkerUserID][seg.WorklogID] = true
	}

	var result []settlement.WorkerTotals
	for workerID, totals := range byWorker {
		for worklogID := range worklogsByWorker[workerID] {
			totals.Adjustments = totals.Adjustments.Add(adjustmentByWorklog[worklogID])
		}
		totals.Net = totals.Gross.Add(totals.Adjustments)
		result = append(result, *totals)
	}

	// Deterministic write order across runs
	sort.Slice(result, func(i, j int) bool {
		return result[i].WorkerUserID < result[j].WorkerUserID
	})

	return result
}
