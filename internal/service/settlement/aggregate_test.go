package settlement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklogpay/settlement-backend-go/internal/domain/settlement"
	"github.com/worklogpay/settlement-backend-go/internal/domain/worklog"
)

func seg(id, worklogID, workerID, hours, rate string) settlement.EligibleSegment {
	return settlement.EligibleSegment{
		SegmentID:    id,
		WorklogID:    worklogID,
		WorkerUserID: workerID,
		HoursWorked:  decimal.RequireFromString(hours),
		HourlyRate:   decimal.RequireFromString(rate),
		SegmentDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func adj(worklogID string, t worklog.AdjustmentType, amount string) worklog.Adjustment {
	return worklog.Adjustment{
		WorklogID:      worklogID,
		AdjustmentType: t,
		Amount:         decimal.RequireFromString(amount),
	}
}

func TestAggregateTotals_SingleWorker(t *testing.T) {
	t.Parallel()

	segments := []settlement.EligibleSegment{
		seg("s1", "wl1", "worker1", "10", "50"),
	}

	totals := aggregateTotals(segments, nil)

	require.Len(t, totals, 1)
	assert.Equal(t, "worker1", totals[0].WorkerUserID)
	assert.Equal(t, "500.00", totals[0].Gross.StringFixed(2))
	assert.Equal(t, "0.00", totals[0].Adjustments.StringFixed(2))
	assert.Equal(t, "500.00", totals[0].Net.StringFixed(2))
	assert.Len(t, totals[0].Segments, 1)
}

func TestAggregateTotals_GroupsByWorker(t *testing.T) {
	t.Parallel()

	segments := []settlement.EligibleSegment{
		seg("s1", "wl1", "workerB", "5", "50"),
		seg("s2", "wl2", "workerA", "3", "60"),
		seg("s3", "wl1", "workerB", "2", "50"),
	}

	totals := aggregateTotals(segments, nil)

	require.Len(t, totals, 2)
	// Sorted by worker id
	assert.Equal(t, "workerA", totals[0].WorkerUserID)
	assert.Equal(t, "180.00", totals[0].Gross.StringFixed(2))
	assert.Equal(t, "workerB", totals[1].WorkerUserID)
	assert.Equal(t, "350.00", totals[1].Gross.StringFixed(2))
	assert.Len(t, totals[1].Segments, 2)
}

func TestAggregateTotals_AppliesAdjustmentsForTouchedWorklogs(t *testing.T) {
	t.Parallel()

	segments := []settlement.EligibleSegment{
		seg("s1", "wl1", "worker1", "10", "50"),
	}
	adjustments := []worklog.Adjustment{
		adj("wl1", worklog.AdjustmentTypeDeduction, "200"),
		adj("wl1", worklog.AdjustmentTypeAddition, "50"),
	}

	totals := aggregateTotals(segments, adjustments)

	require.Len(t, totals, 1)
	assert.Equal(t, "500.00", totals[0].Gross.StringFixed(2))
	assert.Equal(t, "-150.00", totals[0].Adjustments.StringFixed(2))
	assert.Equal(t, "350.00", totals[0].Net.StringFixed(2))
}

func TestAggregateTotals_IgnoresAdjustmentsOfUntouchedWorklogs(t *testing.T) {
	t.Parallel()

	segments := []settlement.EligibleSegment{
		seg("s1", "wl1", "worker1", "1", "100"),
	}
	adjustments := []worklog.Adjustment{
		adj("wl2", worklog.AdjustmentTypeDeduction, "75"),
	}

	totals := aggregateTotals(segments, adjustments)

	require.Len(t, totals, 1)
	assert.Equal(t, "100.00", totals[0].Net.StringFixed(2))
}

func TestAggregateTotals_NegativeNetNotClamped(t *testing.T) {
	t.Parallel()

	segments := []settlement.EligibleSegment{
		seg("s1", "wl1", "worker1", "1", "50"),
	}
	adjustments := []worklog.Adjustment{
		adj("wl1", worklog.AdjustmentTypeDeduction, "200"),
	}

	totals := aggregateTotals(segments, adjustments)

	require.Len(t, totals, 1)
	assert.Equal(t, "-150.00", totals[0].Net.StringFixed(2))
	assert.True(t, totals[0].Net.IsNegative())
}

func TestAggregateTotals_NoSegmentsNoWorkers(t *testing.T) {
	t.Parallel()

	totals := aggregateTotals(nil, []worklog.Adjustment{
		adj("wl1", worklog.AdjustmentTypeAddition, "100"),
	})

	assert.Empty(t, totals)
}

func TestAggregateTotals_ExactDecimalArithmetic(t *testing.T) {
	t.Parallel()

	// 0.1 * 3 style values that drift under binary floats
	segments := []settlement.EligibleSegment{
		seg("s1", "wl1", "worker1", "0.10", "3.00"),
		seg("s2", "wl1", "worker1", "0.10", "3.00"),
		seg("s3", "wl1", "worker1", "0.10", "3.00"),
	}

	totals := aggregateTotals(segments, nil)

	require.Len(t, totals, 1)
	assert.Equal(t, "0.90", totals[0].Gross.StringFixed(2))
}

func TestDedupeSegments(t *testing.T) {
	t.Parallel()

	a := []settlement.EligibleSegment{
		seg("s1", "wl1", "worker1", "1", "50"),
		seg("s2", "wl1", "worker1", "2", "50"),
	}
	b := []settlement.EligibleSegment{
		seg("s2", "wl1", "worker1", "2", "50"),
		seg("s3", "wl1", "worker1", "3", "50"),
	}

	merged := dedupeSegments(a, b)

	require.Len(t, merged, 3)
	assert.Equal(t, "s1", merged[0].SegmentID)
	assert.Equal(t, "s2", merged[1].SegmentID)
	assert.Equal(t, "s3", merged[2].SegmentID)
}

func TestDistinctWorklogIDs(t *testing.T) {
	t.Parallel()

	segments := []settlement.EligibleSegment{
		seg("s1", "wl1", "worker1", "1", "50"),
		seg("s2", "wl1", "worker1", "2", "50"),
		seg("s3", "wl2", "worker1", "3", "50"),
	}

	ids := distinctWorklogIDs(segments)

	assert.ElementsMatch(t, []string{"wl1", "wl2"}, ids)
}
