package engine

import "github.com/ramanasai/dayflow/internal/model"

// BlockHours lists the hours a minute-range block overlaps. An hour boundary
// landing exactly on EndMinute is excluded (a 09:00-10:00 block covers only
// hour 9) unless the block is zero-length, which marks just its start hour.
func BlockHours(block model.TimeBlock) []int {
	start, end := block.StartMinute, block.EndMinute
	if start < 0 || start > 24*60 || end < start {
		return nil
	}
	first := start / 60
	if start == end {
		if first > 23 {
			return nil
		}
		return []int{first}
	}
	last := end / 60
	if end%60 == 0 {
		last--
	}
	if last > 23 {
		last = 23
	}
	var hours []int
	for h := first; h <= last; h++ {
		hours = append(hours, h)
	}
	return hours
}

// SyncBlocks projects a date's blocks onto hour buckets, unioning with any
// hours already present (manual hour records survive a re-sync).
func SyncBlocks(blocks []model.TimeBlock, into *model.DayData) {
	if into.Hours == nil {
		into.Hours = map[int][]string{}
	}
	for _, block := range blocks {
		for _, hour := range BlockHours(block) {
			ids := into.Hours[hour]
			dup := false
			for _, id := range ids {
				if id == block.TaskID {
					dup = true
					break
				}
			}
			if !dup && block.TaskID != "" {
				into.Hours[hour] = append(ids, block.TaskID)
			}
		}
	}
}
