package level

// ExperiencePerLevel is the per-level cost multiplier: clearing level n costs
// n * ExperiencePerLevel experience.
const ExperiencePerLevel = 100

// Info describes where a cumulative experience total falls in the level curve
type Info struct {
	Level           int   `json:"level"`
	CurrentLevelExp int64 `json:"current_level_exp"`
	ExpForNextLevel int64 `json:"exp_for_next_level"`
}

// Calculate maps a cumulative experience total to level info.
// Level n costs exactly n*100 experience to clear, so the cumulative
// thresholds run 0, 100, 300, 600, ... Negative totals are treated as zero.
// Pure function; reimplement nowhere else - every level display and level
// gate goes through this.
func Calculate(totalExp int64) Info {
	if totalExp < 0 {
		totalExp = 0
	}

	lvl := 1
	remaining := totalExp
	for remaining >= int64(lvl)*ExperiencePerLevel {
		remaining -= int64(lvl) * ExperiencePerLevel
		lvl++
	}

	return Info{
		Level:           lvl,
		CurrentLevelExp: remaining,
		ExpForNextLevel: int64(lvl) * ExperiencePerLevel,
	}
}

// Of returns just the level for a cumulative experience total
func Of(totalExp int64) int {
	return Calculate(totalExp).Level
}

// ThresholdFor returns the cumulative experience required to reach a level
// from zero.
func ThresholdFor(lvl int) int64 {
	var cumulative int64
	for i := 1; i < lvl; i++ {
		cumulative += int64(i) * ExperiencePerLevel
	}
	return cumulative
}
