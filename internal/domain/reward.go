package domain

// RewardBundle is a computed grant of experience, gold and items awaiting
// settlement against a profile.
type RewardBundle struct {
	Experience int64    `json:"experience"`
	Gold       int64    `json:"gold"`
	Items      []string `json:"items,omitempty"`
}

// Empty reports whether the bundle grants nothing
func (b RewardBundle) Empty() bool {
	return b.Experience == 0 && b.Gold == 0 && len(b.Items) == 0
}
