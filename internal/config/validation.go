package config

// ClampPaneCount bounds n to [MinPanes, MaxPanes].
func ClampPaneCount(n int) int {
	return max(MinPanes, min(n, MaxPanes))
}
