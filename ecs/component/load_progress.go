package component

// GroupProgress counts the assets of a group by outcome.
type GroupProgress struct {
	Loaded int
	Failed int
	Total  int
}

// Fraction returns the loaded share in [0, 1]. An empty group is complete.
func (p GroupProgress) Fraction() float64 {
	if p.Total <= 0 {
		return 1
	}
	return float64(p.Loaded) / float64(p.Total)
}

// Done reports whether no asset of the group is still pending.
func (p GroupProgress) Done() bool {
	return p.Loaded+p.Failed >= p.Total
}

// LoadProgress is a singleton refreshed every tick by the progress system.
type LoadProgress struct {
	Groups map[AssetGroup]GroupProgress
}

var LoadProgressComponent = NewComponent[LoadProgress]()
