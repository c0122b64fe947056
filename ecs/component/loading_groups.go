package component

import (
	"sort"

	"github.com/milk9111/keystone/assets"
)

// LoadingGroups maps each tracked group to the handles it waits on. It is
// built by the asset loader system and read by everything else.
type LoadingGroups struct {
	groups map[AssetGroup][]assets.Handle
}

func NewLoadingGroups() *LoadingGroups {
	return &LoadingGroups{groups: make(map[AssetGroup][]assets.Handle)}
}

// Set replaces the membership of group.
func (g *LoadingGroups) Set(group AssetGroup, handles ...assets.Handle) {
	if g == nil {
		return
	}
	if g.groups == nil {
		g.groups = make(map[AssetGroup][]assets.Handle)
	}
	g.groups[group] = append([]assets.Handle{}, handles...)
}

// Append adds handles to group, creating it when missing.
func (g *LoadingGroups) Append(group AssetGroup, handles ...assets.Handle) {
	if g == nil {
		return
	}
	if g.groups == nil {
		g.groups = make(map[AssetGroup][]assets.Handle)
	}
	existing, ok := g.groups[group]
	if !ok {
		existing = []assets.Handle{}
	}
	g.groups[group] = append(existing, handles...)
}

// Remove stops tracking group.
func (g *LoadingGroups) Remove(group AssetGroup) {
	if g == nil {
		return
	}
	delete(g.groups, group)
}

// Handles returns a copy of the handles of group and whether it is tracked.
func (g *LoadingGroups) Handles(group AssetGroup) ([]assets.Handle, bool) {
	if g == nil {
		return nil, false
	}
	handles, ok := g.groups[group]
	if !ok {
		return nil, false
	}
	return append([]assets.Handle{}, handles...), true
}

// Groups returns the tracked groups in ascending order.
func (g *LoadingGroups) Groups() []AssetGroup {
	if g == nil || len(g.groups) == 0 {
		return nil
	}
	out := make([]AssetGroup, 0, len(g.groups))
	for group := range g.groups {
		out = append(out, group)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (g *LoadingGroups) Len() int {
	if g == nil {
		return 0
	}
	return len(g.groups)
}
