package dfs

import (
	"sort"

	"github.com/katalvlaran/lvroute/core"
)

// sortIDs sorts ids ascending in place.
func sortIDs(ids []core.NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
