package article

import "sort"

// Layout selects how a diagram's panels are arranged.
type Layout string

const (
	// LayoutCompare puts two panels side by side.
	LayoutCompare Layout = "compare"
	// LayoutHub draws a core panel feeding a row of items into a consumer panel.
	LayoutHub Layout = "hub"
	// LayoutStack stacks panels vertically with the middle one emphasised.
	LayoutStack Layout = "stack"
)

// Diagram is a known, renderable diagram. Its strings come from the
// active dictionary's diagrams section.
type Diagram struct {
	ID     string `json:"id"`
	Layout Layout `json:"layout"`
}

var registry = map[string]Diagram{
	"sre-trap":       {ID: "sre-trap", Layout: LayoutCompare},
	"one-plus-n":     {ID: "one-plus-n", Layout: LayoutHub},
	"last-mile":      {ID: "last-mile", Layout: LayoutStack},
	"bre-definition": {ID: "bre-definition", Layout: LayoutCompare},
}

// LookupDiagram returns the registered diagram for id.
func LookupDiagram(id string) (Diagram, bool) {
	d, ok := registry[id]
	return d, ok
}

// DiagramIDs returns the registered ids in sorted order.
func DiagramIDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
