package content

import (
	"errors"
	"fmt"
	"strings"
)

var validIconTypes = map[string]bool{
	IconBirth:      true,
	IconSchool:     true,
	IconUniversity: true,
	IconMilestone:  true,
}

// Validate checks the invariants the views rely on. Unknown diagram ids are
// allowed; they simply render nothing.
func (d *Dictionary) Validate() error {
	var errs []error

	if strings.TrimSpace(d.Profile.Name) == "" {
		errs = append(errs, fmt.Errorf("profile.name is required"))
	}

	seen := make(map[string]bool, len(d.Thinking))
	for i, a := range d.Thinking {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("thinking[%d]: id is required", i))
			continue
		}
		if seen[a.ID] {
			errs = append(errs, fmt.Errorf("thinking[%d]: duplicate id %q", i, a.ID))
		}
		seen[a.ID] = true
		for j, b := range a.Content {
			if b.Kind == DiagramBlock && b.DiagramID == "" {
				errs = append(errs, fmt.Errorf("thinking[%d].content[%d]: diagram block without diagramId", i, j))
			}
		}
	}

	for i, e := range d.Growth {
		if !validIconTypes[e.IconType] {
			errs = append(errs, fmt.Errorf("growth[%d]: invalid iconType %q", i, e.IconType))
		}
		if !inPercentRange(e.Coordinates.X) || !inPercentRange(e.Coordinates.Y) {
			errs = append(errs, fmt.Errorf("growth[%d]: coordinates (%g, %g) outside [0,100]", i, e.Coordinates.X, e.Coordinates.Y))
		}
	}

	return errors.Join(errs...)
}

func inPercentRange(v float64) bool {
	return v >= 0 && v <= 100
}
