// Package growth lays out life events on the abstract growth map.
package growth

import (
	"strconv"
	"strings"

	"github.com/kubelouislu/sre-portfolio/internal/content"
)

// Point is a life event placed on the map. Step counts from 1 at the
// oldest event.
type Point struct {
	Step  int
	Event content.LifeEvent
}

// Left and Top are the CSS percentages of the point's position.
func (p Point) Left() string { return Percent(p.Event.Coordinates.X) }
func (p Point) Top() string  { return Percent(p.Event.Coordinates.Y) }

// Segment joins two consecutive points of the trajectory.
type Segment struct {
	From, To content.Coordinates
}

func (s Segment) X1() string { return Percent(s.From.X) }
func (s Segment) Y1() string { return Percent(s.From.Y) }
func (s Segment) X2() string { return Percent(s.To.X) }
func (s Segment) Y2() string { return Percent(s.To.Y) }

// Trajectory returns the events oldest first. Content lists events newest
// first; the input slice is left untouched.
func Trajectory(events []content.LifeEvent) []Point {
	n := len(events)
	points := make([]Point, n)
	for i := range events {
		points[i] = Point{Step: i + 1, Event: events[n-1-i]}
	}
	return points
}

// Segments returns the arrows drawn between consecutive trajectory points.
// Fewer than two events yield none.
func Segments(events []content.LifeEvent) []Segment {
	points := Trajectory(events)
	if len(points) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		segs = append(segs, Segment{
			From: points[i].Event.Coordinates,
			To:   points[i+1].Event.Coordinates,
		})
	}
	return segs
}

// Polyline formats the trajectory as space-separated "x%,y%" pairs.
func Polyline(events []content.LifeEvent) string {
	points := Trajectory(events)
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = Percent(p.Event.Coordinates.X) + "," + Percent(p.Event.Coordinates.Y)
	}
	return strings.Join(parts, " ")
}

// Percent formats v with a trailing "%" and no superfluous decimals.
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
