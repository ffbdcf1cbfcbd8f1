package growth

import (
	"testing"

	"github.com/kubelouislu/sre-portfolio/internal/content"
)

func events() []content.LifeEvent {
	return []content.LifeEvent{
		{Year: "2019", Coordinates: content.Coordinates{X: 80, Y: 20}},
		{Year: "2012", Coordinates: content.Coordinates{X: 50, Y: 45.5}},
		{Year: "1997", Coordinates: content.Coordinates{X: 10, Y: 90}},
	}
}

func TestTrajectory(t *testing.T) {
	in := events()
	points := Trajectory(in)
	want := []string{"1997", "2012", "2019"}
	if len(points) != len(want) {
		t.Fatalf("got %d points", len(points))
	}
	for i, p := range points {
		if p.Event.Year != want[i] || p.Step != i+1 {
			t.Errorf("point %d = %s step %d, want %s step %d", i, p.Event.Year, p.Step, want[i], i+1)
		}
	}
	if in[0].Year != "2019" {
		t.Error("Trajectory mutated its input")
	}
	if got := points[1].Top(); got != "45.5%" {
		t.Errorf("Top = %q", got)
	}
}

func TestSegments(t *testing.T) {
	segs := Segments(events())
	if len(segs) != 2 {
		t.Fatalf("got %d segments", len(segs))
	}
	if segs[0].X1() != "10%" || segs[0].Y1() != "90%" || segs[0].X2() != "50%" || segs[0].Y2() != "45.5%" {
		t.Errorf("segment 0 = %+v", segs[0])
	}
	if segs[1].To != (content.Coordinates{X: 80, Y: 20}) {
		t.Errorf("segment 1 ends at %+v", segs[1].To)
	}
	if Segments(events()[:1]) != nil {
		t.Error("single event produced segments")
	}
}

func TestPolyline(t *testing.T) {
	if got, want := Polyline(events()), "10%,90% 50%,45.5% 80%,20%"; got != want {
		t.Errorf("Polyline = %q, want %q", got, want)
	}
	if got := Polyline(nil); got != "" {
		t.Errorf("Polyline(nil) = %q", got)
	}
}
