package world

import (
	"testing"

	"github.com/samdwyer/dungeontower/internal/geom"
)

func TestBranchDestinationPoint(t *testing.T) {
	tests := []struct {
		dir  geom.Direction
		want geom.Point
	}{
		{geom.Right, geom.Pt(11, 5)},
		{geom.Up, geom.Pt(10, 4)},
		{geom.Down, geom.Pt(10, 6)},
		{geom.Left, geom.Pt(9, 5)},
	}

	for _, tt := range tests {
		b := NewBranch(tt.dir)
		b.SetStart(geom.Pt(10, 5))
		if got := b.DestinationPoint(); got != tt.want {
			t.Errorf("%v from (10,5): destination = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestBranchOpenUntilLinked(t *testing.T) {
	tiles := testTiles(t)
	room := mustRoom(t, tiles, geom.Pt(0, 0), geom.Pt(5, 5))

	b := NewBranch(geom.Down)
	if !b.IsOpen() || b.Destination() != nil {
		t.Fatal("new branch should be open")
	}

	b.SetDestination(room)
	if b.IsOpen() || b.Destination() != room {
		t.Error("linked branch should point at its room")
	}

	b.SetDestination(nil)
	if !b.IsOpen() {
		t.Error("clearing the destination should reopen the branch")
	}
}
