package t2048

import "testing"

func TestNewTileValue(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"explicit two", 2, 2},
		{"explicit four", 4, 4},
		{"zero defaults to two", 0, 2},
		{"negative defaults to two", -8, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := NewTile(1, Pos(0, 0), tt.value)
			if tile.Value != tt.want {
				t.Errorf("NewTile(%d).Value = %d, want %d", tt.value, tile.Value, tt.want)
			}
		})
	}
}

func TestTileSaveAndUpdatePosition(t *testing.T) {
	tile := NewTile(1, Pos(1, 2), 4)
	tile.SavePosition()
	tile.UpdatePosition(Pos(3, 2))

	if got := tile.Position(); got != Pos(3, 2) {
		t.Errorf("Position() = %v, want (3,2)", got)
	}
	if tile.PreviousPosition == nil || *tile.PreviousPosition != Pos(1, 2) {
		t.Errorf("PreviousPosition = %v, want (1,2)", tile.PreviousPosition)
	}
	if tile.MergedFrom != nil {
		t.Error("UpdatePosition should not touch MergedFrom")
	}

	// Updating again leaves the recorded position alone.
	tile.UpdatePosition(Pos(0, 0))
	if *tile.PreviousPosition != Pos(1, 2) {
		t.Errorf("PreviousPosition = %v after second update, want (1,2)", *tile.PreviousPosition)
	}
}

func TestTileSerialize(t *testing.T) {
	tile := NewTile(7, Pos(2, 3), 16)
	tile.SavePosition()

	got := tile.Serialize()
	want := TileInfo{Position: Pos(2, 3), Value: 16}
	if got != want {
		t.Errorf("Serialize() = %+v, want %+v", got, want)
	}
}

func TestMergeSourcesPositions(t *testing.T) {
	var none *MergeSources
	if got := none.Positions(); got != nil {
		t.Errorf("nil Positions() = %v, want nil", got)
	}

	m := &MergeSources{Sources: [2]MergeSource{
		{ID: 1, From: Pos(1, 0), Value: 2},
		{ID: 2, From: Pos(0, 0), Value: 2},
	}}
	got := m.Positions()
	if len(got) != 2 || got[0] != Pos(1, 0) || got[1] != Pos(0, 0) {
		t.Errorf("Positions() = %v, want [(1,0) (0,0)]", got)
	}
}

func TestTileSourceUsesPreviousPosition(t *testing.T) {
	tile := NewTile(3, Pos(3, 1), 8)
	if got := tile.source().From; got != Pos(3, 1) {
		t.Errorf("source().From without history = %v, want (3,1)", got)
	}

	tile.SavePosition()
	tile.UpdatePosition(Pos(0, 1))
	if got := tile.source().From; got != Pos(3, 1) {
		t.Errorf("source().From = %v, want (3,1)", got)
	}
}
