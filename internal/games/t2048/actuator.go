package t2048

// RandSource is the random draws the engine needs. *rand.Rand satisfies it;
// tests supply scripted sequences.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// Actuator receives the board after every state-changing move and at setup.
type Actuator interface {
	// Actuate presents the committed state. The view is a copy; it stays
	// valid after further moves.
	Actuate(view View)
	// ContinueGame clears any win or game-over message.
	ContinueGame()
}

// StateStore persists the running game and the best score.
type StateStore interface {
	BestScore() (int, error)
	SetBestScore(score int) error
	// GameState returns nil, nil when nothing is saved.
	GameState() (*GameInfo, error)
	SetGameState(state GameInfo) error
	ClearGameState() error
}

// Metadata is the scoreboard part of a view.
type Metadata struct {
	Score      int
	BestScore  int
	Over       bool
	Won        bool
	Terminated bool
}

// TileView is a presentation snapshot of one tile.
type TileView struct {
	ID               TileID
	Position         Position
	Value            int
	IsNew            bool
	IsMerged         bool
	PreviousPosition *Position
	MergedFrom       []Position
}

// View is a presentation snapshot of the whole board. Cells are indexed [x][y].
type View struct {
	Size  int
	Cells [][]*TileView
	Metadata
}

// Tiles returns the non-empty cells of the view, x ascending outer.
func (v View) Tiles() []TileView {
	var tiles []TileView
	for _, column := range v.Cells {
		for _, t := range column {
			if t != nil {
				tiles = append(tiles, *t)
			}
		}
	}
	return tiles
}

// At returns the tile view at pos, or nil.
func (v View) At(pos Position) *TileView {
	if pos.X < 0 || pos.X >= v.Size || pos.Y < 0 || pos.Y >= v.Size {
		return nil
	}
	return v.Cells[pos.X][pos.Y]
}

// newView snapshots the grid for presentation.
func newView(g *Grid, meta Metadata) View {
	cells := make([][]*TileView, g.Size())
	for x := range g.Size() {
		cells[x] = make([]*TileView, g.Size())
	}

	g.EachCell(func(pos Position, t *Tile) {
		if t == nil {
			return
		}
		tv := &TileView{
			ID:       t.ID,
			Position: pos,
			Value:    t.Value,
			IsMerged: t.MergedFrom != nil,
		}
		if t.PreviousPosition != nil {
			prev := *t.PreviousPosition
			tv.PreviousPosition = &prev
		}
		tv.IsNew = tv.PreviousPosition == nil && !tv.IsMerged
		tv.MergedFrom = t.MergedFrom.Positions()
		cells[pos.X][pos.Y] = tv
	})

	return View{
		Size:     g.Size(),
		Cells:    cells,
		Metadata: meta,
	}
}

// discardActuator is used when no renderer is attached.
type discardActuator struct{}

func (discardActuator) Actuate(View) {}
func (discardActuator) ContinueGame() {}
