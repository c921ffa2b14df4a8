package domain

// スポーン確率（2が90%、4が10%）
const spawn2Prob = 0.9

// RandomSource はタイル出現に使う乱数源
// *rand.Rand はこのインターフェースを満たす
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// Game は2048ゲームの状態を管理する
type Game struct {
	board Board
	score int
	moves int
	rng   RandomSource
}

// NewGame は新しいゲームを開始する
func NewGame(rng RandomSource) *Game {
	g := &Game{
		board: NewBoard(),
		rng:   rng,
	}
	// 初期配置として2つのタイルを配置
	g.spawnTile()
	g.spawnTile()
	return g
}

// Board は現在の盤面を返す
func (g *Game) Board() Board {
	return g.board
}

// Score は現在のスコアを返す
func (g *Game) Score() int {
	return g.score
}

// Moves は盤面が変化した手の数を返す
func (g *Game) Moves() int {
	return g.moves
}

// IsGameOver は空きマスがなく、上下左右に同じ値が隣接するマスもないかどうかを返す
func (g *Game) IsGameOver() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := g.board.Get(r, c)
			if v == 0 {
				return false
			}
			if r > 0 && g.board.Get(r-1, c) == v {
				return false
			}
			if r < Size-1 && g.board.Get(r+1, c) == v {
				return false
			}
			if c > 0 && g.board.Get(r, c-1) == v {
				return false
			}
			if c < Size-1 && g.board.Get(r, c+1) == v {
				return false
			}
		}
	}
	return true
}

// Move は指定した方向にスワイプを実行し、獲得したスコアを返す
// 盤面が変化しなかった場合は盤面・スコアともにそのままでfalseを返す
func (g *Game) Move(dir Direction) (int, bool) {
	swiped, gained := g.board.SwipeWithoutSpawn(dir)
	if swiped.Equal(g.board) {
		return 0, false
	}

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := swiped.Get(r, c); v == 0 {
				g.board.clear(r, c)
			} else {
				g.board.set(r, c, v)
			}
		}
	}
	g.score += gained
	g.moves++
	g.spawnTile()
	return gained, true
}

// spawnTile は空きマスにランダムにタイルを配置する
// マスの選択と値の選択はそれぞれ独立に乱数を引く
func (g *Game) spawnTile() {
	empty := g.board.EmptyCells()
	if len(empty) == 0 {
		return
	}
	pos := empty[g.rng.Intn(len(empty))]
	value := 4
	if g.rng.Float64() < spawn2Prob {
		value = 2
	}
	g.board.set(pos[0], pos[1], value)
}
