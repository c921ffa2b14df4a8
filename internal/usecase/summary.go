package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"github.com/sirupsen/logrus"

	"github.com/nnaakkaaii/console2048/internal/domain"
)

// Summary は終了時のゲームの結果
type Summary struct {
	GameID  uuid.UUID
	Score   int
	Moves   int
	MaxTile int
	tiles   *intmap.Map[int, int]
}

func newSummary(id uuid.UUID, game *domain.Game) Summary {
	board := game.Board()
	tiles := intmap.New[int, int](domain.Size * domain.Size)
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			v := board.Get(r, c)
			if v == 0 {
				continue
			}
			n, _ := tiles.Get(v)
			tiles.Put(v, n+1)
		}
	}
	return Summary{
		GameID:  id,
		Score:   game.Score(),
		Moves:   game.Moves(),
		MaxTile: board.MaxTile(),
		tiles:   tiles,
	}
}

// TileCount は最終盤面で値vを持つタイルの枚数を返す
func (s Summary) TileCount(v int) int {
	if s.tiles == nil {
		return 0
	}
	n, _ := s.tiles.Get(v)
	return n
}

// tileHistogram は "2:3 4:1" の形式でタイルの枚数を小さい値から並べる
func (s Summary) tileHistogram() string {
	var parts []string
	for v := 2; v <= s.MaxTile; v *= 2 {
		if n := s.TileCount(v); n > 0 {
			parts = append(parts, fmt.Sprintf("%d:%d", v, n))
		}
	}
	return strings.Join(parts, " ")
}

// Fields はログ出力用のフィールドを返す
func (s Summary) Fields() logrus.Fields {
	return logrus.Fields{
		"game_id":  s.GameID.String(),
		"score":    s.Score,
		"moves":    s.Moves,
		"max_tile": s.MaxTile,
		"tiles":    s.tileHistogram(),
	}
}
