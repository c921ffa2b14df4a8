package domain

import (
	"fmt"
	"strings"
)

// Size は盤面の一辺のマス数
const Size = 4

// Direction はスワイプの方向を表す
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions は全ての方向を列挙する
var Directions = []Direction{Up, Down, Left, Right}

// String は方向の名前を返す
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// ParseDirection はw/s/a/dのキー入力を方向に変換する
func ParseDirection(input string) (Direction, bool) {
	switch input {
	case "w":
		return Up, true
	case "s":
		return Down, true
	case "a":
		return Left, true
	case "d":
		return Right, true
	default:
		return 0, false
	}
}

// Board は4x4の盤面を表す
// 値の書き換えはGameからのみ行う
type Board struct {
	cells [Size][Size]int
}

// NewBoard は空のBoardを生成する
func NewBoard() Board {
	return Board{}
}

// NewBoardFromCells はセルの値を指定してBoardを生成する
func NewBoardFromCells(cells [Size][Size]int) Board {
	return Board{cells: cells}
}

// Get は指定した位置のセル値を取得する
func (b Board) Get(row, col int) int {
	return b.cells[row][col]
}

// Cells はセルの値のコピーを返す
func (b Board) Cells() [Size][Size]int {
	return b.cells
}

func (b *Board) set(row, col, value int) {
	b.cells[row][col] = value
}

func (b *Board) clear(row, col int) {
	b.cells[row][col] = 0
}

// EmptyCells は空のセルの座標一覧を行優先で返す
func (b Board) EmptyCells() [][2]int {
	var empty [][2]int
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == 0 {
				empty = append(empty, [2]int{r, c})
			}
		}
	}
	return empty
}

// MaxTile は盤面上の最大値を返す
func (b Board) MaxTile() int {
	max := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] > max {
				max = b.cells[r][c]
			}
		}
	}
	return max
}

// SwipeWithoutSpawn は指定した方向にスワイプした結果の盤面とスコアを返す（spawnなし）
// レシーバは変更しない
func (b Board) SwipeWithoutSpawn(dir Direction) (Board, int) {
	var next Board
	totalScore := 0

	for i := 0; i < Size; i++ {
		var line [Size]int
		switch dir {
		case Left, Right:
			line = b.getRow(i)
		case Up, Down:
			line = b.getCol(i)
		}

		// 進行方向の端が先頭に来るように揃える
		reversed := dir == Right || dir == Down
		if reversed {
			line = reverseLine(line)
		}
		merged, score := mergeLine(line)
		totalScore += score
		if reversed {
			merged = reverseLine(merged)
		}

		for j := 0; j < Size; j++ {
			switch dir {
			case Left, Right:
				next.cells[i][j] = merged[j]
			case Up, Down:
				next.cells[j][i] = merged[j]
			}
		}
	}

	return next, totalScore
}

// getRow は指定した行を配列として返す
func (b Board) getRow(row int) [Size]int {
	return b.cells[row]
}

// getCol は指定した列を配列として返す
func (b Board) getCol(col int) [Size]int {
	var result [Size]int
	for r := 0; r < Size; r++ {
		result[r] = b.cells[r][col]
	}
	return result
}

// mergeLine は1行/1列を先頭方向に詰めてマージし、結果とスコアを返す
// 先頭に近いペアから順にマージし、マージで生まれたタイルは同じ手で再びマージしない
func mergeLine(line [Size]int) ([Size]int, int) {
	score := 0

	// 0を除去して詰める
	nonZero := make([]int, 0, Size)
	for _, v := range line {
		if v != 0 {
			nonZero = append(nonZero, v)
		}
	}

	// 同じ値が隣接していたらマージ
	merged := make([]int, 0, Size)
	for i := 0; i < len(nonZero); i++ {
		if i+1 < len(nonZero) && nonZero[i] == nonZero[i+1] {
			newVal := nonZero[i] * 2
			merged = append(merged, newVal)
			score += newVal
			i++ // 次の要素をスキップ
		} else {
			merged = append(merged, nonZero[i])
		}
	}

	var result [Size]int
	copy(result[:], merged)
	return result, score
}

// reverseLine は配列を反転する
func reverseLine(line [Size]int) [Size]int {
	var result [Size]int
	for i := 0; i < Size; i++ {
		result[i] = line[Size-1-i]
	}
	return result
}

// Equal は2つのBoardが等しいかどうかを返す
func (b Board) Equal(other Board) bool {
	return b.cells == other.cells
}

// String は1行につき1段、各セルを5文字幅で左寄せした文字列を返す
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			fmt.Fprintf(&sb, "%-5d", b.cells[r][c])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
