package usecase

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/nnaakkaaii/console2048/internal/domain"
)

// タイルの値ごとの表示色
var tileAttributes = map[int][]color.Attribute{
	0:    {color.FgHiBlack},
	2:    {color.FgWhite},
	4:    {color.FgHiWhite},
	8:    {color.FgYellow},
	16:   {color.FgHiYellow},
	32:   {color.FgRed},
	64:   {color.FgHiRed},
	128:  {color.FgCyan},
	256:  {color.FgHiCyan},
	512:  {color.FgGreen},
	1024: {color.FgHiGreen},
	2048: {color.FgMagenta, color.Bold},
}

// renderer は盤面とスコアを出力する
type renderer struct {
	colors map[int]*color.Color
	big    *color.Color
}

func newRenderer(colored bool) *renderer {
	if !colored {
		return &renderer{}
	}
	r := &renderer{colors: make(map[int]*color.Color, len(tileAttributes))}
	for v, attrs := range tileAttributes {
		c := color.New(attrs...)
		c.EnableColor()
		r.colors[v] = c
	}
	r.big = color.New(color.FgHiMagenta, color.Bold)
	r.big.EnableColor()
	return r
}

// render はスコアと盤面を1行1段で出力する
// 色を付ける場合も5文字幅に揃えてから色を付けるので桁はずれない
func (r *renderer) render(w io.Writer, score int, board domain.Board) {
	fmt.Fprintf(w, "Score: %d\n", score)
	if r.colors == nil {
		fmt.Fprint(w, board)
		return
	}
	for row := 0; row < domain.Size; row++ {
		for col := 0; col < domain.Size; col++ {
			v := board.Get(row, col)
			fmt.Fprint(w, r.colorFor(v).Sprint(fmt.Sprintf("%-5d", v)))
		}
		fmt.Fprintln(w)
	}
}

func (r *renderer) colorFor(v int) *color.Color {
	if c, ok := r.colors[v]; ok {
		return c
	}
	return r.big
}
