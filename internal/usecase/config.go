package usecase

import (
	"fmt"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// 色付き表示の指定
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// PlayConfig はCLIプレイの設定
type PlayConfig struct {
	Color  bool
	Logger *logrus.Logger
}

// DefaultPlayConfig はデフォルトの設定を返す
func DefaultPlayConfig() PlayConfig {
	return PlayConfig{
		Color:  false,
		Logger: logrus.StandardLogger(),
	}
}

// ResolveColor は-colorの指定と出力先から色付き表示を使うかどうかを決める
// autoの場合は出力先が端末のときだけ色を付ける
func ResolveColor(mode string, fd uintptr) (bool, error) {
	switch mode {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	case ColorAuto:
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	default:
		return false, fmt.Errorf("unknown color mode %q (want %s, %s or %s)", mode, ColorAuto, ColorAlways, ColorNever)
	}
}
