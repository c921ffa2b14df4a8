package usecase

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nnaakkaaii/console2048/internal/domain"
)

// PlayGame はCLIで2048ゲームを実行する
// 1ターンごとにスコアと盤面を表示し、1行読んでw/s/a/dなら手を適用する
// それ以外の入力は何も言わずに読み飛ばす
// 入力の読み込みに失敗した場合（EOFを含む）はエラーを返す
func PlayGame(r io.Reader, w io.Writer, rng domain.RandomSource, config PlayConfig) (Summary, error) {
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	id := uuid.New()
	log := logger.WithField("game_id", id.String())
	game := domain.NewGame(rng)
	reader := bufio.NewReader(r)
	view := newRenderer(config.Color)

	log.WithField("color", config.Color).Debug("game started")

	for !game.IsGameOver() {
		view.render(w, game.Score(), game.Board())

		input, err := reader.ReadString('\n')
		if err != nil {
			log.WithError(err).WithField("moves", game.Moves()).Warn("input closed")
			return newSummary(id, game), errors.Wrap(err, "read move")
		}

		dir, ok := domain.ParseDirection(strings.TrimSpace(input))
		if !ok {
			log.WithField("input", strings.TrimSpace(input)).Debug("ignored input")
			continue
		}

		gained, moved := game.Move(dir)
		log.WithFields(logrus.Fields{
			"direction": dir.String(),
			"moved":     moved,
			"gained":    gained,
			"score":     game.Score(),
		}).Debug("move")
	}

	fmt.Fprintln(w, "Game Over!")

	summary := newSummary(id, game)
	log.WithFields(summary.Fields()).Info("game over")
	return summary, nil
}
