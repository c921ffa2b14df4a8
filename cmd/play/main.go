package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nnaakkaaii/console2048/internal/usecase"
)

func main() {
	colorMode := flag.String("color", usecase.ColorNever, "colored tiles: auto, always or never")
	seed := flag.Int64("seed", 0, "random seed (0 uses the current time)")
	logLevel := flag.String("log-level", "warn", "log level written to stderr")
	flag.Parse()

	log := logrus.StandardLogger()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid -log-level")
	}
	log.SetLevel(level)

	config := usecase.DefaultPlayConfig()
	config.Logger = log
	config.Color, err = usecase.ResolveColor(*colorMode, os.Stdout.Fd())
	if err != nil {
		log.WithError(err).Fatal("invalid -color")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.WithField("seed", *seed).Debug("random source ready")

	if _, err := usecase.PlayGame(os.Stdin, os.Stdout, rng, config); err != nil {
		log.WithError(err).Fatal("game aborted")
	}
}
