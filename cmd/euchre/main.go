package main

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"euchre/internal/engine"
	"euchre/internal/player"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	seed := parseSeed(getEnv("SEED", ""))
	eng := engine.NewEngine(rand.New(rand.NewSource(seed)))
	game := engine.NewGame(eng, log.Logger)

	players, err := buildPlayers(getEnv("BOTS", "rule,random,rule,random"), seed)
	if err != nil {
		log.Fatal().Err(err).Msg("bad BOTS configuration")
	}

	r := &Runner{
		Game:    game,
		Players: players,
		Render:  getEnv("RENDER", "true") == "true",
		Log:     log.Logger,
	}
	log.Info().Int64("seed", seed).Msg("starting match")
	if err := r.Run(); err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}
}

// buildPlayers fills the four seats from a comma-separated list of bot kinds.
func buildPlayers(spec string, seed int64) ([4]player.Player, error) {
	var players [4]player.Player
	kinds := strings.Split(spec, ",")
	if len(kinds) != 4 {
		return players, errBotSpec(spec)
	}
	for seat, kind := range kinds {
		factory, err := botFactory(strings.TrimSpace(kind), seed, spec)
		if err != nil {
			return players, err
		}
		players[seat] = factory(seat)
	}
	return players, nil
}

func botFactory(kind string, seed int64, spec string) (player.Factory, error) {
	switch kind {
	case "random":
		return func(seat int) player.Player {
			return player.NewRandomBot(seat, seed+int64(seat)+1)
		}, nil
	case "rule":
		return func(seat int) player.Player {
			return player.NewRuleBot(seat)
		}, nil
	}
	return nil, errBotSpec(spec)
}

func parseSeed(s string) int64 {
	if s == "" {
		return time.Now().UnixNano()
	}
	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Fatal().Str("seed", s).Msg("SEED must be an integer")
	}
	return seed
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
