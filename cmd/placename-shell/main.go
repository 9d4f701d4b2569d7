package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/placename-desk/placename-desk/internal/shell"
)

func main() {
	if err := shell.Run(); err != nil {
		log.Error().Err(err).Msg("placename-shell exited with error")
		os.Exit(1)
	}
}
