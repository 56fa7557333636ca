package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fairdice/internal/config"
	"fairdice/internal/dice"
	"fairdice/internal/game"
	"fairdice/internal/logging"
)

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "fairdice",
		Short:        "Provably fair dice game between you and the computer",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfg.Policy, "policy", cfg.Policy,
		"die assignment policy: fixed or random")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel,
		"log level (debug, info, warn, error)")

	root.AddCommand(
		newPlayCmd(&cfg),
		newVerifyCmd(),
		newCheckCmd(),
		newServeCmd(&cfg),
	)
	return root
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (zerolog.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), cfg.LogLevel, true)
}

func newEngine(cfg *config.Config) (*game.Engine, error) {
	policy, err := cfg.GamePolicy()
	if err != nil {
		return nil, err
	}
	return &game.Engine{Policy: policy}, nil
}

// loadDice prefers dice given as arguments over the configured file.
func loadDice(args []string, file string) (dice.Set, error) {
	if len(args) > 0 {
		return dice.ParseSet(args)
	}
	if file != "" {
		set, err := dice.LoadSet(file)
		if err != nil {
			return dice.Set{}, fmt.Errorf("load %s: %w", file, err)
		}
		return set, nil
	}
	return dice.Set{}, errors.Join(dice.ErrInsufficientDice,
		errors.New("pass at least 3 dice such as 1,2,3,4,5,6 or set --dice-file"))
}
