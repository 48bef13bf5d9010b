// Package main is the entry point for the pokemon-5e CLI
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokemon-5e/internal/config"
	"github.com/KirkDiggler/pokemon-5e/internal/pkg/logging"
)

var (
	configPath string

	// v collects defaults, env overrides, the config file and bound flags
	v = config.New()

	// current is built once config is loaded, before any subcommand runs
	current *app

	// flagKeys maps config keys to the persistent flags that override them
	flagKeys = map[string]string{
		"logging.level":    "log-level",
		"logging.format":   "log-format",
		"redis.addr":       "redis-addr",
		"pokeapi.base_url": "pokeapi-url",
	}
)

var rootCmd = &cobra.Command{
	Use:   "pokemon-5e",
	Short: "Convert Pokémon into D&D 5e stat blocks",
	Long: `pokemon-5e fetches a Pokémon from PokeAPI and converts it into a D&D 5e
stat block: ability scores, armor class, hit points, converted moves and an
estimated challenge rating.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (text, json)")
	flags.String("redis-addr", "", "Redis address for the response cache (empty uses memory)")
	flags.String("pokeapi-url", "", "PokeAPI base URL")

	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(learnsetCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(compareCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg, err := config.LoadFromViper(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.Install(cfg.Logging, cmd.ErrOrStderr())

	a, err := newApp(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	current = a

	return nil
}
