package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/lexigram/internal/config"
	"github.com/verte-zerg/lexigram/internal/define"
	"github.com/verte-zerg/lexigram/internal/model"
)

const defaultDefineConcurrency = 4

var (
	defineEndpoint    string
	defineTimeout     time.Duration
	defineConcurrency int
	defineNoCache     bool
	defineJSON        bool
)

func newDefineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "define <word>...",
		Short: "Look up word definitions",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runDefineCmd,
	}
	cmd.Flags().StringVar(&defineEndpoint, "endpoint", define.DefaultEndpoint, "dictionary API base URL")
	cmd.Flags().DurationVar(&defineTimeout, "timeout", define.DefaultTimeout, "timeout per lookup")
	cmd.Flags().IntVar(&defineConcurrency, "concurrency", defaultDefineConcurrency, "parallel lookups")
	cmd.Flags().BoolVar(&defineNoCache, "no-cache", false, "skip the definition cache")
	cmd.Flags().BoolVar(&defineJSON, "json", false, "print definitions as JSON")
	return cmd
}

func loadDefineConfig(cmd *cobra.Command) (model.DefineConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.DefineConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return model.DefineConfig{}, fmt.Errorf("failed to load environment: %w", err)
	}
	applyStringConfig(cmd, "endpoint", &defineEndpoint, firstSet(envCfg.DefineEndpoint, fileCfg.Define.Endpoint))
	if fileCfg.Define.Timeout != nil && !cmd.Flags().Changed("timeout") {
		parsed, err := time.ParseDuration(*fileCfg.Define.Timeout)
		if err != nil {
			return model.DefineConfig{}, fmt.Errorf("invalid define timeout %q: %w", *fileCfg.Define.Timeout, err)
		}
		defineTimeout = parsed
	}
	cacheSize := 0
	if fileCfg.Define.CacheSize != nil {
		cacheSize = *fileCfg.Define.CacheSize
	}

	cfg := model.DefineConfig{
		Endpoint:  defineEndpoint,
		Timeout:   defineTimeout,
		CacheSize: cacheSize,
	}
	if cfg.Timeout <= 0 {
		return model.DefineConfig{}, fmt.Errorf("--timeout must be > 0")
	}
	if defineConcurrency <= 0 {
		return model.DefineConfig{}, fmt.Errorf("--concurrency must be > 0")
	}
	return cfg, nil
}

func runDefineCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadDefineConfig(cmd)
	if err != nil {
		return err
	}
	words := trimmedArgs(args)
	if len(words) == 0 {
		return fmt.Errorf("no words to define")
	}

	var cache define.Cache
	if !defineNoCache {
		memory, err := define.NewMemoryCache(cfg.CacheSize)
		if err != nil {
			return fmt.Errorf("failed to create cache: %w", err)
		}
		cache = memory
		st, err := openStore()
		if err != nil {
			logErrf("%v; definitions will not be persisted\n", err)
		} else {
			defer closeStore(st)
			cache = define.Layered{memory, st}
		}
	}

	client := define.NewClient(cfg.Endpoint, cfg.Timeout, cache)
	defs, err := client.LookupAll(cmd.Context(), words, defineConcurrency)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if defineJSON {
		return writeJSON(out, defs)
	}
	for _, def := range defs {
		if _, err := fmt.Fprintf(out, "%s: %s\n", def.Word, def.Text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
