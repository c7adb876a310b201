package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meigma/scaffold"
	"github.com/meigma/scaffold/index"
	"github.com/meigma/scaffold/peer"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "scaffoldd",
	Short: "Scaffold sequence retrieval service",
	Long: `scaffoldd serves named scaffold sequences out of FASTA files listed in its
index configuration, building .fai indexes on demand. Requests naming an
index this instance does not hold are delegated to paired instances.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./scaffoldd.yaml, /etc/scaffoldd/scaffoldd.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func initConfig() {
	viper.SetDefault("listen", ":8688")
	viper.SetDefault("provider", "")
	viper.SetDefault("peer_limit", 0)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/scaffoldd")
		viper.SetConfigName("scaffoldd")
	}

	viper.SetEnvPrefix("SCAFFOLDD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "scaffoldd: read config: %v\n", err)
			os.Exit(1)
		}
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newService assembles a Service from the loaded configuration.
func newService(logger *slog.Logger) (*scaffold.Service, error) {
	// index_files accepts a single object or an array of objects, so the
	// loaded value is round-tripped through JSON rather than unmarshalled
	// into a fixed shape.
	var raw []byte
	if v := viper.Get("index_files"); v != nil {
		var err error
		raw, err = json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode index_files: %w", err)
		}
	}

	reg, err := index.Load(raw)
	if err != nil {
		return nil, err
	}

	opts := []scaffold.Option{
		scaffold.WithProvider(viper.GetString("provider")),
		scaffold.WithLogger(logger),
	}

	if urls := viper.GetStringSlice("peers"); len(urls) > 0 {
		peers := make([]scaffold.Peer, 0, len(urls))
		for _, u := range urls {
			peers = append(peers, peer.NewClient(u))
		}
		opts = append(opts, scaffold.WithPeers(peers...))
	}
	if limit := viper.GetInt("peer_limit"); limit > 0 {
		opts = append(opts, scaffold.WithPeerLimit(limit))
	}

	return scaffold.New(reg, opts...)
}
