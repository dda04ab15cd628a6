package cmd

import (
	"os"
	"path/filepath"

	"github.com/aweris/nrs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "nrs",
	Short: "Name resolution for content-addressed storage",
	Long:  "CLI for registering public names, resolving them to content locators and syncing name histories with OCI registries.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/nrs/config.yaml)")
	rootCmd.PersistentFlags().String("store-dir", "", "local store directory (default: ~/.local/share/nrs)")
	rootCmd.PersistentFlags().String("remote", "", "OCI repository for push/pull (e.g. ttl.sh/myorg/nrs)")

	viper.BindPFlag("store_dir", rootCmd.PersistentFlags().Lookup("store-dir"))
	viper.BindPFlag("remote", rootCmd.PersistentFlags().Lookup("remote"))
}

func initConfig() {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("NRS")
	viper.AutomaticEnv()
	viper.SetDefault("store_dir", defaultStoreDir())

	viper.ReadInConfig()
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nrs")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "nrs")
	}
	return ".nrs"
}

func defaultStoreDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "nrs")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "nrs")
	}
	return ".nrs"
}

// sessionOptions builds options for a top name's session. Each top
// name syncs with its own tag under the configured remote repository.
func sessionOptions(topname string) []nrs.Option {
	opts := []nrs.Option{nrs.WithStoreDir(viper.GetString("store_dir"))}
	if remote := viper.GetString("remote"); remote != "" {
		opts = append(opts, nrs.WithRemote(remote+":"+topname))
	}
	return opts
}
