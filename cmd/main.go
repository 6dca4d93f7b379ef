package main

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// @title                       Lentora API
// @version                     1.0
// @description                 Pomodoro focus timer, tasks and statistics for the Lentora dashboard.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

const envPrefix = "LENTORA"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "lentora",
	Short:        "Lentora - focus timer dashboard backend",
	SilenceUsage: true,
	// Without a subcommand, serve.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cfgFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default configs/config.yml)")
	rootCmd.PersistentFlags().String("port", "", "HTTP port")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	_ = viper.BindPFlag("db.path", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// setDefaults registers every key so env overrides and `lentora config`
// see them even without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "lentora.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", 12*time.Hour)

	v.SetDefault("timer.focus_minutes", 25)
	v.SetDefault("timer.short_break_minutes", 5)
	v.SetDefault("timer.long_break_minutes", 15)
	v.SetDefault("timer.long_break_interval", 4)
	v.SetDefault("timer.auto_start_breaks", true)
	v.SetDefault("timer.auto_start_focus", true)
	v.SetDefault("timer.sound_enabled", true)
	v.SetDefault("timer.auto_start_delay", 500*time.Millisecond)
	v.SetDefault("timer.tick", time.Second)

	v.SetDefault("stats.rollover_check", 30*time.Second)
}

// loadConfig reads path, or configs/config.yml when path is empty. A missing
// default file is not an error: defaults and LENTORA_* variables still apply.
func loadConfig(path string) error {
	return readConfig(viper.GetViper(), path)
}

func readConfig(v *viper.Viper, path string) error {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		return v.ReadInConfig()
	}
	v.AddConfigPath("configs") // configs/config.yml
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}
