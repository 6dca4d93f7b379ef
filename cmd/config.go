package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const maskedSecret = "********"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printConfig(cmd.OutOrStdout(), viper.GetViper())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func printConfig(w io.Writer, v *viper.Viper) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(effectiveConfig(v)); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

// effectiveConfig nests every resolved key back into a tree. Durations are
// rendered as "500ms" and the signing key is masked.
func effectiveConfig(v *viper.Viper) map[string]any {
	out := map[string]any{}
	for _, key := range v.AllKeys() {
		val := v.Get(key)
		switch x := val.(type) {
		case time.Duration:
			val = x.String()
		}
		if key == "auth.signing_key" && v.GetString(key) != "" {
			val = maskedSecret
		}

		parts := strings.Split(key, ".")
		node := out
		for _, p := range parts[:len(parts)-1] {
			next, ok := node[p].(map[string]any)
			if !ok {
				next = map[string]any{}
				node[p] = next
			}
			node = next
		}
		node[parts[len(parts)-1]] = val
	}
	return out
}
