package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:   "cadastro-rural",
	Short: "cadastro-rural serves the rural producer registration app over HTTP and HTTPS",
	Long: `cadastro-rural serves the rural producer registration app on the local network.

It provisions a self-signed TLS certificate on first start so that browsers on
other devices can use geolocation, and falls back to plain HTTP when no
certificate can be created. Running without a subcommand is the same as "serve".`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML); built-in defaults when omitted")
}
