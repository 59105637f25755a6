// Package cmd holds the techbucket command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/techbucket/techbucket-web/config"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "techbucket",
	Short: "TechBucket website and admin back office",
	Long: `techbucket serves the TechBucket marketing site, its lead forms and the
admin back office. Catalog and lead data live in the TechBucket REST API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default techbucket.yml, then /etc/techbucket.yml)")
}

func loadConfig() (*config.AppConfig, error) {
	return config.LoadConfig(configFile)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
