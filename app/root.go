// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sitepanel",
	Short: "sitepanel is the backend for a small business website",
	Long: `sitepanel is the backend for a small business website with a public
storefront (products, categories, banners, site settings) and an admin
panel for content management.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
