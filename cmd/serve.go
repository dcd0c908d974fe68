package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vivek888gaya/portfolio/website/pkg/core"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		devMode, _ := cmd.Flags().GetBool("dev")
		listenAddr, _ := cmd.Flags().GetString("listen")
		domain, _ := cmd.Flags().GetString("domain")
		staticDir, _ := cmd.Flags().GetString("static-dir")

		return core.Run(core.ServerConfig{
			DevMode:    devMode,
			ListenAddr: listenAddr,
			Domain:     domain,
			APIBaseURL: apiBaseURL(),
			StaticDir:  staticDir,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolP("dev", "d", false, "Enable development mode (HTTP on localhost:7000)")
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	serveCmd.Flags().String("domain", "vivekkumar.dev", "Domain name for robots.txt")
	serveCmd.Flags().String("static-dir", "website/static", "Directory with static assets (resume.pdf)")
}
