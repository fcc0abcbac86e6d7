package cmd

import (
	"github.com/bgraf/gpxview/cmd/serve"
	"github.com/bgraf/gpxview/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the map UI on a local address",
	Long: `Serve starts the map UI. Track files are picked in the browser, or handed
over once at startup with --file.`,
	RunE: serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", ":8000", "Address to listen on")
	serveCmd.Flags().StringP("file", "f", "", "Track file to show at startup")

	mustBind(config.KeyListenAddress, serveCmd, "listen")
	mustBind(config.KeyInitialFile, serveCmd, "file")
}

func mustBind(key string, cmd *cobra.Command, flag string) {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(err)
	}
}
