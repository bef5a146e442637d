package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tolgahan/oka/internal/imageproxy"
)

var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Serve the image pass-through proxy",
	Long:  "Runs an HTTP server exposing GET /image?url=<image URL> so a\nbrowser-based front end can load generated images without tripping\ncross-origin restrictions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		mux := http.NewServeMux()
		mux.Handle("/image", imageproxy.NewHandler(a.Images, a.Log))

		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		a.Log.Info("image proxy listening", zap.String("addr", addr))
		fmt.Printf("Image proxy listening on %s\n", addr)
		return srv.ListenAndServe()
	},
}

func init() {
	proxyCmd.Flags().String("addr", ":8400", "Listen address")
}
