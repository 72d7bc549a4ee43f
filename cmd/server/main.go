package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/postgen/postgen/internal/api"
	"github.com/postgen/postgen/internal/config"
	"github.com/postgen/postgen/internal/export"
	imagepkg "github.com/postgen/postgen/internal/image"
	"github.com/postgen/postgen/internal/logging"
	"github.com/postgen/postgen/internal/render"
	"github.com/postgen/postgen/internal/templates"
	"github.com/postgen/postgen/internal/util"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Branded real estate post renderer",
	Long: `Renders branded social media posts from a fixed catalog of templates.

Run without a subcommand to start the HTTP API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Development)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: serve,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  serve,
}

var (
	listFormat string
	listImages int
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Print template summaries as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := templates.Default()
		defs := cat.All()
		if listFormat != "" {
			defs = cat.ForFormat(templates.CanvasFormat(listFormat))
		}
		out := make([]templates.Summary, 0, len(defs))
		for _, d := range defs {
			if listImages > 0 && listImages < d.ImageCount {
				continue
			}
			out = append(out, templates.Summarize(d))
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

var (
	requestPath string
	outDir      string
	preview     bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a request file to image files",
	Long: `Reads a JSON render request (templateId, format, images, texts, brand,
property) and writes one image per slide into the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(requestPath)
		if err != nil {
			return fmt.Errorf("read request: %w", err)
		}
		var req render.Request
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("parse request %s: %w", requestPath, err)
		}

		r := newRenderer()
		out, err := r.Render(cmd.Context(), req, preview)
		if err != nil {
			return err
		}
		res := export.Build(req.TemplateID, out.Slides, out.Ext)
		for _, f := range res.Files {
			path := filepath.Join(outDir, f.Name)
			if err := util.WriteFile(path, f.Data); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d bytes\t%s\n", path, f.Size, f.Digest)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "postgen.yaml", "path to the yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	templatesCmd.Flags().StringVar(&listFormat, "format", "", "only templates supporting this canvas format")
	templatesCmd.Flags().IntVar(&listImages, "images", 0, "only templates usable with this many images")

	renderCmd.Flags().StringVarP(&requestPath, "request", "r", "", "render request JSON file")
	renderCmd.Flags().StringVarP(&outDir, "out", "o", "out", "output directory")
	renderCmd.Flags().BoolVar(&preview, "preview", false, "render downscaled JPEG previews")
	_ = renderCmd.MarkFlagRequired("request")

	rootCmd.AddCommand(serveCmd, templatesCmd, renderCmd)
}

func newRenderer() *render.Renderer {
	fetcher := imagepkg.NewHTTPFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
	return render.NewRenderer(templates.Default(), fetcher, logger.Named("render"), cfg.RenderOptions())
}

func serve(cmd *cobra.Command, args []string) error {
	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(newRenderer(), logger.Named("api"))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", "http://localhost:"+cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
