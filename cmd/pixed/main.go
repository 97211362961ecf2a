package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pixed/internal/config"
	"github.com/san-kum/pixed/internal/editor"
	"github.com/san-kum/pixed/internal/export"
	"github.com/san-kum/pixed/internal/grid"
	"github.com/san-kum/pixed/internal/gui"
	"github.com/san-kum/pixed/internal/importer"
	"github.com/san-kum/pixed/internal/metrics"
	"github.com/san-kum/pixed/internal/render"
	"github.com/san-kum/pixed/internal/script"
	"github.com/san-kum/pixed/internal/storage"
	"github.com/san-kum/pixed/internal/tui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	// export
	outFile string
	scale   int
	archive bool
	// render
	frameOut  string
	zoomLevel float64
	// import
	openAfter bool
)

// main registers the pixed commands and runs the desktop editor when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "pixed",
		Short: "pixel art editor",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "export archive directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset canvas geometry")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	guiCmd := &cobra.Command{
		Use:   "gui [script]",
		Short: "open the desktop editor",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [script]",
		Short: "open the terminal editor",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}

	exportCmd := &cobra.Command{
		Use:   "export [script]",
		Short: "replay a script and export the artwork as PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportArtwork,
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default: export_name from config)")
	exportCmd.Flags().IntVar(&scale, "scale", 1, "integer upscale factor")
	exportCmd.Flags().BoolVar(&archive, "archive", false, "also archive the export in the data directory")

	renderCmd := &cobra.Command{
		Use:   "render [script]",
		Short: "replay a script and save the editor frame with grid lines",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderFrame,
	}
	renderCmd.Flags().StringVarP(&frameOut, "out", "o", "frame.png", "output file")
	renderCmd.Flags().Float64Var(&zoomLevel, "zoom", 1, "zoom level")

	importCmd := &cobra.Command{
		Use:   "import [image]",
		Short: "convert an image into pixel art",
		Args:  cobra.ExactArgs(1),
		RunE:  importImage,
	}
	importCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default: export_name from config)")
	importCmd.Flags().BoolVar(&archive, "archive", false, "also archive the export in the data directory")
	importCmd.Flags().BoolVar(&openAfter, "open", false, "open the result in the desktop editor")

	statsCmd := &cobra.Command{
		Use:   "stats [script]",
		Short: "replay a script and summarize the artwork",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showStats,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list canvas presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCANVAS\tPIXEL\tGRID")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%d\t%dx%d\n", name, p.CanvasWidth, p.CanvasHeight, p.BasePixelSize, p.GridWidth(), p.GridHeight())
			}
			return w.Flush()
		},
	}

	exportsCmd := &cobra.Command{
		Use:   "exports",
		Short: "list archived exports",
		RunE:  listExports,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, exportCmd, renderCmd, importCmd, statsCmd, presetsCmd, exportsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if level >= logrus.DebugLevel {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	return nil
}

// loadConfig resolves the config file, then the preset geometry, then the
// --data flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p, ok := config.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.ApplyGeometry(p)
	}

	if cmd.Flags().Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	log.WithFields(logrus.Fields{
		"canvas": fmt.Sprintf("%dx%d", cfg.CanvasWidth, cfg.CanvasHeight),
		"pixel":  cfg.BasePixelSize,
		"preset": preset,
	}).Debug("config resolved")
	return cfg, nil
}

func newSession(cfg *config.Config, cells *grid.Store) (*editor.Session, error) {
	return editor.NewSession(editor.Options{
		CanvasWidth:   cfg.CanvasWidth,
		CanvasHeight:  cfg.CanvasHeight,
		BasePixelSize: cfg.BasePixelSize,
		GridStyle:     render.GridStyle{Color: grid.Color(cfg.GridLineColor), Width: cfg.GridLineWidth},
		RecentLimit:   cfg.RecentLimit,
		Color:         grid.Color(cfg.DefaultColor),
		Cells:         cells,
		Logger:        log,
	})
}

// loadSession builds a session from the resolved config and replays the
// optional script argument into it.
func loadSession(cmd *cobra.Command, args []string) (*config.Config, *editor.Session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	s, err := newSession(cfg, nil)
	if err != nil {
		return nil, nil, err
	}
	if len(args) == 0 {
		return cfg, s, nil
	}

	sc, err := script.Load(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load script: %w", err)
	}
	if err := script.Run(s, sc); err != nil {
		return nil, nil, err
	}
	log.WithFields(logrus.Fields{"script": args[0], "steps": len(sc.Steps)}).Info("script replayed")
	return cfg, s, nil
}

func palette(cfg *config.Config) []grid.Color {
	colors := make([]grid.Color, len(cfg.Palette))
	for i, c := range cfg.Palette {
		colors[i] = grid.Color(c)
	}
	return colors
}

func archiveSession(cfg *config.Config, s *editor.Session, name string) (string, error) {
	st := storage.New(cfg.DataDir, log)
	if err := st.Init(); err != nil {
		return "", err
	}

	data, err := s.ExportPNG()
	if err != nil {
		return "", err
	}

	cols, rows := s.Grid().Dimensions()
	w, h := s.ExportSize()
	colors := s.Grid().Colors()
	meta := storage.ExportMetadata{
		GridWidth:     cols,
		GridHeight:    rows,
		BasePixelSize: int(s.Viewport().BasePixelSize()),
		Width:         w,
		Height:        h,
		Painted:       s.Grid().Painted(),
		Colors:        make([]string, len(colors)),
	}
	for i, c := range colors {
		meta.Colors[i] = string(c)
	}

	return st.Save(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)), data, meta)
}

// interactiveExport saves to the configured export name and archives a copy.
func interactiveExport(cfg *config.Config) func(*editor.Session) (string, error) {
	return func(s *editor.Session) (string, error) {
		if err := s.SaveExport(cfg.ExportName); err != nil {
			return "", err
		}
		id, err := archiveSession(cfg, s, cfg.ExportName)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s (%s)", cfg.ExportName, id), nil
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, s, err := loadSession(cmd, args)
	if err != nil {
		return err
	}
	gui.Run(s, gui.Options{Palette: palette(cfg), Export: interactiveExport(cfg)})
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, s, err := loadSession(cmd, args)
	if err != nil {
		return err
	}
	return tui.Run(s, tui.Options{Palette: palette(cfg), Export: interactiveExport(cfg)})
}

func exportArtwork(cmd *cobra.Command, args []string) error {
	cfg, s, err := loadSession(cmd, args)
	if err != nil {
		return err
	}
	return writeExport(cfg, s)
}

func writeExport(cfg *config.Config, s *editor.Session) error {
	if outFile == "" {
		outFile = cfg.ExportName
	}
	if scale < 1 {
		return fmt.Errorf("scale must be positive, got %d", scale)
	}
	w, h := s.ExportSize()

	switch {
	case isSVG(outFile):
		svg := export.NewSVG(w, h, scale)
		s.ExportArtwork(svg)
		if err := svg.Save(outFile); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	case scale == 1:
		if err := s.SaveExport(outFile); err != nil {
			return err
		}
	default:
		img, err := s.ExportImage()
		if err != nil {
			return err
		}
		if err := imaging.Save(render.Scale(img, scale), outFile); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}

	fmt.Printf("exported %s (%dx%d, %d painted)\n", outFile, w*scale, h*scale, s.Grid().Painted())

	if archive {
		id, err := archiveSession(cfg, s, outFile)
		if err != nil {
			return err
		}
		fmt.Printf("archived as %s\n", id)
	}
	return nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	_, s, err := loadSession(cmd, args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("zoom") {
		s.SetZoom(zoomLevel)
	}

	w, h := s.FrameSize()
	if isSVG(frameOut) {
		svg := export.NewSVG(w, h, 1)
		s.RenderFrame(svg)
		if err := svg.Save(frameOut); err != nil {
			return err
		}
	} else {
		c := render.NewCanvas(w, h)
		defer c.Close()
		s.RenderFrame(c)
		if err := c.SavePNG(frameOut); err != nil {
			return err
		}
	}

	fmt.Printf("rendered %s (%dx%d at %.1fx)\n", frameOut, w, h, s.Viewport().Zoom())
	return nil
}

func importImage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cells, err := importer.Load(args[0], cfg.GridWidth(), cfg.GridHeight())
	if err != nil {
		return err
	}
	s, err := newSession(cfg, cells)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"image": args[0], "painted": cells.Painted()}).Info("image imported")

	if openAfter {
		gui.Run(s, gui.Options{Palette: palette(cfg), Export: interactiveExport(cfg)})
		return nil
	}
	return writeExport(cfg, s)
}

func showStats(cmd *cobra.Command, args []string) error {
	_, s, err := loadSession(cmd, args)
	if err != nil {
		return err
	}

	cells := s.Grid()
	cols, rows := cells.Dimensions()
	colors := metrics.NewPalette()
	bounds := metrics.NewBounds()
	values := metrics.Collect(cells, metrics.NewCoverage(), colors, metrics.NewDominance(), bounds)

	fmt.Printf("grid: %dx%d\n", cols, rows)
	fmt.Printf("painted: %d/%d (%.1f%%)\n", cells.Painted(), cols*rows, 100*values["coverage"])
	if x, y, bw, bh, ok := bounds.Rect(); ok {
		fmt.Printf("bounds: %dx%d at (%d,%d)\n", bw, bh, x, y)
		fmt.Printf("dominant color share: %.1f%%\n", 100*values["dominance"])

		fmt.Println()
		graph := asciigraph.Plot(metrics.ColumnProfile(cells),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("painted cells per column"),
		)
		fmt.Println(graph)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nCOLOR\tCELLS")
	for _, c := range cells.Colors() {
		fmt.Fprintf(w, "%s\t%d\n", c, colors.Count(c))
	}
	return w.Flush()
}

func isSVG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

func listExports(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir, log)
	exports, err := st.List()
	if err != nil {
		return err
	}
	if len(exports) == 0 {
		fmt.Println("no exports")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tGRID\tSIZE\tPAINTED\tCOLORS")
	for _, e := range exports {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%dx%d\t%d\t%d\n",
			e.ID,
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.GridWidth, e.GridHeight,
			e.Width, e.Height,
			e.Painted,
			len(e.Colors),
		)
	}
	return w.Flush()
}
