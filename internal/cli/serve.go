package cli

import (
	"context"
	"errors"
	"html/template"
	"net"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/russross/blackfriday/v2"
	"github.com/spf13/cobra"

	"github.com/mhartvig/typescale/pkg/config"
	"github.com/mhartvig/typescale/pkg/sink"
	"github.com/mhartvig/typescale/pkg/theme"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string // listen address
	configPath string // constants file
	watch      bool   // rebuild on config changes
}

// serveCommand creates the serve command: a local dev server exposing the
// generated artifacts and a rendered specimen page for visual inspection.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8973"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview of the generated theme",
		Long: `Serve runs a local development server with three endpoints:

  /            a specimen page rendered with the generated stylesheet
  /theme.json  the theme description consumed by the styling pipeline
  /theme.css   the generated stylesheet

Switch density on the specimen page with ?density=small or ?density=large.
With --watch, the constants file is re-read and the theme rebuilt whenever
the file changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "constants file (default: typescale.toml if present)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "rebuild when the constants file changes")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	ctx = withLogger(ctx, c.Logger)
	srv := &previewServer{logger: c.Logger, configPath: opts.configPath}
	if err := srv.rebuild(); err != nil {
		return err
	}

	if opts.watch {
		stop, err := srv.watchConfig(ctx)
		if err != nil {
			return err
		}
		defer stop()
	}

	httpSrv := &http.Server{
		Addr:        opts.addr,
		Handler:     srv.router(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	printInfo("specimen page at http://localhost%s/", opts.addr)

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("preview server listening on %s", opts.addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// =============================================================================
// previewServer - HTTP surface over a rebuildable theme
// =============================================================================

// previewServer holds the current theme and its rendered artifacts. The
// core stays pure; only this server carries mutable state, guarded for the
// concurrent handlers.
type previewServer struct {
	logger     *log.Logger
	configPath string

	mu   sync.RWMutex
	json []byte
	css  []byte
}

// rebuild re-reads the constants and regenerates every artifact. On error
// the previous artifacts stay in place.
func (s *previewServer) rebuild() error {
	scale, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	th, err := theme.Build(scale)
	if err != nil {
		return err
	}
	jsonData, err := sink.RenderJSON(th, sink.WithJSONRoot())
	if err != nil {
		return err
	}
	cssData, err := sink.RenderCSS(th)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.json, s.css = jsonData, cssData
	s.mu.Unlock()
	return nil
}

// watchConfig rebuilds the theme whenever the constants file changes.
// The watcher runs until ctx is cancelled or the returned stop function is
// called.
func (s *previewServer) watchConfig(ctx context.Context) (func(), error) {
	path := s.configPath
	if path == "" {
		path = config.DefaultFilename
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors typically replace the file, which drops
	// a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	target := filepath.Clean(path)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := s.rebuild(); err != nil {
					s.logger.Errorf("rebuild after config change: %v", err)
					continue
				}
				s.logger.Infof("theme rebuilt from %s", target)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warnf("config watcher: %v", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}

// router builds the chi route tree.
func (s *previewServer) router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Get("/", s.handleSpecimen)
	r.Get("/theme.json", s.handleJSON)
	r.Get("/theme.css", s.handleCSS)
	return r
}

// requestLogger logs each request at debug level with its duration.
func (s *previewServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, req)
		loggerFromContext(req.Context()).Debugf("%s %s (%s)", req.Method, req.URL.Path, time.Since(start).Round(time.Microsecond))
	})
}

func (s *previewServer) handleJSON(w http.ResponseWriter, req *http.Request) {
	s.mu.RLock()
	data := s.json
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(data)
}

func (s *previewServer) handleCSS(w http.ResponseWriter, req *http.Request) {
	s.mu.RLock()
	data := s.css
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(data)
}

// handleSpecimen renders the specimen article with the generated
// stylesheet inlined, scoped to the requested density.
func (s *previewServer) handleSpecimen(w http.ResponseWriter, req *http.Request) {
	density := req.URL.Query().Get("density")
	switch theme.PresetName(density) {
	case theme.PresetSmall, theme.PresetLarge:
		// keep as-is
	default:
		density = ""
	}

	s.mu.RLock()
	css := s.css
	s.mu.RUnlock()

	data := specimenData{
		Density: density,
		CSS:     template.CSS(css),
		Article: template.HTML(blackfriday.Run([]byte(specimenMarkdown))),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := specimenTmpl.Execute(w, data); err != nil {
		s.logger.Errorf("render specimen: %v", err)
	}
}

type specimenData struct {
	Density string
	CSS     template.CSS
	Article template.HTML
}

var specimenTmpl = template.Must(template.New("specimen").Parse(`<!DOCTYPE html>
<html lang="en"{{if .Density}} data-density="{{.Density}}"{{end}}>
<head>
<meta charset="utf-8">
<title>typescale specimen</title>
<style>
body { max-width: 42rem; margin: 2rem auto; padding: 0 1rem; font-family: Georgia, serif; }
nav { margin-bottom: 2rem; }
{{.CSS}}
</style>
</head>
<body>
<nav>
<a href="/?density=small">small</a> ·
<a href="/">DEFAULT</a> ·
<a href="/?density=large">large</a> ·
<a href="/theme.json">theme.json</a> ·
<a href="/theme.css">theme.css</a>
</nav>
<main>
{{.Article}}
</main>
</body>
</html>
`))

// specimenMarkdown exercises every element the theme styles: headings,
// body text, links, inline code, and a code block.
const specimenMarkdown = `# Specimen: The Quick Brown Fox

A paragraph of body text sets the baseline rhythm. The line height here is
what the ` + "`line-height`" + ` constant controls, and [this link](#) shows the
link color and hover decoration.

## Second-level heading

More body text with ` + "`inline code`" + ` to show the code font size against
its background color.

### Third-level heading

#### Fourth-level heading

` + "```" + `
func main() {
    fmt.Println("preformatted block at the pre font size")
}
` + "```" + `
`
