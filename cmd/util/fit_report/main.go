// Command fit_report renders how a folder of images is fit into the stencil,
// with and without smart placement, as an HTML page for eyeballing.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Stencil/config"
	"github.com/dixieflatline76/Stencil/pkg/editor"
	"github.com/dixieflatline76/Stencil/pkg/focus"
	"github.com/dixieflatline76/Stencil/pkg/stencil"
	"github.com/dixieflatline76/Stencil/util/log"
)

type result struct {
	Name      string
	Width     int
	Height    int
	Fit       stencil.Transform
	Smart     stencil.Transform
	FocusNote string
}

func main() {
	src := flag.String("src", filepath.Join("test_assets", "fit_images"), "directory with source images")
	out := flag.String("out", "report_output", "output directory")
	model := flag.String("model", "", "optional pigo face cascade")
	flag.Parse()

	if err := os.MkdirAll(*out, 0755); err != nil {
		log.Fatalf("Failed to create output dir: %v", err)
	}

	cfg := config.DefaultEditorConfig()
	frame := stencil.Centered(cfg.CanvasWidth, cfg.CanvasHeight, cfg.StencilWidth, cfg.StencilHeight, cfg.StencilRadius)

	var faces focus.Finder
	if *model != "" {
		ff, err := focus.LoadFaceFinder(*model)
		if err != nil {
			log.Printf("Warning: face model not loaded, saliency only: %v", err)
		} else {
			faces = ff
		}
	}
	finder := focus.Combine(faces, focus.NewSaliencyFinder(int(frame.Width), int(frame.Height)))

	entries, err := os.ReadDir(*src)
	if err != nil {
		log.Fatalf("Failed to read source directory %s: %v", *src, err)
	}

	var results []result
	for _, e := range entries {
		if e.IsDir() || !isImage(e.Name()) {
			continue
		}
		path := filepath.Join(*src, e.Name())
		log.Printf("Processing %s...", e.Name())

		img, err := imaging.Open(path, imaging.AutoOrientation(true))
		if err != nil {
			log.Printf("Failed to open %s: %v", path, err)
			continue
		}
		r := measure(strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())), img, frame, finder)

		for suffix, t := range map[string]stencil.Transform{"fit": r.Fit, "smart": r.Smart} {
			if err := renderPreview(img, cfg, t, filepath.Join(*out, r.Name+"_"+suffix+".png")); err != nil {
				log.Printf("Failed to render %s %s: %v", r.Name, suffix, err)
			}
		}
		results = append(results, r)
	}

	if len(results) == 0 {
		log.Fatalf("No images found in %s", *src)
	}

	page, err := buildHTML(results)
	if err != nil {
		log.Fatalf("Failed to build report: %v", err)
	}
	reportPath := filepath.Join(*out, "index.html")
	if err := os.WriteFile(reportPath, []byte(page), 0644); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	log.Printf("Report written to %s", reportPath)
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

func measure(name string, img image.Image, frame stencil.Frame, finder focus.Finder) result {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	r := result{
		Name:   name,
		Width:  b.Dx(),
		Height: b.Dy(),
		Fit:    stencil.InitialTransform(w, h, frame),
	}
	r.Smart = r.Fit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p, err := finder.Find(ctx, img)
	switch {
	case errors.Is(err, focus.ErrNotFound):
		r.FocusNote = "no focus, centered"
	case err != nil:
		r.FocusNote = "focus failed: " + err.Error()
	default:
		r.Smart = stencil.FocusTransform(w, h, frame, p.X, p.Y)
		r.FocusNote = fmt.Sprintf("focus at %.0f,%.0f", p.X, p.Y)
	}
	return r
}

// renderPreview draws img at t through a scene identical to the editor's.
func renderPreview(img image.Image, cfg config.EditorConfig, t stencil.Transform, path string) error {
	sc := editor.NewScene(cfg)
	sc.SetImage(img)
	sc.Apply(t)
	return imaging.Save(sc.Render(), path)
}

var reportTemplate = template.Must(template.New("report").Parse(`<html><head><style>
	body { font-family: sans-serif; background: #222; color: #eee; padding: 20px; }
	.case { margin-bottom: 40px; border-bottom: 1px solid #444; padding-bottom: 20px; }
	.grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 10px; }
	img { max-width: 100%; border: 2px solid #555; }
	.meta { font-size: 0.8em; color: #999; }
</style></head><body><h1>Stencil Fit Report</h1>
{{range .}}<div class="case"><h2>{{.Name}}</h2><div class="meta">{{.Width}}x{{.Height}}, {{.FocusNote}}</div><div class="grid">
<div><img src="{{.Name}}_fit.png"><div class="meta">centered {{.Fit}}</div></div>
<div><img src="{{.Name}}_smart.png"><div class="meta">smart {{.Smart}}</div></div>
</div></div>
{{end}}</body></html>
`))

func buildHTML(results []result) (string, error) {
	var html strings.Builder
	if err := reportTemplate.Execute(&html, results); err != nil {
		return "", err
	}
	return html.String(), nil
}
