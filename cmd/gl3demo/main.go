//go:build darwin || linux || freebsd

// Command gl3demo opens a window, draws a few 2D primitives with the gl3
// driver and saves the last frame as a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/gl3"
	"github.com/gogpu/gl3/core"
	"github.com/gogpu/gl3/glfwctx"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var (
		config  = flag.String("config", "", "TOML driver configuration")
		output  = flag.String("output", "gl3demo.png", "screenshot file")
		frames  = flag.Int("frames", 120, "frames to render, 0 runs until the window closes")
		hidden  = flag.Bool("hidden", false, "render without showing the window")
		desktop = flag.Bool("desktop", false, "request desktop OpenGL instead of OpenGL ES")
		verbose = flag.Bool("v", false, "log driver diagnostics")
	)
	flag.Parse()

	if *verbose {
		gl3.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := gl3.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = gl3.LoadConfig(*config); err != nil {
			log.Fatal(err)
		}
	}

	ctxCfg := glfwctx.DefaultConfig()
	ctxCfg.Title = "gl3demo"
	ctxCfg.Size = image.Pt(cfg.Width, cfg.Height)
	ctxCfg.Hidden = *hidden
	if *desktop {
		ctxCfg.ES = false
		ctxCfg.Major, ctxCfg.Minor = 3, 3
	}
	win, err := glfwctx.New(ctxCfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := win.Activate(); err != nil {
		log.Fatal(err)
	}
	funcs, err := win.Functions()
	if err != nil {
		log.Fatal(err)
	}

	d, err := gl3.New(funcs,
		gl3.WithConfig(cfg),
		gl3.WithContextManager(win),
		gl3.WithScreenSize(win.FramebufferSize()),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Close()
	win.OnResize(d.OnResize)
	log.Printf("renderer: %s", d.Name())

	checker, err := d.AddTextureFromImage("checker", gl3.ImageFromGo(checkerboard(64, 8)))
	if err != nil {
		log.Fatal(err)
	}

	var shot *gl3.Image
	for frame := 0; (*frames == 0 || frame < *frames) && !win.ShouldClose(); frame++ {
		win.PollEvents()
		if !d.BeginScene(gl3.ClearAll, core.ARGB(255, 24, 32, 48), 1, 0) {
			break
		}
		drawFrame(d, checker, frame)
		shot = d.CreateScreenShot(gl3.TargetFramebuffer)
		if !d.EndScene() {
			break
		}
	}

	if shot == nil {
		log.Fatal("no frame captured")
	}
	if err := savePNG(*output, shot); err != nil {
		log.Fatal(err)
	}
	log.Printf("frame saved to %s (%dx%d)", *output, shot.Size.X, shot.Size.Y)
}

func drawFrame(d *gl3.Driver, checker *gl3.Texture, frame int) {
	size := d.ScreenSize()
	d.Draw2DRectangleGradient(image.Rect(0, 0, size.X, size.Y/3),
		core.ARGB(255, 40, 60, 120), core.ARGB(255, 120, 40, 90),
		core.ARGB(255, 24, 32, 48), core.ARGB(255, 24, 32, 48), nil)

	x := 40 + frame%(max(size.X-200, 1))
	d.Draw2DRectangle(core.ARGB(200, 240, 90, 60), image.Rect(x, 120, x+120, 240), nil)

	cs := checker.Size()
	d.Draw2DImage(checker, image.Pt(40, size.Y-cs.Y-40), image.Rectangle{Max: cs}, nil, core.White, true)

	positions := make([]image.Point, 4)
	rects := make([]image.Rectangle, 4)
	for i := range positions {
		positions[i] = image.Pt(200+i*(cs.X/2+8), size.Y-cs.Y/2-40)
		rects[i] = image.Rect(0, 0, cs.X/2, cs.Y/2)
	}
	d.Draw2DImageBatch(checker, positions, rects, nil, core.ARGB(255, 160, 220, 255), true)

	d.Draw2DLine(image.Pt(0, size.Y/2), image.Pt(size.X, size.Y/2), core.White)
}

func checkerboard(size, cell int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			c := uint8(60)
			if (x/cell+y/cell)%2 == 0 {
				c = 230
			}
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c, c, c, 255
		}
	}
	return img
}

func savePNG(path string, shot *gl3.Image) error {
	img := shot.ToNRGBA()
	if img == nil {
		return &os.PathError{Op: "encode", Path: path, Err: os.ErrInvalid}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
