package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/richinsley/gomandel/glfwcontext"
	"github.com/richinsley/gomandel/options"
	"github.com/richinsley/gomandel/renderer"
)

func runMandel(opts *options.Options) {
	record := opts.Recording()

	// a recording renders into a hidden window
	ctx, err := glfwcontext.New(opts, !record)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}

	r, err := renderer.NewRenderer(ctx, opts)
	if err != nil {
		ctx.Shutdown()
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Shutdown()

	if err := r.InitScene(); err != nil {
		log.Fatalf("Failed to initialize scene: %v", err)
	}

	if record {
		log.Println("Starting offscreen render loop...")
		if err := r.Record(); err != nil {
			log.Fatalf("Offscreen rendering failed: %v", err)
		}
		log.Printf("Successfully rendered to %s", *opts.Record)
		return
	}
	log.Println("Starting interactive render loop...")
	r.Run()
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if *opts.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	runMandel(opts)
}
