// gltftool is a CLI utility for inspecting glTF scene files.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/gltfbundle/internal/config"
	"github.com/Faultbox/gltfbundle/internal/logger"
	"github.com/Faultbox/gltfbundle/pkg/gltf"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "validate", "check":
		cmdValidate(args)
	case "dump":
		cmdDump(args)
	case "stats":
		cmdStats(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gltftool - glTF scene inspection utility

Usage:
  gltftool <command> <file.gltf> [options]

Commands:
  info <file.gltf>             Show per-section counts and totals
  validate <file.gltf>         Parse and report the result
  dump <file.gltf> [section]   List nodes, meshes, materials or animations
  stats <file.gltf>            Vertex/index totals and buffer sizes

Options:
  -scale f    Scene scale factor (default from config, 1.0)
  -config p   Path to a gltftool.yaml config file
  -log p      Log file path
  -debug      Enable debug logging

Examples:
  gltftool info model.gltf
  gltftool dump model.gltf nodes
  gltftool stats model.gltf -scale 0.01`)
}

// setup parses trailing flags, loads the config, initializes logging,
// and parses the document. It exits the process on failure.
func setup(path string, flags []string) (*gltf.SceneBundle, *config.Config) {
	if err := config.ParseFlags(flags); err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("parsing document", zap.String("path", path), zap.Float32("scale", cfg.Tool.Scale))

	bundle, err := gltf.ParseFile(path, cfg.Tool.Scale)
	if err != nil {
		logger.Error("parse failed", zap.String("path", path), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	return bundle, cfg
}

func fileArg(args []string, command string) (string, []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: gltftool %s <file.gltf>\n", command)
		os.Exit(1)
	}
	return args[0], args[1:]
}

func cmdInfo(args []string) {
	path, flags := fileArg(args, "info")
	bundle, _ := setup(path, flags)
	defer logger.Sync()

	fmt.Printf("File:        %s\n", path)
	fmt.Printf("Scenes:      %d (default %d)\n", len(bundle.Scenes), bundle.DefaultScene)
	fmt.Printf("Nodes:       %d\n", len(bundle.Nodes))
	fmt.Printf("Meshes:      %d\n", len(bundle.Meshes))
	fmt.Printf("Materials:   %d\n", len(bundle.Materials))
	fmt.Printf("Textures:    %d\n", len(bundle.Textures))
	fmt.Printf("Images:      %d\n", len(bundle.Images))
	fmt.Printf("Samplers:    %d\n", len(bundle.Samplers))
	fmt.Printf("Cameras:     %d\n", len(bundle.Cameras))
	fmt.Printf("Skins:       %d\n", len(bundle.Skins))
	fmt.Printf("Animations:  %d\n", len(bundle.Animations))
	fmt.Printf("Buffers:     %d\n", len(bundle.Buffers))
	fmt.Printf("Vertices:    %d\n", bundle.TotalVertices)
	fmt.Printf("Indices:     %d\n", bundle.TotalIndices)
}

func cmdValidate(args []string) {
	path, flags := fileArg(args, "validate")
	bundle, _ := setup(path, flags)
	defer logger.Sync()

	// setup exits on parse failure, so reaching here means success
	fmt.Printf("%s: %s\n", path, bundle.Error)
}

func cmdStats(args []string) {
	path, flags := fileArg(args, "stats")
	bundle, _ := setup(path, flags)
	defer logger.Sync()

	fmt.Printf("Total vertices: %d\n", bundle.TotalVertices)
	fmt.Printf("Total indices:  %d\n", bundle.TotalIndices)

	var payload int
	for i, buf := range bundle.Buffers {
		fmt.Printf("Buffer %d: %d bytes (declared %d)\n", i, len(buf.Data), buf.ByteLength)
		payload += len(buf.Data)
	}
	fmt.Printf("Payload bytes:  %d\n", payload)

	for _, anim := range bundle.Animations {
		fmt.Printf("Animation %q: %.3fs, %d channels, %d samplers\n",
			anim.Name, anim.Duration, len(anim.Channels), len(anim.Samplers))
	}
}

func cmdDump(args []string) {
	path, rest := fileArg(args, "dump")
	section := "nodes"
	if len(rest) > 0 && rest[0] != "" && rest[0][0] != '-' {
		section = rest[0]
		rest = rest[1:]
	}
	bundle, cfg := setup(path, rest)
	defer logger.Sync()

	switch section {
	case "nodes":
		dumpNodes(bundle, cfg.Tool.DumpPrecision)
	case "meshes":
		dumpMeshes(bundle)
	case "materials":
		dumpMaterials(bundle)
	case "animations":
		dumpAnimations(bundle)
	default:
		fmt.Fprintf(os.Stderr, "Unknown section: %s (want nodes, meshes, materials or animations)\n", section)
		os.Exit(1)
	}
}
