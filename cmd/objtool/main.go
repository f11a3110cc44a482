// objtool is a CLI utility for inspecting Wavefront OBJ models.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/objkit/internal/assets"
	"github.com/Faultbox/objkit/internal/config"
	"github.com/Faultbox/objkit/internal/logger"
	"github.com/Faultbox/objkit/pkg/math"
	"github.com/Faultbox/objkit/pkg/mesh"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()
	args := config.Args()

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	manager, err := assets.NewManager(assets.Options{
		Encoding: cfg.Input.Encoding,
		Cache:    cfg.Input.Cache,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer manager.Close()

	t := &tool{cfg: cfg, assets: manager}

	command := args[0]
	args = args[1:]

	var cmdErr error
	switch command {
	case "info":
		cmdErr = t.cmdInfo(args)
	case "list", "ls":
		cmdErr = t.cmdList(args)
	case "dump":
		cmdErr = t.cmdDump(args)
	case "tris", "triangles":
		cmdErr = t.cmdTris(args)
	case "check":
		cmdErr = t.cmdCheck(args)
	case "mesh":
		cmdErr = t.cmdMesh(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(cmdErr))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objtool - Wavefront OBJ model utility

Usage:
  objtool [flags] <command> [options]

Commands:
  info <file.obj>              Show buffer, object and triangle counts
  list <file.obj>              List objects and groups
  dump <file.obj>              Print the parsed model in OBJ syntax
  tris [-n N] <file.obj>       Print triangle positions
  check <file.obj>...          Parse files and report every failure
  mesh <file.obj> <out.bin>    Export flattened triangles as binary

Flags:
  -config <path>    Config file (default ./config.yaml)
  -debug            Enable debug logging
  -encoding <name>  Input encoding (utf-8, euc-kr, windows-1252, iso-8859-1)
  -no-cache         Disable the parsed model cache
  -scale <s>        Uniform scale for mesh export
  -no-normals       Leave missing normals zero on mesh export

Examples:
  objtool info ship.obj
  objtool -encoding euc-kr list prontera.obj
  objtool check models/*.obj
  objtool -scale 0.01 mesh ship.obj ship.bin`)
}

// tool carries state shared by all commands.
type tool struct {
	cfg    *config.Config
	assets *assets.Manager
}

func usageError(usage string) error {
	return fmt.Errorf("usage: objtool %s", usage)
}

func (t *tool) cmdInfo(args []string) error {
	if len(args) < 1 {
		return usageError("info <file.obj>")
	}

	obj, err := t.assets.Load(args[0])
	if err != nil {
		return err
	}

	var groups, polygons, triangles int
	for range obj.Groups() {
		groups++
	}
	for poly := range obj.Polygons() {
		polygons++
		triangles += poly.TriangleCount()
	}

	var bounds math.Bounds
	for _, p := range obj.Positions() {
		bounds.Extend(math.FromArray(p))
	}

	fmt.Printf("Model:     %s\n", args[0])
	fmt.Printf("Positions: %d\n", len(obj.Positions()))
	fmt.Printf("UVs:       %d\n", len(obj.UVs()))
	fmt.Printf("Normals:   %d\n", len(obj.Normals()))
	fmt.Printf("Objects:   %d\n", obj.ObjectCount())
	fmt.Printf("Groups:    %d\n", groups)
	fmt.Printf("Polygons:  %d\n", polygons)
	fmt.Printf("Triangles: %d\n", triangles)
	fmt.Printf("Bounds:    %s\n", bounds)
	return nil
}

func (t *tool) cmdList(args []string) error {
	if len(args) < 1 {
		return usageError("list <file.obj>")
	}

	obj, err := t.assets.Load(args[0])
	if err != nil {
		return err
	}

	for name, object := range obj.Objects() {
		fmt.Printf("%s\n", displayName(name))
		for gname, group := range object.Groups() {
			fmt.Printf("  %-24s %d polygons\n", displayName(gname), group.Len())
		}
	}
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "(default)"
	}
	return name
}

func (t *tool) cmdDump(args []string) error {
	if len(args) < 1 {
		return usageError("dump <file.obj>")
	}

	obj, err := t.assets.Load(args[0])
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	if _, err := obj.WriteTo(w); err != nil {
		return err
	}
	return w.Flush()
}

func (t *tool) cmdTris(args []string) error {
	fs := flag.NewFlagSet("tris", flag.ExitOnError)
	limit := fs.Int("n", 0, "Limit output to N triangles (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return usageError("tris [-n N] <file.obj>")
	}

	obj, err := t.assets.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	count := 0
	for tri := range obj.Triangles() {
		fmt.Fprintf(w, "%v %v %v\n", tri[0].Position(), tri[1].Position(), tri[2].Position())
		count++
		if *limit > 0 && count >= *limit {
			break
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n(%d triangles)\n", count)
	return nil
}

func (t *tool) cmdCheck(args []string) error {
	if len(args) < 1 {
		return usageError("check <file.obj>...")
	}

	var errs error
	for _, path := range args {
		if _, err := t.assets.Load(path); err != nil {
			errs = multierr.Append(errs, err)
			fmt.Printf("FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Printf("ok   %s\n", path)
	}

	failed := len(multierr.Errors(errs))
	fmt.Fprintf(os.Stderr, "\n(%d checked, %d failed)\n", len(args), failed)
	return errs
}

func (t *tool) cmdMesh(args []string) error {
	if len(args) < 2 {
		return usageError("mesh <file.obj> <out.bin>")
	}

	obj, err := t.assets.Load(args[0])
	if err != nil {
		return err
	}

	m, err := mesh.Build(obj, mesh.Scale(t.cfg.Mesh.Scale, t.cfg.Mesh.GenerateNormals))
	if err != nil {
		return fmt.Errorf("building mesh: %w", err)
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	n, err := m.WriteTo(w)
	if err == nil {
		err = w.Flush()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", args[1], err)
	}

	logger.Info("mesh exported",
		zap.String("output", args[1]),
		zap.Int("triangles", m.Triangles),
		zap.Int64("bytes", n))
	fmt.Printf("Exported: %s (%d triangles, %d bytes, bounds %s)\n", args[1], m.Triangles, n, m.Bounds)
	return nil
}

