// spatialtool is a CLI utility for inspecting scene description files and
// experimenting with transforms.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/spatial/internal/config"
	"github.com/Faultbox/spatial/internal/logger"
	"github.com/Faultbox/spatial/pkg/math"
	"github.com/Faultbox/spatial/pkg/scene"
)

// app carries the loaded configuration into the commands.
type app struct {
	cfg      *config.Config
	sceneCfg scene.Config
}

func main() {
	flag.Usage = printUsage

	// Parse CLI flags first
	config.ParseFlags()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	math.SetLogger(logger.Log.Named("math"))

	sceneCfg, err := cfg.SceneConfig()
	if err != nil {
		logger.Fatal("invalid scene config", zap.Error(err))
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	a := &app{cfg: cfg, sceneCfg: sceneCfg}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "eval":
		a.cmdEval(args)
	case "tree":
		a.cmdTree(args)
	case "decompose":
		a.cmdDecompose(args)
	case "euler":
		a.cmdEuler(args)
	case "convert":
		a.cmdConvert(args)
	case "dump":
		a.cmdDump(args)
	case "pick":
		a.cmdPick(args)
	case "watch":
		a.cmdWatch(args)
	case "config":
		a.cmdConfig(args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`spatialtool - scene transform utility

Usage:
  spatialtool [flags] <command> [args]

Flags:
  -config <file>    Config file (default ./spatial.yaml or user config dir)
  -debug            Enable debug logging
  -order <order>    Default Euler order (XYZ, YZX, ZXY, XZY, YXZ, ZYX)
  -strict           Fail on singular matrices
  -log-file <file>  Also log to a rotating file

Commands:
  eval <scene>                Print world transforms of every node
  tree <scene>                Print the node hierarchy
  decompose <m0> ... <m15>    Decompose a column-major 4x4 matrix
  euler <x> <y> <z> [order]   Convert Euler degrees to quaternion and matrix
  convert <in> <out>          Re-encode a scene between YAML and TOML
  dump <scene> [name]         Dump the full state of a node
  pick <scene> <x> <y>        Cast a camera ray through NDC (x, y)
  watch <scene>               Re-evaluate a scene whenever it changes
  config init [path]          Write the effective config (default user config dir)

Examples:
  spatialtool eval robot.yaml
  spatialtool -order ZYX euler 10 20 30
  spatialtool convert robot.yaml robot.toml
  spatialtool dump robot.toml forearm
  spatialtool -order ZYX config init ./spatial.yaml`)
}

// fatal logs err and exits.
func fatal(msg string, err error) {
	logger.Fatal(msg, zap.Error(err))
}
