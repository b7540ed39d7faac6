package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/spatial/internal/config"
	"github.com/Faultbox/spatial/internal/logger"
	"github.com/Faultbox/spatial/internal/scenefile"
	"github.com/Faultbox/spatial/pkg/camera"
	"github.com/Faultbox/spatial/pkg/math"
	"github.com/Faultbox/spatial/pkg/scene"
)

func usage(line string) {
	fmt.Fprintln(os.Stderr, "Usage: spatialtool "+line)
	os.Exit(1)
}

// load reads and builds a scene file with world matrices up to date.
func (a *app) load(path string) (*scenefile.Document, *scene.Object3D) {
	doc, err := scenefile.Load(path)
	if err != nil {
		fatal("failed to load scene", err)
	}
	root, err := a.build(doc)
	if err != nil {
		fatal("failed to build scene", err)
	}
	return doc, root
}

func (a *app) build(doc *scenefile.Document) (*scene.Object3D, error) {
	root, err := scenefile.Build(doc, a.sceneCfg)
	if err != nil {
		return nil, err
	}
	root.UpdateMatrixWorld(true)
	logger.Debug("scene built", zap.Int("nodes", countNodes(root)))
	return root, nil
}

func countNodes(root *scene.Object3D) int {
	n := 0
	root.Traverse(func(*scene.Object3D) { n++ })
	return n
}

func (a *app) cmdEval(args []string) {
	if len(args) < 1 {
		usage("eval <scene>")
	}
	doc, root := a.load(args[0])
	if err := a.evaluate(doc, root); err != nil {
		fatal("evaluation failed", err)
	}
}

// evaluate prints the world transform of every node below root and, when
// the document has a camera, where each node lands on screen.
func (a *app) evaluate(doc *scenefile.Document, root *scene.Object3D) error {
	var cam *camera.Camera
	if doc.Camera != nil {
		var err error
		_, cam, err = scenefile.BuildCamera(doc.Camera, a.sceneCfg, a.cfg.Camera, a.cfg.Scene.StrictInverse)
		if err != nil {
			return err
		}
	}

	var evalErr error
	root.Traverse(func(n *scene.Object3D) {
		if n == root || evalErr != nil {
			return
		}
		if a.cfg.Scene.StrictInverse {
			if _, err := n.MatrixWorld.GetInverse(true); err != nil {
				evalErr = fmt.Errorf("node %q: %w", n.Name, err)
				return
			}
		}

		pos, quat, scale := n.MatrixWorld.Decompose()
		fmt.Printf("%-16s pos %s  quat %s  scale %s\n", n.Name, fmtVec3(pos), fmtQuat(quat), fmtVec3(scale))
		if cam != nil {
			ndc := cam.Project(pos)
			fmt.Printf("%-16s ndc %s\n", "", fmtVec3(ndc))
		}
	})
	return evalErr
}

func (a *app) cmdTree(args []string) {
	if len(args) < 1 {
		usage("tree <scene>")
	}
	_, root := a.load(args[0])
	fmt.Print(root.Tree())
}

func (a *app) cmdDecompose(args []string) {
	if len(args) != 16 {
		usage("decompose <m0> ... <m15>  (column-major)")
	}
	values, err := parseFloats(args)
	if err != nil {
		fatal("invalid matrix", err)
	}
	m := math.Mat4FromArray(values, 0)

	var (
		pos, scale math.Vec3
		quat       math.Quat
	)
	if a.cfg.Scene.StrictInverse {
		pos, quat, scale, err = m.DecomposeChecked()
		if err != nil {
			fatal("cannot decompose", err)
		}
	} else {
		pos, quat, scale = m.Decompose()
	}

	fmt.Printf("Position:   %s\n", fmtVec3(pos))
	fmt.Printf("Quaternion: %s\n", fmtQuat(quat))
	fmt.Printf("Rotation:   %s\n", math.EulerFromQuat(quat, a.sceneCfg.EulerOrder))
	fmt.Printf("Scale:      %s\n", fmtVec3(scale))
	fmt.Printf("Det:        %g\n", m.Determinant())
}

func (a *app) cmdEuler(args []string) {
	if len(args) != 3 && len(args) != 4 {
		usage("euler <x> <y> <z> [order]  (degrees)")
	}
	values, err := parseFloats(args[:3])
	if err != nil {
		fatal("invalid angle", err)
	}
	order := a.sceneCfg.EulerOrder
	if len(args) == 4 {
		if order, err = math.ParseEulerOrder(args[3]); err != nil {
			fatal("invalid order", err)
		}
	}

	e := math.NewEuler(math.DegToRad(values[0]), math.DegToRad(values[1]), math.DegToRad(values[2]), order)
	q := e.ToQuat()
	m := math.MakeRotationFromEuler(e)

	fmt.Printf("Euler:      %s\n", e)
	fmt.Printf("Quaternion: %s\n", fmtQuat(q))
	fmt.Println("Matrix:")
	fmt.Print(fmtMat4(m))
	fmt.Printf("Back:       %s\n", math.EulerFromRotationMatrix(m, order))
}

func (a *app) cmdConvert(args []string) {
	if len(args) != 2 {
		usage("convert <in> <out>")
	}
	doc, root := a.load(args[0])

	out := scenefile.Export(root)
	out.Camera = doc.Camera
	if err := scenefile.Save(args[1], out); err != nil {
		fatal("failed to save scene", err)
	}
	logger.Info("scene converted", zap.String("from", args[0]), zap.String("to", args[1]))
}

func (a *app) cmdWatch(args []string) {
	if len(args) < 1 {
		usage("watch <scene>")
	}
	path := args[0]
	doc, root := a.load(path)
	if err := a.evaluate(doc, root); err != nil {
		logger.Warn("evaluation failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("watching scene", zap.String("path", path))
	err := scenefile.Watch(ctx, path, func(doc *scenefile.Document, err error) {
		if err != nil {
			logger.Warn("reload failed", zap.Error(err))
			return
		}
		root, err := a.build(doc)
		if err != nil {
			logger.Warn("rebuild failed", zap.Error(err))
			return
		}
		fmt.Println()
		if err := a.evaluate(doc, root); err != nil {
			logger.Warn("evaluation failed", zap.Error(err))
		}
	})
	if err != nil {
		fatal("watch failed", err)
	}
}

// unitBox is the extent pick assigns to every node before its world
// transform is applied.
var unitBox = camera.NewBox3(math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}, math.Vec3{X: 0.5, Y: 0.5, Z: 0.5})

func (a *app) cmdPick(args []string) {
	if len(args) != 3 {
		usage("pick <scene> <ndcX> <ndcY>")
	}
	doc, root := a.load(args[0])
	if doc.Camera == nil {
		fatal("pick", fmt.Errorf("%s has no camera", args[0]))
	}
	ndc, err := parseFloats(args[1:])
	if err != nil {
		fatal("invalid coordinates", err)
	}
	_, cam, err := scenefile.BuildCamera(doc.Camera, a.sceneCfg, a.cfg.Camera, a.cfg.Scene.StrictInverse)
	if err != nil {
		fatal("failed to build camera", err)
	}

	ray := cam.RayFromNDC(ndc[0], ndc[1])
	fmt.Printf("Ray:    origin %s  dir %s\n", fmtVec3(ray.Origin), fmtVec3(ray.Direction))
	if t, ok := ray.IntersectPlane(a.sceneCfg.Up, 0); ok {
		fmt.Printf("Ground: %s at %.3f\n", fmtVec3(ray.At(t)), t)
	}

	type hit struct {
		name string
		t    float32
	}
	var hits []hit
	root.Traverse(func(n *scene.Object3D) {
		if n == root || !n.Visible {
			return
		}
		if t, ok := ray.IntersectBox(unitBox.ApplyMat4(n.MatrixWorld)); ok {
			hits = append(hits, hit{n.Name, t})
		}
	})
	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })
	for _, h := range hits {
		fmt.Printf("Hit:    %-16s at %.3f\n", h.name, h.t)
	}
}

func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}

func fmtVec3(v math.Vec3) string {
	return fmt.Sprintf("(%8.3f %8.3f %8.3f)", v.X, v.Y, v.Z)
}

func fmtQuat(q math.Quat) string {
	return fmt.Sprintf("(%7.4f %7.4f %7.4f %7.4f)", q.X, q.Y, q.Z, q.W)
}

// fmtMat4 prints m row by row.
func fmtMat4(m math.Mat4) string {
	var s string
	for row := 0; row < 4; row++ {
		s += fmt.Sprintf("  [%8.4f %8.4f %8.4f %8.4f]\n", m[row], m[4+row], m[8+row], m[12+row])
	}
	return s
}

func (a *app) cmdConfig(args []string) {
	if len(args) < 1 || args[0] != "init" {
		usage("config init [path]")
	}

	path := filepath.Join(config.ConfigDir(), "spatial.yaml")
	if len(args) > 1 {
		path = args[1]
	}
	if _, err := os.Stat(path); err == nil {
		fatal("refusing to overwrite config", fmt.Errorf("%s already exists", path))
	}

	var err error
	if len(args) > 1 {
		err = a.cfg.SaveTo(path)
	} else {
		err = a.cfg.Save()
	}
	if err != nil {
		fatal("failed to write config", err)
	}
	fmt.Printf("Wrote %s\n", path)
}
