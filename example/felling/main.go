package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/treefall/animation"
	"github.com/oomph-ac/treefall/entity"
	"github.com/oomph-ac/treefall/settings"
	"github.com/oomph-ac/treefall/simulation"
	"github.com/oomph-ac/treefall/worker"
	"github.com/oomph-ac/treefall/world"
	tfblock "github.com/oomph-ac/treefall/world/block"
	"github.com/sirupsen/logrus"
)

const settingsPath = "treefall.toml"

// The following program cuts down a small tree standing next to a pond and simulates it falling until it
// lands.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	if os.Getenv("TREEFALL_DEBUG") != "" {
		logger.SetLevel(logrus.DebugLevel)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			logger.Errorf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(time.Second * 5)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	conf, err := loadSettings()
	if err != nil {
		sentry.CaptureException(err)
		logger.Fatalf("unable to load settings: %v", err)
	}

	w := world.New(logger)
	cut := buildWorld(w)
	sim := simulation.New(w, conf, logger)

	// Wood volumes are measured in blocks of wood: a trunk of three branches of radius 6 holds less than
	// two blocks.
	segments := []entity.Segment{{Radius: 6}, {Offset: cube.Pos{0, 1, 0}, Radius: 6}, {Offset: cube.Pos{0, 2, 0}, Radius: 5}}
	tree := entity.NewFallingTree(entity.DestroyData{
		CutPos:     cut,
		CutDir:     cube.FaceWest,
		WoodVolume: entity.WoodVolume(segments),
		MassCenter: entity.MassCenter(segments),
		LeavesDrops: []entity.Drop{
			{Offset: cube.Pos{0, 3, 0}, Stack: item.NewStack(item.Apple{}, 2)},
		},
		ShedDrops: []entity.Drop{
			{Offset: cube.Pos{1, 3, 0}, Stack: item.NewStack(item.Stick{}, 1)},
		},
	}, []item.Stack{item.NewStack(block.Log{}, 3)}, mgl64.Vec3{})
	tree.OnFire = os.Getenv("TREEFALL_BURNING") != ""

	id, err := sim.Fell(tree)
	if err != nil {
		sentry.CaptureException(err)
		logger.Fatalf("unable to fell tree: %v", err)
	}

	pool := worker.New(0)
	defer pool.Close()

	maxTicks := int(conf.Physics.MaxAge) + 1
	for tick := 1; tick <= maxTicks && sim.Len() > 0; tick++ {
		for _, res := range sim.Tick() {
			if res.Outcome.Dead() {
				fmt.Printf("tree %d %v after %d ticks at %.3f, digest %016x\n", res.ID, res.Outcome, res.Age, res.Position, res.Digest)
				continue
			}
			pool.Submit(func() { renderFrame(logger, sim, id) })
		}
	}

	for _, d := range w.Drops() {
		fmt.Printf("dropped %v at %v\n", d.Stack, d.Pos)
	}
}

// loadSettings loads the settings file, writing the default one first if it does not exist yet.
func loadSettings() (settings.Settings, error) {
	conf, err := settings.Load(settingsPath)
	if errors.Is(err, os.ErrNotExist) {
		if err := settings.SaveDefault(settingsPath); err != nil {
			return settings.Settings{}, err
		}
		return settings.Load(settingsPath)
	}
	return conf, err
}

// buildWorld builds a stone floor with a pond on one side and a tree standing on rooty soil in the middle.
// It returns the position the tree is cut at.
func buildWorld(w *world.World) cube.Pos {
	w.Fill(cube.Pos{-16, 56, -16}, cube.Pos{16, 59, 16}, block.Stone{})
	w.Fill(cube.Pos{-16, 60, -16}, cube.Pos{16, 60, 16}, block.Grass{})
	w.Fill(cube.Pos{-10, 59, -4}, cube.Pos{-4, 60, 4}, block.Water{Still: true, Depth: 8})

	w.SetBlock(cube.Pos{0, 60, 0}, tfblock.RootySoil{Soil: block.Grass{}})
	w.SetBlock(cube.Pos{0, 61, 0}, tfblock.TrunkShell{Core: cube.Pos{0, 61, 0}})
	for y := 62; y <= 64; y++ {
		w.PlaceBranch(cube.Pos{0, y, 0}, 6)
	}
	w.Fill(cube.Pos{-1, 65, -1}, cube.Pos{1, 66, 1}, block.Leaves{})
	return cube.Pos{0, 62, 0}
}

func renderFrame(log *logrus.Logger, sim *simulation.Simulation, id uint64) {
	snap, ok := sim.Snapshot(id)
	if !ok {
		return
	}
	for _, fraction := range []float32{0, 0.5} {
		tr, ok := sim.Render(id, fraction)
		if !ok {
			return
		}
		box := animation.CullBox(snap.View, fraction)
		log.WithFields(logrus.Fields{"age": snap.Age, "yaw": tr.Yaw, "pitch": tr.Pitch, "min": box.Min(), "max": box.Max()}).Debug("render")
	}
}
