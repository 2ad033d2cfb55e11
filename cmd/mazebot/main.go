// Command mazebot runs a full explore-then-plan cycle against a simulated
// ground-truth maze: it maps the maze with the DFS explorer, plans a
// shortest path with A*, and prints the result. With -view it renders the
// run live in the terminal; when the config's [link] section is enabled it
// relays the final snapshot to a base station over TCP.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/forcelightning/mazebot/astar"
	"github.com/forcelightning/mazebot/explorer"
	"github.com/forcelightning/mazebot/floodfill"
	"github.com/forcelightning/mazebot/grid"
	"github.com/forcelightning/mazebot/peripherals"
	"github.com/forcelightning/mazebot/platform"
	"github.com/forcelightning/mazebot/simmaze"
	"github.com/forcelightning/mazebot/transport"
	"github.com/forcelightning/mazebot/view"
	"github.com/forcelightning/mazebot/wire"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (defaults used if omitted)")
	debug := flag.Bool("debug", false, "enable debug logging to file")
	showView := flag.Bool("view", false, "render the run live in the terminal")
	flag.Parse()

	cfg := platform.DefaultConfig()
	if *configPath != "" {
		loaded, err := platform.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mazebot: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *debug {
		cfg.Debug = true
	}

	logFile := platform.SetupLogging(cfg)
	if logFile != nil {
		defer logFile.Close()
	}
	defer platform.RecoverAndLog("main")

	truth := simmaze.Generate(simmaze.Config{
		Rows:     cfg.Maze.Rows,
		Cols:     cfg.Maze.Cols,
		Seed:     cfg.Maze.Seed,
		Braiding: cfg.Maze.Braiding,
	})
	log.Printf("generated %dx%d maze (seed=%d, braiding=%.2f)", cfg.Maze.Rows, cfg.Maze.Cols, cfg.Maze.Seed, cfg.Maze.Braiding)

	explored := grid.NewGridAllOpen(cfg.Maze.Rows, cfg.Maze.Cols)
	start, _ := explored.CellAt(grid.Coordinate{X: 0, Y: 0})
	end, _ := explored.CellAt(grid.Coordinate{X: uint16(cfg.Maze.Cols - 1), Y: uint16(cfg.Maze.Rows - 1)})
	nav := &grid.Navigator{Current: start, Start: start, End: end, Orientation: grid.North}

	rig := peripherals.NewRig(truth)
	if err := explorer.Explore(explored, nav, rig, rig); err != nil {
		log.Fatalf("exploration failed: %v", err)
	}
	fmt.Printf("explored %d of %d cells\n", countVisited(explored), len(explored.Cells))

	explored.ClearHeuristics()
	astar.Run(explored, start, nav.Current)
	path, ok := astar.GetPath(explored, nav.Current)
	if !ok {
		fmt.Println("no path found from start to the explorer's final position")
		path = nil
	} else {
		fmt.Printf("planned path of length %d\n", len(path))
	}

	steps := navigateHome(explored, nav, rig)
	fmt.Printf("returned to start in %d flood-fill steps\n", steps)

	rendered := explored.Render()
	if path != nil {
		rendered = astar.RenderPath(rendered, explored, path)
	}
	fmt.Print(grid.InsertNavigator(rendered, explored, nav))

	if *showView {
		runView(explored, nav, path)
	}

	if cfg.Link.Enabled {
		relaySnapshot(cfg, explored, nav, path)
	}
}

// navigateHome drives nav from its current cell back to nav.Start by
// recomputing the flood-fill distance field and stepping downhill one cell
// at a time, the way the robot would while the map is still settling out
// in the field: each step re-derives the field over g's current known
// adjacency rather than trusting a single batch plan. It returns the
// number of steps taken.
func navigateHome(g *grid.Grid, nav *grid.Navigator, rig *peripherals.Rig) int {
	steps := 0
	for nav.Current != nav.Start {
		floodfill.Compute(g, nav.Start, grid.NoCell)
		_, dir, ok := floodfill.NextStep(g, nav.Current)
		if !ok {
			log.Printf("flood-fill navigation stuck at cell %d", nav.Current)
			return steps
		}
		rig.Move(nav, dir)
		steps++
	}
	return steps
}

func countVisited(g *grid.Grid) int {
	n := 0
	for _, c := range g.Cells {
		if c.Visited {
			n++
		}
	}
	return n
}

func runView(g *grid.Grid, nav *grid.Navigator, path []int) {
	v, err := view.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazebot: view unavailable: %v\n", err)
		return
	}
	defer v.Close()

	v.Draw(g, nav, path)
	v.PollQuit()
}

func relaySnapshot(cfg platform.Config, g *grid.Grid, nav *grid.Navigator, path []int) {
	link := transport.NewLink(&transport.Config{
		Role:           cfg.Link.LinkRole(),
		Address:        cfg.Link.Address,
		ConnectTimeout: cfg.Link.ConnectTimeout,
	})
	if err := link.Start(); err != nil {
		log.Printf("link start failed: %v", err)
		return
	}
	defer link.Stop()

	buf := make([]byte, wire.CombinedSize(g.Rows, g.Cols, len(path)))
	n, err := wire.CombinedToBuffer(g, path, nav, buf)
	if err != nil {
		log.Printf("failed to pack snapshot: %v", err)
		return
	}

	if err := link.Send(transport.NewMessage(transport.MsgSnapshot, buf[:n])); err != nil {
		log.Printf("failed to send snapshot: %v", err)
	}
}
