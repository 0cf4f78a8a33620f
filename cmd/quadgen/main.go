// Command quadgen generates a random shape population, indexes it in a
// quadtree and outputs the resulting tree rectangles and query results to
// stdout as JSON. It exists to eyeball how the lazy subdivision behaves for
// different populations.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/mikenye/quadgeom/primitive"
	"github.com/mikenye/quadgeom/quadtree"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "quadgen",
		Usage:     "Generates random shapes in a plane, builds a quadtree and outputs results to stdout as JSON",
		UsageText: "quadgen --number <value> --queries <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of shapes to create",
				Value:    16,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "queries",
				Usage:    "The number of random point queries to run",
				Value:    64,
				Aliases:  []string{"q"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u < 0 {
						return fmt.Errorf("queries must not be negative")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    100,
			},
			&cli.IntFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    100,
			},
			&cli.IntFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.UintFlag{
				Name:     "seed",
				Usage:    "Seed for the random generator, for reproducible output",
				OnlyOnce: true,
				Value:    1,
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// queryResult is one random point query and its outcomes.
type queryResult struct {
	Point      primitive.Point `json:"point"`
	Intersects bool            `json:"intersects"`
	Dist       *float64        `json:"dist,omitempty"`
}

// report is the JSON document written to stdout.
type report struct {
	Bounds  primitive.Rect   `json:"bounds"`
	Shapes  []string         `json:"shapes"`
	Rts     []primitive.Rect `json:"rts"`
	Queries []queryResult    `json:"queries"`
}

func app(_ context.Context, cmd *cli.Command) error {
	minx := float64(cmd.Int("minx"))
	maxx := float64(cmd.Int("maxx"))
	miny := float64(cmd.Int("miny"))
	maxy := float64(cmd.Int("maxy"))
	n := cmd.Int("number")
	queries := cmd.Int("queries")
	seed := cmd.Uint("seed")

	// sanity checks
	if minx >= maxx {
		return fmt.Errorf("minx must be less than maxx")
	}
	if miny >= maxy {
		return fmt.Errorf("miny must be less than maxy")
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	randX := func() float64 { return minx + rng.Float64()*(maxx-minx) }
	randY := func() float64 { return miny + rng.Float64()*(maxy-miny) }
	randPt := func() primitive.Point { return primitive.NewPoint(randX(), randY()) }
	maxR := min(maxx-minx, maxy-miny) / 8

	qt := quadtree.WithBounds(primitive.NewRect(minx, miny, maxx, maxy))
	shapes := make([]string, 0, n)
	for i := int64(0); i < n; i++ {
		var shape primitive.Shape
		switch rng.IntN(3) {
		case 0:
			shape = primitive.RectEnclosing(randPt(), randPt())
		case 1:
			shape = primitive.NewCircle(randPt(), rng.Float64()*maxR)
		default:
			shape = primitive.NewCapsule(randPt(), randPt(), rng.Float64()*maxR)
		}
		if _, err := qt.AddShape(quadtree.NewShapeInfo(shape, quadtree.Tag(i), 0)); err != nil {
			return err
		}
		shapes = append(shapes, fmt.Sprint(shape))
	}

	out := report{Shapes: shapes}
	out.Bounds, _ = qt.Bounds()
	for i := int64(0); i < queries; i++ {
		p := randPt()
		res := queryResult{Point: p, Intersects: qt.Intersects(p, quadtree.All)}
		if d, ok := qt.Dist(p, quadtree.All); ok {
			res.Dist = &d
		}
		out.Queries = append(out.Queries, res)
	}
	out.Rts = qt.Rts()

	marshalled, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(marshalled))
	return nil
}
