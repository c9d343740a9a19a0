package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/ironsheep/tilepack/internal/batch"
	"github.com/ironsheep/tilepack/internal/imaging"
	"github.com/ironsheep/tilepack/internal/server"
	"github.com/urfave/cli/v2"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func init() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Printf("tilepack %s\n", c.App.Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func main() {
	app := cli.NewApp()

	app.Name = "tilepack"
	app.Usage = "Pack tile images into a grid tileset and rescale sprites"
	app.Version = Version

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:  "create",
			Usage: "Pack every image in a directory into one tileset",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "path",
					Aliases:  []string{"p"},
					Usage:    "directory of tile images",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Usage:    "tileset PNG to write",
					Required: true,
				},
				&cli.IntFlag{
					Name:     "tile-size",
					EnvVars:  []string{"TILEPACK_TILE_SIZE"},
					Usage:    "edge length of each square tile in pixels",
					Required: true,
				},
				&cli.IntFlag{
					Name:    "tile-padding",
					EnvVars: []string{"TILEPACK_TILE_PADDING"},
					Usage:   "transparent gap after each cell in pixels",
				},
				&cli.Float64Flag{
					Name:    "scale",
					EnvVars: []string{"TILEPACK_SCALE"},
					Value:   1.0,
					Usage:   "nearest-neighbor scale applied to every tile",
				},
				&cli.StringFlag{
					Name:    "key",
					EnvVars: []string{"TILEPACK_KEY"},
					Value:   "#000000",
					Usage:   "colour made transparent in the finished tileset",
				},
				&cli.IntFlag{
					Name:  "colors",
					Usage: "write a paletted PNG with at most this many colours (2-256)",
				},
				&cli.StringFlag{
					Name:  "index",
					Usage: "write a JSON index of tile placements to this file",
				},
				&cli.StringFlag{
					Name:  "tsx",
					Usage: "write a Tiled tileset (.tsx) describing the output to this file",
				},
			},
			Action: func(c *cli.Context) error {
				key, err := imaging.ParseKey(c.String("key"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				logger := newLogger(c)

				result, err := batch.CreateTileset(imaging.NewImageCache(), batch.TilesetOptions{
					Dir:      c.String("path"),
					Output:   c.String("output"),
					TileSize: c.Int("tile-size"),
					Padding:  c.Int("tile-padding"),
					Scale:    c.Float64("scale"),
					Key:      key,
					Colors:   c.Int("colors"),
					Index:    c.String("index"),
					TSX:      c.String("tsx"),
				}, logger)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				logger.Printf("Packed %d tiles into %s (%dx%d)", result.Tiles, result.Output, result.Width, result.Height)

				return nil
			},
		},
		{
			Name:  "resize",
			Usage: "Rescale every image in a directory",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "path",
					Aliases:  []string{"p"},
					Usage:    "directory of images",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Usage:    "directory to write the scaled images to",
					Required: true,
				},
				&cli.Float64Flag{
					Name:     "scale",
					EnvVars:  []string{"TILEPACK_SCALE"},
					Usage:    "nearest-neighbor scale factor",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				logger := newLogger(c)

				result, err := batch.ResizeDirectory(imaging.NewImageCache(), batch.ResizeOptions{
					Dir:    c.String("path"),
					Output: c.String("output"),
					Scale:  c.Float64("scale"),
				}, logger)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				logger.Printf("Resized %d images", len(result.Images))

				return nil
			},
		},
		{
			Name:  "serve",
			Usage: "Run the MCP server on stdin/stdout",
			Description: "Tools: image_load, image_dimensions, tileset_plan, tileset_create, image_resize.\n" +
				"   Set TILEPACK_LOG_LEVEL=debug to log startup details to stderr.",
			Action: func(c *cli.Context) error {
				// stdout is for the MCP protocol
				log.SetOutput(os.Stderr)
				log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

				if os.Getenv("TILEPACK_LOG_LEVEL") == "debug" {
					log.Printf("tilepack MCP server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
				}

				if err := server.New(Version).Run(); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
