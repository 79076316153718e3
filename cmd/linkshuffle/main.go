package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alttpx/linkshuffle"
	"github.com/alttpx/linkshuffle/preview"
	"github.com/alttpx/linkshuffle/rom"
	"github.com/alttpx/linkshuffle/sheet"
	"github.com/alttpx/linkshuffle/shuffle"
	"github.com/alttpx/linkshuffle/zspr"
	"github.com/urfave/cli/v2"
)

const defaultDB = "sprites.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func newShuffler(c *cli.Context) (*linkshuffle.Shuffler, *linkshuffle.Catalog, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	catalog, err := linkshuffle.OpenCatalog(c.String("db"))
	if err != nil {
		return nil, nil, err
	}

	return linkshuffle.New(catalog, logger), catalog, nil
}

func policyFromFlags(c *cli.Context) (shuffle.Policy, error) {
	buckets := shuffle.BucketsNone
	switch {
	case c.Bool("chaos"):
		buckets = shuffle.BucketsChaos
	case c.Bool("head") && c.Bool("body"):
		buckets = shuffle.BucketsHeadBody
	case c.Bool("head"):
		buckets = shuffle.BucketsHead
	case c.Bool("body"):
		buckets = shuffle.BucketsBody
	}

	multi := shuffle.MultiNone
	switch c.String("multi") {
	case "":
	case "simple":
		multi = shuffle.MultiSimple
	case "full":
		multi = shuffle.MultiFull
	default:
		return shuffle.Policy{}, fmt.Errorf("unknown multi-source mode %q", c.String("multi"))
	}

	return shuffle.NewPolicy(buckets, multi, c.Bool("bunny"))
}

func outputName(policy shuffle.Policy, in string, out linkshuffle.Kind) string {
	name := fmt.Sprintf("Spriteshuffled_%s_%s", policy, filepath.Base(in))
	if out == linkshuffle.KindZSPR {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".zspr"
	}
	return name
}

func decodeSheet(b []byte) (*sheet.Sheet, sheet.PaletteSet, error) {
	if linkshuffle.DetectKind(b) == linkshuffle.KindZSPR {
		f, err := zspr.Decode(b)
		if err != nil {
			return nil, sheet.PaletteSet{}, err
		}
		return f.Sheet, f.Palettes, nil
	}
	img, err := rom.Load(b)
	if err != nil {
		return nil, sheet.PaletteSet{}, err
	}
	return img.Sheet, img.Palettes, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "linkshuffle"
	app.Usage = "Link spritesheet shuffler"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"LINKSHUFFLE_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to sprite catalog",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "shuffle",
			Usage:       "Shuffle the spritesheet of a cartridge or ZSPR file",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "head",
					Usage: "shuffle head sprites among each other",
				},
				&cli.BoolFlag{
					Name:  "body",
					Usage: "shuffle body sprites among each other",
				},
				&cli.BoolFlag{
					Name:  "chaos",
					Usage: "shuffle all head and body sprites in one pool",
				},
				&cli.StringFlag{
					Name:  "multi",
					Usage: "draw tiles from catalog sprites: \"simple\" or \"full\"",
				},
				&cli.BoolFlag{
					Name:  "bunny",
					Usage: "substitute the bunny form from a catalog sprite",
				},
				&cli.IntFlag{
					Name:  "sprites",
					Value: 10,
					Usage: "number of catalog sprites to draw from",
				},
				&cli.BoolFlag{
					Name:  "zspr",
					Usage: "emit a ZSPR file instead of a cartridge image",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				policy, err := policyFromFlags(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, catalog, err := newShuffler(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer catalog.Close()

				b, err := ioutil.ReadFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				var aux [][]byte
				if policy.NeedsAux() {
					if aux, err = m.Aux(c.Int("sprites")); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				out := linkshuffle.KindROM
				if c.Bool("zspr") || linkshuffle.DetectKind(b) == linkshuffle.KindZSPR {
					out = linkshuffle.KindZSPR
				}

				patched, err := m.Run(b, aux, policy, out)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				name := outputName(policy, c.Args().First(), out)
				if err := ioutil.WriteFile(name, patched, 0644); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan a directory of ZSPR files into the sprite catalog",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, catalog, err := newShuffler(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer catalog.Close()

				if err := m.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "convert",
			Usage:       "Convert between cartridge and ZSPR containers",
			Description: "",
			ArgsUsage:   "FILE OUTPUT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "base",
					Usage: "base cartridge image for ZSPR to cartridge conversion",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, catalog, err := newShuffler(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer catalog.Close()

				b, err := ioutil.ReadFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				out := linkshuffle.KindZSPR
				if linkshuffle.DetectKind(b) == linkshuffle.KindZSPR {
					out = linkshuffle.KindROM
				}

				var base []byte
				if c.String("base") != "" {
					if base, err = ioutil.ReadFile(c.String("base")); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				converted, err := m.Convert(b, base, out)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := ioutil.WriteFile(c.Args().Get(1), converted, 0644); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render a spritesheet as a PNG image",
			Description: "",
			ArgsUsage:   "FILE OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				b, err := ioutil.ReadFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				s, p, err := decodeSheet(b)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				f, err := os.Create(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := png.Encode(f, preview.Render(s, p, &sheet.Link)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "import",
			Usage:       "Import an image as a ZSPR sprite",
			Description: "Quantizes the image to 15 colors if necessary.",
			ArgsUsage:   "IMAGE OUTPUT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "name",
					Usage: "sprite name stored in the ZSPR header",
				},
				&cli.StringFlag{
					Name:  "author",
					Usage: "author name stored in the ZSPR header",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				m, _, err := image.Decode(f)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				s, pal, err := preview.FromImage(m)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				name := c.String("name")
				if name == "" {
					name = strings.TrimSuffix(filepath.Base(c.Args().First()), filepath.Ext(c.Args().First()))
				}

				file := &zspr.File{
					Sheet: s,
					Palettes: sheet.PaletteSet{
						Green: pal,
						Blue:  pal,
						Red:   pal,
						Bunny: pal,
					},
					Name:        name,
					Author:      c.String("author"),
					AuthorShort: c.String("author"),
				}

				if err := ioutil.WriteFile(c.Args().Get(1), file.Encode(), 0644); err != nil {
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
