package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
	"github.com/urfave/cli/v2"

	"github.com/pixkit/pixkit"
	"github.com/pixkit/pixkit/key"
	"github.com/pixkit/pixkit/palette"
)

const defaultPalette = "palette.json"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func pickImage() (string, error) {
	return dialog.File().
		Title("Select an Image").
		Filter("Image files", "png", "jpg", "jpeg", "bmp", "gif").
		Load()
}

func convert(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		var err error
		path, err = pickImage()
		if errors.Is(err, dialog.Cancelled) {
			fmt.Fprintln(os.Stderr, "Selection cancelled.")
			return nil
		}
		if err != nil {
			return cli.Exit(err, 1)
		}
	}

	pal, err := palette.Load(c.String("palette"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	f, err := os.Open(path)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer f.Close()

	img, err := pixkit.Decode(f)
	if err != nil {
		return cli.Exit(err, 1)
	}

	frame := pixkit.New(pal, newLogger(c)).Convert(img)

	if output := c.String("output"); output != "" {
		if err := frame.WriteCommandsFile(output); err != nil {
			return cli.Exit(err, 1)
		}
	} else if err := frame.WriteCommands(os.Stdout); err != nil {
		return cli.Exit(err, 1)
	}

	if preview := c.String("preview"); preview != "" {
		if err := frame.WritePreviewFile(preview); err != nil {
			return cli.Exit(err, 1)
		}
	}

	return nil
}

func colorKey(c *cli.Context) error {
	pal, err := palette.Load(c.String("palette"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := key.WriteFile(c.String("output"), pal); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func suggest(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer f.Close()

	img, err := pixkit.Decode(f)
	if err != nil {
		return cli.Exit(err, 1)
	}

	pal, err := palette.Suggest(img, c.Int("colors"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	var buf bytes.Buffer
	if err := pal.Encode(&buf); err != nil {
		return cli.Exit(err, 1)
	}

	if output := c.String("output"); output != "" {
		if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
			return cli.Exit(err, 1)
		}
	} else if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "pixkit"
	app.Usage = "pixel-art chat canvas toolkit"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "palette",
			EnvVars: []string{"PIXKIT_PALETTE"},
			Value:   filepath.Join(cwd, defaultPalette),
			Usage:   "path to palette file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert an image into !pixel chat commands",
			ArgsUsage: "[IMAGE]",
			Description: "Without an IMAGE argument a native file-open dialog is shown.\n" +
				"The image is downscaled to the 32x32 canvas, matched against the\n" +
				"palette, and one command per cell is written out.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write commands to `FILE` instead of stdout",
				},
				&cli.StringFlag{
					Name:  "preview",
					Value: "preview.png",
					Usage: "write a palette-mapped preview PNG to `FILE`",
				},
			},
			Action: convert,
		},
		{
			Name:  "key",
			Usage: "Generate a printable PDF color key for the palette",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   filepath.Join(cwd, key.Filename),
					Usage:   "write the PDF to `FILE`",
				},
			},
			Action: colorKey,
		},
		{
			Name:      "suggest",
			Usage:     "Derive a candidate palette from an image",
			ArgsUsage: "IMAGE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "colors",
					Aliases: []string{"n"},
					Value:   16,
					Usage:   "maximum number of palette colors",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write the palette JSON to `FILE` instead of stdout",
				},
			},
			Action: suggest,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
