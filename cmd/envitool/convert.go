package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/jhyttinen/go-envi/envi"
)

func convertCmd() *cli.Command {
	var (
		outPath  string
		dataFile string
		rawOut   string
	)
	return &cli.Command{
		Name:      "convert",
		Usage:     "Rewrite an ENVI image as BSQ in the host byte order",
		ArgsUsage: "<header file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output header path",
				Destination: &outPath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "data",
				Aliases:     []string{"d"},
				Usage:       "explicit input raw data file",
				Destination: &dataFile,
			},
			&cli.StringFlag{
				Name:        "raw-out",
				Usage:       "output raw data path (default: output header with .dat)",
				Destination: &rawOut,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return cli.Exit("usage: envitool convert --out <header> <header file>", 2)
			}
			path := cmd.Args().First()
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))

			// Samples are converted verbatim, so normalization stays off.
			opts := []envi.ReadOption{envi.WithNormalize(false)}
			if dataFile != "" {
				opts = append(opts, envi.WithDataFile(dataFile))
			}
			cube, wavelengths, header, err := envi.ReadFile(path, opts...)
			if err != nil {
				return cli.Exit("error: "+err.Error(), 1)
			}

			var wopts []envi.WriteOption
			if rawOut != "" {
				wopts = append(wopts, envi.WithRawFile(rawOut))
			}
			written, err := envi.WriteFile(outPath, header, cube, wavelengths, wopts...)
			if err != nil {
				return cli.Exit("error: "+err.Error(), 1)
			}

			interleave, _ := written.Get("interleave")
			lines, samples, bands := cube.Shape()
			log.Info("converted",
				"from", path,
				"to", outPath,
				"lines", lines,
				"samples", samples,
				"bands", bands,
				"interleave", interleave.String(),
			)
			return nil
		},
	}
}
