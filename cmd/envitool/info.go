package main

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/jhyttinen/go-envi/envi"
)

func infoCmd() *cli.Command {
	var dataFile string
	return &cli.Command{
		Name:      "info",
		Usage:     "Summarize an ENVI header and its cube geometry",
		ArgsUsage: "<header file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "data",
				Aliases:     []string{"d"},
				Usage:       "explicit raw data file",
				Destination: &dataFile,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return cli.Exit("usage: envitool info <header file>", 2)
			}
			path := cmd.Args().First()

			opts := []envi.ReadOption{envi.WithNormalize(false)}
			if dataFile != "" {
				opts = append(opts, envi.WithDataFile(dataFile))
			}
			cube, wavelengths, header, err := envi.ReadFile(path, opts...)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			lines, samples, bands := cube.Shape()
			fmt.Printf("File: %s\n", path)
			fmt.Printf("Shape: %d lines x %d samples x %d bands | type=%s (code %d) | %d bytes/sample\n",
				lines, samples, bands, cube.TypeName(), cube.TypeCode(), cube.ElemSize())
			if wavelengths != nil {
				fmt.Printf("Wavelengths: %d entries, %g to %g\n",
					len(wavelengths), wavelengths[0], wavelengths[len(wavelengths)-1])
			}
			fmt.Println()

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Field", "Value"})
			for _, key := range header.Keys() {
				v, _ := header.Get(key)
				text := v.String()
				if len(text) > 72 {
					text = text[:69] + "..."
				}
				table.Append([]string{key, text})
			}
			table.Render()
			return nil
		},
	}
}
