package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/jhyttinen/go-envi/envi"
)

func dumpCmd() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "Parse a header file and print every field",
		ArgsUsage: "<header file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return cli.Exit("usage: envitool dump <header file>", 2)
			}
			path := cmd.Args().First()

			text, err := os.ReadFile(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			header, err := envi.ParseHeader(text)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			for _, key := range header.Keys() {
				v, _ := header.Get(key)
				fmt.Printf("%s = %s\n", key, v)
			}
			return nil
		},
	}
}
