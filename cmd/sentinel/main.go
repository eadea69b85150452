package main

import (
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func newApp(w io.Writer) *cli.App {
	return &cli.App{
		Name:      "sentinel",
		Usage:     "replay list operations and print the ring",
		Writer:    w,
		ErrWriter: w,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "apply operations in order",
				ArgsUsage: "head:VALUE | tail:VALUE | unlink:ID | release:ID | clear ...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "print the ring after every operation",
					},
				},
				Action: func(c *cli.Context) error {
					return run(c.App.Writer, c.Args().Slice(), c.Bool("verbose"))
				},
			},
			{
				Name:  "demo",
				Usage: "replay a fixed sequence of operations",
				Action: func(c *cli.Context) error {
					return run(c.App.Writer, demoScript, true)
				},
			},
		},
	}
}
