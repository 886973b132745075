// Package tree implements accumulator-related CLI commands.
package tree

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/nspcc-dev/frontier/cli/options"
	"github.com/nspcc-dev/frontier/pkg/frontier"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// NewCommands returns accumulator commands.
func NewCommands() []cli.Command {
	return []cli.Command{
		{
			Name:      "root",
			Usage:     "insert hex-encoded items and print the accumulator root",
			UsageText: "frontier root [--debug] [--in file] [item...]",
			Action:    calcRoot,
			Flags: []cli.Flag{
				options.Debug,
				cli.StringFlag{
					Name:  "in, i",
					Usage: "file with one hex-encoded item per line ('-' for stdin)",
				},
			},
		},
		{
			Name:      "check",
			Usage:     "verify YAML files of accumulator test vectors",
			UsageText: "frontier check [--debug] file...",
			Action:    checkVectors,
			Flags:     []cli.Flag{options.Debug},
		},
	}
}

func calcRoot(ctx *cli.Context) error {
	log, err := options.HandleLoggingParams(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()

	items, err := readItems(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	t := frontier.New()
	for i, item := range items {
		t.Insert(item)
		log.Debug("item inserted",
			zap.Int("index", i),
			zap.String("item", hex.EncodeToString(item)),
			zap.Stringer("root", t.Root()))
	}
	log.Info("accumulator built", zap.Uint64("items", t.Len()))

	fmt.Fprintln(ctx.App.Writer, t.Root().StringBE())
	return nil
}

func checkVectors(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.NewExitError("no vector files given", 1)
	}
	log, err := options.HandleLoggingParams(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()

	var failed int
	for _, path := range ctx.Args() {
		vf, err := LoadVectorFile(path)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		for _, v := range vf.Vectors {
			if err := v.Check(); err != nil {
				failed++
				log.Error("vector failed",
					zap.String("file", path),
					zap.String("name", v.Name),
					zap.Error(err))
				continue
			}
			log.Debug("vector ok", zap.String("file", path), zap.String("name", v.Name))
		}
		log.Info("file checked", zap.String("file", path), zap.Int("vectors", len(vf.Vectors)))
	}
	if failed != 0 {
		return cli.NewExitError(fmt.Errorf("%d vector(s) failed", failed), 1)
	}
	return nil
}

// readItems collects items from the --in file (or stdin) and the
// positional arguments, in that order.
func readItems(ctx *cli.Context) ([]frontier.Item, error) {
	var lines []string

	if path := ctx.String("in"); path != "" {
		f := os.Stdin
		if path != "-" {
			var err error
			f, err = os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("unable to open items file: %w", err)
			}
			defer f.Close()
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				lines = append(lines, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("unable to read items file: %w", err)
		}
	}
	lines = append(lines, ctx.Args()...)

	items := make([]frontier.Item, 0, len(lines))
	for i, line := range lines {
		b, err := hex.DecodeString(line)
		if err != nil {
			return nil, fmt.Errorf("item %d is not a valid hex string: %w", i, err)
		}
		items = append(items, b)
	}
	return items, nil
}
