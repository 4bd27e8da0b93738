package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/levelstore"
	"github.com/milk9111/platformer/logging"
	"go.uber.org/zap"
)

const usage = `usage: levelctl [-db FILE] [-debug] <command> [args]

commands:
  init-default NAME       create a level with the default map
  create NAME FILE        create a level from a level json file
  list                    list levels, newest first
  show ID                 print a level document
  update ID NAME FILE     replace a level
  delete ID               delete a level
  export FILE             write every level to a zstd archive
  import FILE             load levels from a zstd archive
`

var errUsage = errors.New("bad usage")

func main() {
	dbPath := flag.String("db", "levels.db", "sqlite level store")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	log, err := logging.New(*debug)
	if err != nil {
		stdlog.Fatal(err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	store, err := levelstore.Open(ctx, *dbPath, log)
	if err != nil {
		log.Fatal("open level store", zap.String("db", *dbPath), zap.Error(err))
	}
	defer store.Close()

	if err := run(ctx, store, os.Stdout, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
		log.Error("command failed", zap.Strings("args", flag.Args()), zap.Error(err))
		_ = store.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, store *levelstore.Store, out io.Writer, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	need := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s takes %d argument(s)", errUsage, cmd, n)
		}
		return nil
	}

	switch cmd {
	case "init-default":
		if err := need(1); err != nil {
			return err
		}
		rec, err := store.Create(ctx, args[0], nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rec.ID)
	case "create":
		if err := need(2); err != nil {
			return err
		}
		doc, err := readDocument(args[1])
		if err != nil {
			return err
		}
		rec, err := store.Create(ctx, args[0], doc)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rec.ID)
	case "list":
		if err := need(0); err != nil {
			return err
		}
		recs, err := store.List(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tSIZE\tDIGEST\tCREATED")
		for _, r := range recs {
			rows, cols := r.Document.Size()
			fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%s\t%s\n", r.ID, r.Name, rows, cols, r.Digest, r.CreatedAt.Format(time.RFC3339))
		}
		return tw.Flush()
	case "show":
		if err := need(1); err != nil {
			return err
		}
		rec, err := store.Get(ctx, args[0])
		if err != nil {
			return err
		}
		data, err := levels.Encode(rec.Document)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case "update":
		if err := need(3); err != nil {
			return err
		}
		doc, err := readDocument(args[2])
		if err != nil {
			return err
		}
		rec, err := store.Update(ctx, args[0], args[1], doc)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rec.Digest)
	case "delete":
		if err := need(1); err != nil {
			return err
		}
		return store.Delete(ctx, args[0])
	case "export":
		if err := need(1); err != nil {
			return err
		}
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		n, err := store.Export(ctx, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "exported %d level(s)\n", n)
	case "import":
		if err := need(1); err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		n, err := store.Import(ctx, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "imported %d level(s)\n", n)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	return nil
}

func readDocument(path string) (*levels.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := levels.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
