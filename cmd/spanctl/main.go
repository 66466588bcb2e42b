package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/timespan"
	"github.com/hoyle1974/timespan/catalog"
	"github.com/hoyle1974/timespan/storage"
	"github.com/hoyle1974/timespan/telemetry"
	flag "github.com/spf13/pflag"
)

const usage = `usage: spanctl [flags] <command> [args]

Spans are written start..end, with either side left blank when unbounded:
2017-08-01..2017-09-01, ..2017-06-01, 2017-01-01.., .. or a single date.

span commands:
  intersect SPAN SPAN...   print the intersection of the spans
  contains SPAN DATE       tell whether the span contains the date
  subset A B               tell whether span A is a subset of span B
  days SPAN                list every day of a bound span

catalog commands:
  put NAME SPAN            store a named span
  get NAME                 print a named span
  rm NAME                  delete a named span
  ls                       list every named span
  covering DATE            list the named spans containing the date
  overlapping SPAN         list the named spans overlapping the span
  common NAME...           print the intersection of named spans
  export KEY               write every named span into KEY
  import KEY               load the named spans written into KEY

flags:
`

var ErrUsage = errors.New("bad usage")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type app struct {
	out     io.Writer
	cfg     storage.Config
	log     telemetry.Logger
	catalog *catalog.Catalog
}

func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	flags := flag.NewFlagSet("spanctl", flag.ContinueOnError)
	flags.SetOutput(errOut)

	a := &app{out: out}
	flags.StringVarP(&a.cfg.Source, "source", "s", "disk", "The storage system to keep named spans in (memory, disk, s3)")
	flags.StringVarP(&a.cfg.URI, "uri", "u", ".", "The directory for disk storage")
	flags.StringVar(&a.cfg.Bucket, "bucket", "", "The S3 bucket")
	flags.StringVar(&a.cfg.Region, "region", "", "The S3 region")
	flags.StringVar(&a.cfg.Endpoint, "endpoint", "", "A custom S3 endpoint")
	flags.StringVar(&a.cfg.AccessKey, "access-key", "", "The S3 access key")
	flags.StringVar(&a.cfg.SecretKey, "secret-key", "", "The S3 secret key")
	verbose := flags.BoolP("verbose", "v", false, "Log what the catalog does")
	flags.Usage = func() {
		fmt.Fprint(errOut, usage)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			// Usage was already printed.
			return nil
		}
		return errors.Mark(err, ErrUsage)
	}
	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return errors.Wrap(ErrUsage, "no command given")
	}

	if *verbose {
		a.log = telemetry.NewWriterLogger(errOut, true)
	} else {
		a.log = telemetry.NOPLogger{}
	}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "intersect":
		return a.intersect(cmdArgs)
	case "contains":
		return a.contains(cmdArgs)
	case "subset":
		return a.subset(cmdArgs)
	case "days":
		return a.days(cmdArgs)
	case "put", "get", "rm", "ls", "covering", "overlapping", "common", "export", "import":
		if err := a.openCatalog(ctx); err != nil {
			return err
		}
		return a.catalogCommand(ctx, cmd, cmdArgs)
	default:
		flags.Usage()
		return errors.Wrapf(ErrUsage, "unknown command %q", cmd)
	}
}

func expectArgs(cmd string, args []string, n int) error {
	if len(args) != n {
		return errors.Wrapf(ErrUsage, "%s takes %d arguments, got %d", cmd, n, len(args))
	}
	return nil
}

func parseSpans(args []string) ([]timespan.DateSpan, error) {
	spans := make([]timespan.DateSpan, 0, len(args))
	for _, arg := range args {
		span, err := timespan.ParseSpan(arg)
		if err != nil {
			return nil, err
		}
		spans = append(spans, span)
	}
	return spans, nil
}

func (a *app) intersect(args []string) error {
	spans, err := parseSpans(args)
	if err != nil {
		return err
	}
	res, err := timespan.IntersectAll(spans...)
	if err != nil {
		return errors.Wrap(errors.Mark(err, ErrUsage), "intersect needs at least one span")
	}
	fmt.Fprintln(a.out, timespan.FormatSpan(res))
	return nil
}

func (a *app) contains(args []string) error {
	if err := expectArgs("contains", args, 2); err != nil {
		return err
	}
	span, err := timespan.ParseSpan(args[0])
	if err != nil {
		return err
	}
	day, err := timespan.ParseDate(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, span.Contains(day))
	return nil
}

func (a *app) subset(args []string) error {
	if err := expectArgs("subset", args, 2); err != nil {
		return err
	}
	spans, err := parseSpans(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, spans[0].IsSubset(spans[1]))
	return nil
}

func (a *app) days(args []string) error {
	if err := expectArgs("days", args, 1); err != nil {
		return err
	}
	span, err := timespan.ParseSpan(args[0])
	if err != nil {
		return err
	}
	seq, err := timespan.Days(span)
	if err != nil {
		return err
	}
	for d := range seq {
		fmt.Fprintln(a.out, d)
	}
	return nil
}

func (a *app) openCatalog(ctx context.Context) error {
	store, err := storage.Open(ctx, a.cfg)
	if err != nil {
		return err
	}
	a.log.Debug(fmt.Sprintf("using %s storage", a.cfg.Source))
	a.catalog = catalog.New(store, catalog.WithLogger(a.log))
	return nil
}

func (a *app) printRecords(records []catalog.Record) {
	width := 0
	for _, r := range records {
		width = max(width, len(r.Name))
	}
	for _, r := range records {
		fmt.Fprintf(a.out, "%-*s  %s\n", width, r.Name, timespan.FormatSpan(r.Span))
	}
}

func (a *app) catalogCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "put":
		if err := expectArgs(cmd, args, 2); err != nil {
			return err
		}
		span, err := timespan.ParseSpan(args[1])
		if err != nil {
			return err
		}
		r, err := a.catalog.Put(ctx, args[0], span)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s  %s  %s\n", r.Name, timespan.FormatSpan(r.Span), r.ID)

	case "get":
		if err := expectArgs(cmd, args, 1); err != nil {
			return err
		}
		r, err := a.catalog.Get(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, timespan.FormatSpan(r.Span))

	case "rm":
		if err := expectArgs(cmd, args, 1); err != nil {
			return err
		}
		return a.catalog.Delete(ctx, args[0])

	case "ls":
		if err := expectArgs(cmd, args, 0); err != nil {
			return err
		}
		records, err := a.catalog.List(ctx)
		if err != nil {
			return err
		}
		a.printRecords(records)

	case "covering":
		if err := expectArgs(cmd, args, 1); err != nil {
			return err
		}
		day, err := timespan.ParseDate(args[0])
		if err != nil {
			return err
		}
		records, err := a.catalog.Covering(ctx, day)
		if err != nil {
			return err
		}
		a.printRecords(records)

	case "overlapping":
		if err := expectArgs(cmd, args, 1); err != nil {
			return err
		}
		span, err := timespan.ParseSpan(args[0])
		if err != nil {
			return err
		}
		matches, err := a.catalog.Overlapping(ctx, span)
		if err != nil {
			return err
		}
		width := 0
		for _, m := range matches {
			width = max(width, len(m.Record.Name))
		}
		for _, m := range matches {
			fmt.Fprintf(a.out, "%-*s  %s\n", width, m.Record.Name, timespan.FormatSpan(m.Common))
		}

	case "common":
		res, err := a.catalog.Common(ctx, args...)
		if err != nil {
			if errors.Is(err, timespan.ErrEmptyFold) {
				return errors.Wrap(errors.Mark(err, ErrUsage), "common needs at least one name")
			}
			return err
		}
		fmt.Fprintln(a.out, timespan.FormatSpan(res))

	case "export":
		if err := expectArgs(cmd, args, 1); err != nil {
			return err
		}
		n, err := a.catalog.Export(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "exported %d spans\n", n)

	case "import":
		if err := expectArgs(cmd, args, 1); err != nil {
			return err
		}
		n, err := a.catalog.Import(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "imported %d spans\n", n)
	}
	return nil
}
