package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"tsp-tour-service/internal/adapters/files"
	"tsp-tour-service/internal/adapters/report"
	"tsp-tour-service/internal/adapters/repositories"
	"tsp-tour-service/internal/config"
	"tsp-tour-service/internal/domain"
	"tsp-tour-service/internal/platform/db"
	"tsp-tour-service/internal/ports"
	"tsp-tour-service/internal/services"

	"github.com/spf13/cobra"
)

var errFilesFailed = errors.New("one or more problem files failed")

type options struct {
	nearest    bool
	furthest   bool
	inOrder    bool
	printTours bool
	summary    bool
	format     string
	workers    int
	dsn        string
}

func main() {
	if err := config.Load(); err != nil {
		log.Println(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFilesFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	workers, err := config.GetInt("TSP_WORKERS", services.DefaultWorkers)
	if err != nil {
		log.Println(err)
		workers = services.DefaultWorkers
	}

	cmd := &cobra.Command{
		Use:   "tsp [flags] PATH...",
		Short: "Parse TSP files and calculate paths using simple algorithms.",
		Long: "Parse TSPLIB files and calculate the length of tours built by simple heuristics.\n" +
			"PATH is a .tsp file or a directory; for a directory, all .tsp files in it are used.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.dsn == "" {
				return errors.New("requires at least one PATH (or --db)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.nearest, "nearest", "n", false, "calculate distance traveled by nearest neighbor heuristic")
	f.BoolVarP(&opts.furthest, "furthest", "f", false, "calculate distance traveled by furthest neighbor heuristic")
	f.BoolVarP(&opts.inOrder, "in-order", "i", false, "calculate the distance traveled by the in-order-tour [1..n,1]")
	f.BoolVarP(&opts.printTours, "print-tours", "p", false, "print explicit tours")
	f.BoolVar(&opts.summary, "summary", false, "print per-heuristic statistics over all files")
	f.StringVar(&opts.format, "format", config.Get("TSP_FORMAT", string(report.Text)), "output format: text, yaml or json")
	f.IntVar(&opts.workers, "workers", workers, "number of files processed in parallel")
	f.StringVar(&opts.dsn, "db", config.Get("DATABASE_URL", ""), "read problems from this database instead of PATH arguments")

	return cmd
}

func (o *options) heuristics() []domain.Heuristic {
	var hs []domain.Heuristic
	if o.inOrder {
		hs = append(hs, domain.InOrder)
	}
	if o.nearest {
		hs = append(hs, domain.NearestNeighbor)
	}
	if o.furthest {
		hs = append(hs, domain.FurthestNeighbor)
	}
	return hs
}

func run(ctx context.Context, opts *options, paths []string, out io.Writer) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	repo, closeRepo, err := openRepository(ctx, opts.dsn, paths)
	if err != nil {
		return err
	}
	defer closeRepo()

	problems, err := repo.ListProblems(ctx)
	if err != nil {
		return fmt.Errorf("list problems: %w", err)
	}

	evals := services.ProcessBatch(ctx, problems, services.BatchOptions{
		Heuristics: opts.heuristics(),
		Workers:    opts.workers,
	})

	var summary []domain.HeuristicSummary
	if opts.summary {
		summary, err = services.Summarize(evals)
		if err != nil {
			return err
		}
	}

	var reporter ports.Reporter = report.NewWriter(out, format, opts.printTours)
	if err := reporter.Report(evals, summary); err != nil {
		return err
	}

	for _, e := range evals {
		if e.Err != nil {
			return errFilesFailed
		}
	}
	return nil
}

// openRepository returns the SQL problem source when dsn is set, else the filesystem.
func openRepository(ctx context.Context, dsn string, paths []string) (ports.ProblemRepository, func(), error) {
	if dsn == "" {
		return files.NewFileProblemRepository(paths), func() {}, nil
	}

	conn, driver, err := db.Open(dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := repositories.InitSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}

	store, err := repositories.NewProblemStore(conn, driver)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return store, func() { conn.Close() }, nil
}
