// Command puzzlebook generates and validates puzzle records for the
// book build pipeline. The exit status is non-zero if any record fails
// validation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"svw.info/puzzlebook/internal/crossword"
	"svw.info/puzzlebook/internal/domain"
	"svw.info/puzzlebook/internal/generator"
	"svw.info/puzzlebook/internal/infrastructure/storage"
	"svw.info/puzzlebook/internal/lexicon"
	"svw.info/puzzlebook/internal/platform/config"
	"svw.info/puzzlebook/internal/ports"
	"svw.info/puzzlebook/internal/solver"
	"svw.info/puzzlebook/internal/usecase"
	"svw.info/puzzlebook/internal/validator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var code int
	switch os.Args[1] {
	case "generate":
		code = runGenerate(ctx, cfg, os.Args[2:])
	case "validate":
		code = runValidate(ctx, cfg, os.Args[2:])
	default:
		usage()
		code = 2
	}
	os.Exit(code)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: puzzlebook <generate|validate> [flags]")
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func loadLexicon(path string, logger *slog.Logger) *lexicon.Lexicon {
	if path == "" {
		return lexicon.Default()
	}
	lex, err := lexicon.LoadFile(path)
	if err != nil {
		logger.Warn("falling back to embedded word list", "path", path, "err", err)
		return lexicon.Default()
	}
	return lex
}

func buildService(cfg config.Config, lex *lexicon.Lexicon, st ports.Storage) *usecase.Service {
	solverOpts := solver.Options{MaxNodes: cfg.SolverNodes, Timeout: cfg.SolverTimeout}
	gen := generator.NewSudoku(generator.Options{Solver: solverOpts})
	bld := crossword.NewBuilder(lex, crossword.Options{})
	vcfg := validator.DefaultConfig()
	vcfg.Solver = solverOpts
	val := validator.New(vcfg, lex)
	return usecase.NewService(gen, bld, val, st, cfg.Workers)
}

func openStorage(dataDir, dbPath string) (ports.Storage, func() error, error) {
	if dbPath != "" {
		st, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, nil, err
	}
	return storage.NewFS(dataDir), func() error { return nil }, nil
}

func runGenerate(ctx context.Context, cfg config.Config, args []string) int {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	familyStr := fs.String("family", "sudoku", "puzzle family: sudoku|crossword")
	diffStr := fs.String("difficulty", "medium", "easy|medium|hard|expert")
	count := fs.Int("count", 1, "puzzles to generate")
	seed := fs.Int64("seed", 0, "base RNG seed (0 = time-based)")
	out := fs.String("out", cfg.DataDir, "record output directory")
	dbPath := fs.String("db", "", "SQLite store path (overrides -out)")
	wordlist := fs.String("wordlist", cfg.WordList, "word list path for crosswords")
	levelStr := fs.String("log-level", cfg.LogLevel, "debug|info|warn|error")
	_ = fs.Parse(args)

	logger := newLogger(*levelStr)
	family, err := domain.ParseFamily(*familyStr)
	if err != nil {
		logger.Error("bad flag", "err", err)
		return 2
	}
	diff, err := domain.ParseDifficulty(*diffStr)
	if err != nil {
		logger.Error("bad flag", "err", err)
		return 2
	}
	base := *seed
	if base == 0 {
		base = time.Now().UnixNano()
		logger.Info("using seed", "seed", base)
	}

	st, closeStore, err := openStorage(*out, *dbPath)
	if err != nil {
		logger.Error("open storage", "err", err)
		return 1
	}
	defer closeStore()
	svc := buildService(cfg, loadLexicon(*wordlist, logger), st)

	for i := 0; i < *count; i++ {
		p, stats, err := svc.Generate(ctx, family, base+int64(i), diff)
		if err != nil {
			logger.Error("generate failed", "family", family, "difficulty", diff, "err", err)
			return 1
		}
		// Round-trip gate: a record never ships unvalidated.
		report, err := svc.Validate(ctx, p)
		if err != nil {
			logger.Error("validate failed", "err", err)
			return 1
		}
		if !report.Passed {
			for _, f := range report.Findings {
				logger.Error("finding", "severity", f.Severity, "category", f.Category, "msg", f.Message)
			}
			logger.Error("generated record failed validation", "score", report.Score)
			return 1
		}
		p.ID = family.String() + "-" + strconv.FormatInt(p.Seed, 10)
		if err := svc.Save(ctx, p); err != nil {
			logger.Error("save failed", "id", p.ID, "err", err)
			return 1
		}
		logger.Info("generated", "id", p.ID, "difficulty", p.Difficulty,
			"score", report.Score, "nodes", stats.Nodes, "dur", stats.Duration.Round(time.Millisecond))
	}
	return 0
}

func runValidate(ctx context.Context, cfg config.Config, args []string) int {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	dir := fs.String("dir", cfg.DataDir, "directory of puzzle record JSON files")
	dbPath := fs.String("db", "", "SQLite store path (overrides -dir)")
	familyStr := fs.String("family", "", "restrict to one family: sudoku|crossword")
	wordlist := fs.String("wordlist", cfg.WordList, "word list path for crosswords")
	workers := fs.Int("workers", cfg.Workers, "parallel validation workers")
	levelStr := fs.String("log-level", cfg.LogLevel, "debug|info|warn|error")
	_ = fs.Parse(args)

	logger := newLogger(*levelStr)

	var puzzles []*domain.Puzzle
	var err error
	if *dbPath != "" {
		st, openErr := storage.OpenSQLite(*dbPath)
		if openErr != nil {
			logger.Error("open storage", "err", openErr)
			return 1
		}
		defer st.Close()
		puzzles, err = st.All(ctx)
	} else {
		puzzles, err = storage.LoadDir(*dir)
	}
	if err != nil {
		logger.Error("load records", "err", err)
		return 1
	}
	if *familyStr != "" {
		family, perr := domain.ParseFamily(*familyStr)
		if perr != nil {
			logger.Error("bad flag", "err", perr)
			return 2
		}
		kept := puzzles[:0]
		for _, p := range puzzles {
			if p.Family == family {
				kept = append(kept, p)
			}
		}
		puzzles = kept
	}
	if len(puzzles) == 0 {
		logger.Warn("no records to validate")
		return 0
	}

	svcCfg := cfg
	svcCfg.Workers = *workers
	svc := buildService(svcCfg, loadLexicon(*wordlist, logger), nil)

	results, summary, err := svc.ValidateAll(ctx, puzzles)
	if err != nil {
		logger.Error("validate", "err", err)
		return 1
	}
	for _, res := range results {
		status := "PASS"
		if !res.Report.Passed {
			status = "FAIL"
		}
		fmt.Printf("%s %s score=%d\n", status, res.Puzzle.ID, res.Report.Score)
		for _, f := range res.Report.Findings {
			fmt.Printf("  %s\n", f)
		}
	}
	logger.Info("summary", "total", summary.Total, "passed", summary.Passed,
		"failed", summary.Failed, "errors", summary.Errors, "warnings", summary.Warnings)
	if summary.Failed > 0 {
		return 1
	}
	return 0
}
