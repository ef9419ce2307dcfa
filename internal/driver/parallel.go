package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"ruffle/internal/diag"
	"ruffle/internal/lexer"
	"ruffle/internal/source"
)

// TokenizeDirResult holds the tokenization outcome for one file.
type TokenizeDirResult struct {
	Path    string
	FileID  source.FileID
	Results []lexer.Result
	Bag     *diag.Bag
}

// ListFiles returns the sorted list of all *.rf files under dir.
func ListFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rf") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// deterministic order
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every *.rf file under dir in parallel. Each file is
// an independent unit: no state is shared across workers, so the only
// coordination is the bounded errgroup and per-index result slots. Progress
// events go to sink when it is non-nil.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int, sink ProgressSink) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// Load everything up front; the FileSet is not safe for concurrent
	// mutation, and loading is cheap relative to scanning.
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		emit(sink, Event{File: path, Stage: StageLoad, Status: StatusWorking})
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// One slot per file; indexes are unique per goroutine, no mutex needed.
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				started := time.Now()
				bag := diag.NewBag(maxDiagnostics)

				if loadErr, hadError := loadErrors[path]; hadError {
					results[i] = TokenizeDirResult{
						Path: path,
						Bag:  bag,
					}
					bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
						"failed to load file: "+loadErr.Error()))
					emit(sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
					return nil
				}

				emit(sink, Event{File: path, Stage: StageLex, Status: StatusWorking})

				fileID := fileIDs[path]
				file := fileSet.Get(fileID)

				lexResults := lexer.Scan(file, lexer.Options{
					Reporter: diag.BagReporter{Bag: bag},
				})

				results[i] = TokenizeDirResult{
					Path:    path,
					FileID:  fileID,
					Results: lexResults,
					Bag:     bag,
				}

				status := StatusDone
				if bag.HasErrors() {
					status = StatusError
				}
				emit(sink, Event{File: path, Stage: StageLex, Status: status, Elapsed: time.Since(started)})

				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}
