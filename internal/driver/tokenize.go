package driver

import (
	"ruffle/internal/diag"
	"ruffle/internal/lexer"
	"ruffle/internal/source"
)

// TokenizeResult bundles everything one tokenize pass produced.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Results []lexer.Result
	Bag     *diag.Bag
}

// Tokenize loads one file and scans it into the ordered Result sequence.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	return TokenizeWithCache(path, maxDiagnostics, nil)
}

// TokenizeWithCache is Tokenize with an optional token disk cache: when the
// cache holds an entry for the file's content hash the scan is skipped and
// the token stream is rebuilt against the freshly loaded content.
func TokenizeWithCache(path string, maxDiagnostics int, cache *DiskCache) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)

	if cache != nil {
		if results, ok := cache.Get(file, bag); ok {
			return &TokenizeResult{FileSet: fs, File: file, Results: results, Bag: bag}, nil
		}
	}

	results := lexer.Scan(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	if cache != nil {
		// Best effort: a failed cache write never fails the tokenize call.
		_ = cache.Put(file, results)
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Results: results,
		Bag:     bag,
	}, nil
}

// TokenizeVirtual scans in-memory content under a display name, for stdin
// and tests.
func TokenizeVirtual(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	results := lexer.Scan(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Results: results,
		Bag:     bag,
	}
}
