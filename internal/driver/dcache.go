package driver

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"ruffle/internal/diag"
	"ruffle/internal/lexer"
	"ruffle/internal/source"
	"ruffle/internal/token"
)

// Current schema version - increment when diskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores token streams keyed by file content hash, so
// re-tokenizing an unchanged file skips the scan. Thread-safe.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// tokenRecord is one serialized lex result. Lexeme text is not stored: the
// cache key is the content hash, so the text is rebuilt by re-slicing the
// loaded content at [Start, End).
type tokenRecord struct {
	Kind  uint8
	Start uint32
	End   uint32
	Int   int32
	Float float32
	Str   string
	// ErrKind is -1 for successful lexemes.
	ErrKind   int8
	ErrReason string
	Leading   []triviaRecord
}

type triviaRecord struct {
	Kind  uint8
	Start uint32
	End   uint32
}

type diskPayload struct {
	Schema uint16
	Path   string
	Tokens []tokenRecord
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at an explicit directory,
// for tests and non-standard layouts.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// "toks" subdirectory keeps the cache dir listable/cleanable.
	return filepath.Join(c.dir, "toks", hexKey+".mp")
}

// Put serializes the lex results of a file into the cache.
func (c *DiskCache) Put(file *source.File, results []lexer.Result) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := diskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   file.Path,
		Tokens: make([]tokenRecord, 0, len(results)),
	}
	for _, res := range results {
		rec := tokenRecord{
			Kind:    uint8(res.Token.Kind),
			Start:   res.Token.Span.Start,
			End:     res.Token.Span.End,
			Int:     res.Token.Int,
			Float:   res.Token.Float,
			Str:     res.Token.Str,
			ErrKind: -1,
		}
		for _, tr := range res.Token.Leading {
			rec.Leading = append(rec.Leading, triviaRecord{
				Kind:  uint8(tr.Kind),
				Start: tr.Span.Start,
				End:   tr.Span.End,
			})
		}
		if res.Err != nil {
			rec.ErrKind = int8(res.Err.Kind)
			rec.ErrReason = res.Err.Reason
		}
		payload.Tokens = append(payload.Tokens, rec)
	}

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("marshal token cache payload: %w", err)
	}

	path := c.pathFor(file.Hash)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Get rebuilds the cached lex results for a file, if present. Cached error
// records are replayed into bag so diagnostics match a fresh scan.
func (c *DiskCache) Get(file *source.File, bag *diag.Bag) ([]lexer.Result, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	// missing or unreadable entries are both misses
	data, err := os.ReadFile(c.pathFor(file.Hash))
	if err != nil {
		return nil, false
	}

	var payload diskPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}

	results := make([]lexer.Result, 0, len(payload.Tokens))
	for _, rec := range payload.Tokens {
		sp := source.Span{File: file.ID, Start: rec.Start, End: rec.End}
		tok := token.Token{
			Kind:  token.Kind(rec.Kind),
			Span:  sp,
			Text:  file.Slice(sp),
			Int:   rec.Int,
			Float: rec.Float,
			Str:   rec.Str,
		}
		for _, tr := range rec.Leading {
			tsp := source.Span{File: file.ID, Start: tr.Start, End: tr.End}
			tok.Leading = append(tok.Leading, token.Trivia{
				Kind: token.TriviaKind(tr.Kind),
				Span: tsp,
				Text: file.Slice(tsp),
			})
		}

		res := lexer.Result{Token: tok}
		if rec.ErrKind >= 0 {
			res.Err = &lexer.Error{
				Kind:   lexer.ErrorKind(rec.ErrKind),
				Span:   sp,
				Reason: rec.ErrReason,
			}
			replayDiagnostic(bag, res.Err)
		}
		results = append(results, res)
	}
	return results, true
}

// replayDiagnostic mirrors the codes the lexer reports for each error kind.
func replayDiagnostic(bag *diag.Bag, e *lexer.Error) {
	if bag == nil {
		return
	}
	switch e.Kind {
	case lexer.ErrUnexpectedChar:
		bag.Add(diag.NewError(diag.LexUnexpectedChar, e.Span, "unexpected character"))
	case lexer.ErrInvalidInteger:
		code := diag.LexBadInt
		if e.Reason == "overflow" {
			code = diag.LexIntOverflow
		}
		bag.Add(diag.NewError(code, e.Span, "invalid integer literal: "+e.Reason))
	case lexer.ErrInvalidFloat:
		bag.Add(diag.NewError(diag.LexBadFloat, e.Span, "invalid float literal"))
	}
}
