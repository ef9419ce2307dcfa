package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ruffle/internal/driver"
	"ruffle/internal/source"
	"ruffle/internal/ui"
)

type tokenizeOutcome struct {
	fileSet *source.FileSet
	results []driver.TokenizeDirResult
	err     error
}

func runTokenizeDirWithUI(ctx context.Context, title, dir string, maxDiagnostics, jobs int) (*source.FileSet, []driver.TokenizeDirResult, error) {
	files, err := driver.ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan tokenizeOutcome, 1)

	go func() {
		fs, results, err := driver.TokenizeDir(ctx, dir, maxDiagnostics, jobs, driver.ChannelSink{Ch: events})
		outcomeCh <- tokenizeOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
