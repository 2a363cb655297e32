package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cssvalue/internal/driver"
	"cssvalue/internal/ui"
)

type parseOutcome struct {
	results []driver.Result
	err     error
}

func runParseWithUI(ctx context.Context, title string, inputs []driver.Input, opts driver.Options) ([]driver.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.ParseAll(ctx, inputs, optsCopy)
		outcomeCh <- parseOutcome{results: res, err: err}
		close(events)
	}()

	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i] = in.Name
	}
	model := ui.NewProgressModel(title, names, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// the UI may quit early on ctrl+c; stop the workers so the sink cannot block
	cancel()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
