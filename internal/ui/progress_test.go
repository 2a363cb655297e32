package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"cssvalue/internal/driver"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"values/colors.cssv:12", 10, "values/..."},
		{"abcdef", 3, "abc"},
		{"日本語の値", 7, "日本..."},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if tt.width > 0 && runewidth.StringWidth(got) > tt.width {
			t.Errorf("truncate(%q, %d) is %d cells wide", tt.in, tt.width, runewidth.StringWidth(got))
		}
	}
}

func TestApplyEvent(t *testing.T) {
	m := NewProgressModel("parse", []string{"<arg1>", "<arg2>"}, nil).(*progressModel)

	m.applyEvent(driver.Event{Index: 0, Status: driver.StatusParsing})
	if got := m.percent(); got != 0.25 {
		t.Errorf("percent = %v", got)
	}
	m.applyEvent(driver.Event{Index: 0, Status: driver.StatusDone, Cached: true})
	m.applyEvent(driver.Event{Index: 1, Status: driver.StatusError})
	m.applyEvent(driver.Event{Index: 7, Status: driver.StatusDone})

	if got := m.percent(); got != 1 {
		t.Errorf("percent = %v", got)
	}
	if m.cached != 1 || m.failed != 1 {
		t.Errorf("cached=%d failed=%d", m.cached, m.failed)
	}

	view := m.View()
	for _, want := range []string{"2 inputs", "1 cached", "<arg1>", "error"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestModelDrainsEvents(t *testing.T) {
	events := make(chan driver.Event, 1)
	m := NewProgressModel("parse", []string{"a"}, events).(*progressModel)
	events <- driver.Event{Index: 0, Status: driver.StatusDone}
	close(events)

	cmd := m.listenForEvent()
	msg := cmd()
	if _, ok := msg.(eventMsg); !ok {
		t.Fatalf("first msg = %T", msg)
	}
	m.Update(msg)
	if _, ok := cmd().(doneMsg); !ok {
		t.Fatal("closed channel must yield doneMsg")
	}
	if m.items[0].status != driver.StatusDone {
		t.Errorf("status = %q", m.items[0].status)
	}
}
