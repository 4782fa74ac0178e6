package commands

import (
	"context"
	"testing"
)

func TestSearch_MatchesTitleAndTags(t *testing.T) {
	env := newTestEnv(t)
	seed(t, env, "body one", "foobar")
	tagged := seed(t, env, "body two #foo", "other")
	seed(t, env, "body three", "unrelated")

	env.prompter.answers = []string{""} // just look, do not open

	result, err := NewSearchCommand(env.deps, []string{"foo"}).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Matches) != 2 {
		t.Fatalf("matches = %d, want 2: %+v", len(result.Matches), result.Matches)
	}
	if result.Opened != "" {
		t.Errorf("nothing should be opened, got %q", result.Opened)
	}
	if len(env.presenter.shown) != 1 || len(env.presenter.shown[0]) != 2 {
		t.Errorf("presenter saw %v", env.presenter.shown)
	}

	found := false
	for _, n := range result.Matches {
		if n.Filename == tagged {
			found = true
		}
	}
	if !found {
		t.Errorf("tag match %q missing from results", tagged)
	}
}

func TestSearch_NoMatchesShowsEmptyTable(t *testing.T) {
	env := newTestEnv(t)
	seed(t, env, "body", "something")

	env.prompter.answers = []string{""}

	result, err := NewSearchCommand(env.deps, []string{"zzz"}).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Matches) != 0 {
		t.Errorf("matches = %+v, want none", result.Matches)
	}
}

func TestSearch_SelectionOpensEditor(t *testing.T) {
	env := newTestEnv(t)
	filename := seed(t, env, "body #foo", "target")

	env.prompter.answers = []string{"target"}
	env.editor.write = "reworked #foo"

	result, err := NewSearchCommand(env.deps, []string{"foo"}).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Opened != filename {
		t.Errorf("opened %q, want %q", result.Opened, filename)
	}
	if len(env.editor.calls) != 1 {
		t.Errorf("editor calls = %v", env.editor.calls)
	}
}
