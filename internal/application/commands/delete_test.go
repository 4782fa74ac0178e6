package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDelete_RemovesRecordAndRenamesFile(t *testing.T) {
	env := newTestEnv(t)
	filename := seed(t, env, "to be removed", "victim")

	env.prompter.answers = []string{"victim"}

	result, err := NewDeleteCommand(env.deps).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.Deleted || result.Filename != filename {
		t.Errorf("result = %+v", result)
	}

	sess, err := env.deps.Index.Open()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sess.Lookup(filename); ok {
		t.Error("record still in the index")
	}

	original := filepath.Join(env.dir, filename)
	if _, err := os.Stat(original); !os.IsNotExist(err) {
		t.Error("original file still exists")
	}
	if _, err := os.Stat(original + BackupSuffix); err != nil {
		t.Errorf("backup file missing: %v", err)
	}
}

func TestDelete_DeletedNoteInvisibleToLookups(t *testing.T) {
	env := newTestEnv(t)
	filename := seed(t, env, "gone #soon", "victim")

	if _, err := NewDeleteCommand(env.deps).Remove(filename); err != nil {
		t.Fatal(err)
	}

	sess, err := env.deps.Index.Open()
	if err != nil {
		t.Fatal(err)
	}
	if len(sess.Notes()) != 0 {
		t.Errorf("deleted note still listed: %v", sess.Notes())
	}
}

func TestDelete_SecondRemoveWarnsButSucceeds(t *testing.T) {
	env := newTestEnv(t)
	filename := seed(t, env, "twice deleted", "victim")

	if _, err := NewDeleteCommand(env.deps).Remove(filename); err != nil {
		t.Fatalf("first Remove failed: %v", err)
	}
	result, err := NewDeleteCommand(env.deps).Remove(filename)
	if err != nil {
		t.Fatalf("second Remove failed: %v", err)
	}
	if !result.Deleted {
		t.Errorf("result = %+v", result)
	}
}

func TestDelete_AbortLeavesEverything(t *testing.T) {
	env := newTestEnv(t)
	filename := seed(t, env, "survivor", "keeper")

	env.prompter.answers = []string{""}

	result, err := NewDeleteCommand(env.deps).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Deleted {
		t.Error("aborted delete should not delete")
	}

	if _, err := os.Stat(filepath.Join(env.dir, filename)); err != nil {
		t.Errorf("note file gone after abort: %v", err)
	}
	env.record(t, filename)
}
