package pipeline

import (
	"testing"
	"time"

	"github.com/dgallion1/tocgen/internal/toc"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	// SHA-256 of "hello world" is well-known.
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestContentHashHex_DifferentInputs(t *testing.T) {
	if ContentHashHex([]byte("aaa")) == ContentHashHex([]byte("bbb")) {
		t.Error("expected different hashes for different inputs")
	}
}

func TestNewJob(t *testing.T) {
	data := []byte("# Title\n")
	job := NewJob("notes.md", toc.DefaultSettings(), data)

	if job.Status != StatusQueued || job.Phase != "queued" {
		t.Errorf("expected queued job, got %s/%s", job.Status, job.Phase)
	}
	if len(job.ID) != 26 {
		t.Errorf("expected 26-char ULID, got %q", job.ID)
	}
	if job.ContentHash != ContentHashHex(data) {
		t.Error("content hash mismatch")
	}
	if string(job.FileData()) != string(data) {
		t.Error("file data not retained")
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := NewJob("doc.md", toc.DefaultSettings(), nil)

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusExtracting, "extracting headings"},
		{StatusGenerating, "generating toc"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		before := job.UpdatedAt
		// Small sleep to ensure time difference is detectable.
		time.Sleep(time.Millisecond)
		job.SetStatus(tr.status, tr.phase)

		if job.Status != tr.status {
			t.Errorf("expected status %q, got %q", tr.status, job.Status)
		}
		if job.Phase != tr.phase {
			t.Errorf("expected phase %q, got %q", tr.phase, job.Phase)
		}
		if !job.UpdatedAt.After(before) {
			t.Errorf("expected UpdatedAt to advance after SetStatus(%q)", tr.status)
		}
	}
}

func TestJob_AddError(t *testing.T) {
	job := NewJob("broken.docx", toc.DefaultSettings(), nil)
	job.AddError("parse docx: bad zip")
	job.AddError("second failure")

	snap := job.Snapshot()
	if len(snap.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(snap.Errors))
	}
	if snap.Errors[0] != "parse docx: bad zip" {
		t.Errorf("expected first error preserved, got %q", snap.Errors[0])
	}
}

func TestJob_ResultOnlyInCompletedSnapshot(t *testing.T) {
	job := NewJob("doc.md", toc.DefaultSettings(), []byte("# A"))

	res, err := toc.Generate("# A", toc.DefaultSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	job.SetResult(res)

	if snap := job.Snapshot(); snap.Result != nil {
		t.Error("result must not appear before the job completes")
	}

	job.SetStatus(StatusCompleted, "done")
	snap := job.Snapshot()
	if snap.Result == nil {
		t.Fatal("expected result in completed snapshot")
	}
	if snap.Result.TOC != "- [A](#a)" {
		t.Errorf("unexpected TOC: %q", snap.Result.TOC)
	}
}

func TestJob_SetResultReleasesFileData(t *testing.T) {
	job := NewJob("doc.md", toc.DefaultSettings(), []byte("# A"))
	job.SetResult(&toc.Result{})
	if job.FileData() != nil {
		t.Error("expected file bytes released after completion")
	}
}

func TestJob_SnapshotErrorsNotNil(t *testing.T) {
	job := NewJob("doc.md", toc.DefaultSettings(), nil)
	snap := job.Snapshot()
	if snap.Errors == nil {
		t.Error("expected non-nil errors slice in snapshot")
	}
	if len(snap.Errors) != 0 {
		t.Errorf("expected empty errors, got %d", len(snap.Errors))
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := NewJob("doc.md", toc.DefaultSettings(), nil)
	store.Put(job)

	got := store.Get(job.ID)
	if got == nil {
		t.Fatal("expected to get job back")
	}
	if got.ID != job.ID {
		t.Errorf("expected ID %q, got %q", job.ID, got.ID)
	}
}

func TestJobStore_GetMissing(t *testing.T) {
	store := NewJobStore(time.Hour)
	if store.Get("nonexistent") != nil {
		t.Error("expected nil for missing job")
	}
}

func TestJobStore_TTLCleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	expired := NewJob("old.md", toc.DefaultSettings(), nil)
	store.Put(expired)

	// Wait for the TTL to pass.
	time.Sleep(100 * time.Millisecond)

	fresh := NewJob("new.md", toc.DefaultSettings(), nil)
	store.Put(fresh)

	store.Cleanup()

	if store.Get(expired.ID) != nil {
		t.Error("expected expired job to be cleaned up")
	}
	if store.Get(fresh.ID) == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}

func TestGenerateULID_Shape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := generateULID()
		if len(id) != 26 {
			t.Fatalf("expected 26 characters, got %d (%q)", len(id), id)
		}
		for _, c := range id {
			if !containsRune(crockford, c) {
				t.Fatalf("unexpected character %q in %q", c, id)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate ULID %q", id)
		}
		seen[id] = true
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
