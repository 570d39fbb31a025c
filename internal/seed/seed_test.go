package seed

import (
	"path/filepath"
	"testing"

	"github.com/igire/igire/internal/store"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if err := Run(st); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return st
}

func TestSeedPopulatesCatalog(t *testing.T) {
	st := seededStore(t)

	modules, err := st.Content().Modules()
	if err != nil {
		t.Fatalf("modules: %v", err)
	}
	if len(modules) != len(ModuleNames) {
		t.Errorf("module count = %d, want %d", len(modules), len(ModuleNames))
	}

	chapters, err := st.Content().ChaptersByModule("Accessing Funding & Loans")
	if err != nil {
		t.Fatalf("chapters: %v", err)
	}
	if len(chapters) != 3 {
		t.Fatalf("chapter count = %d, want 3", len(chapters))
	}
	for i, ch := range chapters {
		if ch.ChapterNumber != i+1 {
			t.Errorf("chapter[%d].ChapterNumber = %d, want %d", i, ch.ChapterNumber, i+1)
		}
	}

	blocks, err := st.Content().ContentByChapter(chapters[0].ID)
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if len(blocks) == 0 {
		t.Error("expected content blocks for chapter 1")
	}

	questions, err := st.Content().QuestionsByChapter(chapters[0].ID)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("question count = %d, want 2", len(questions))
	}
	for _, q := range questions {
		if q.CorrectOption != "A" && q.CorrectOption != "B" && q.CorrectOption != "C" {
			t.Errorf("question %d has invalid correct option %q", q.ID, q.CorrectOption)
		}
	}
}

func TestSeedIdempotent(t *testing.T) {
	st := seededStore(t)

	if err := Run(st); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var chapterCount, contentCount, questionCount int
	if err := st.DB().QueryRow("SELECT COUNT(*) FROM chapters").Scan(&chapterCount); err != nil {
		t.Fatalf("count chapters: %v", err)
	}
	if err := st.DB().QueryRow("SELECT COUNT(*) FROM content").Scan(&contentCount); err != nil {
		t.Fatalf("count content: %v", err)
	}
	if err := st.DB().QueryRow("SELECT COUNT(*) FROM questions").Scan(&questionCount); err != nil {
		t.Fatalf("count questions: %v", err)
	}

	if chapterCount != 3 {
		t.Errorf("chapters after reseed = %d, want 3", chapterCount)
	}
	if contentCount != 8 {
		t.Errorf("content blocks after reseed = %d, want 8", contentCount)
	}
	if questionCount != 4 {
		t.Errorf("questions after reseed = %d, want 4", questionCount)
	}
}
