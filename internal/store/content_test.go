package store

import "testing"

// insertFixtureModule inserts a module with chapters in shuffled order so
// ordering comes from the query, not insertion order.
func insertFixtureModule(t *testing.T, s *Store, name string) int64 {
	t.Helper()
	res, err := s.DB().Exec("INSERT INTO modules (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("insert module: %v", err)
	}
	moduleID, _ := res.LastInsertId()

	for _, ch := range []struct {
		number int
		title  string
	}{
		{3, "Loan Repayment"},
		{1, "Funding Sources"},
		{2, "Loan Applications"},
	} {
		if _, err := s.DB().Exec(
			"INSERT INTO chapters (module_id, chapter_number, title) VALUES (?, ?, ?)",
			moduleID, ch.number, ch.title,
		); err != nil {
			t.Fatalf("insert chapter %d: %v", ch.number, err)
		}
	}
	return moduleID
}

func TestChaptersByModuleOrdered(t *testing.T) {
	s := openTestStore(t)
	insertFixtureModule(t, s, "Accessing Funding & Loans")

	chapters, err := s.Content().ChaptersByModule("Accessing Funding & Loans")
	if err != nil {
		t.Fatalf("chapters: %v", err)
	}
	if len(chapters) != 3 {
		t.Fatalf("len = %d, want 3", len(chapters))
	}
	for i, ch := range chapters {
		if ch.ChapterNumber != i+1 {
			t.Errorf("chapter[%d].ChapterNumber = %d, want %d", i, ch.ChapterNumber, i+1)
		}
	}
	if chapters[0].Title != "Funding Sources" {
		t.Errorf("first chapter = %q, want %q", chapters[0].Title, "Funding Sources")
	}
}

func TestChaptersByModuleUnknown(t *testing.T) {
	s := openTestStore(t)

	chapters, err := s.Content().ChaptersByModule("No Such Module")
	if err != nil {
		t.Fatalf("chapters: %v", err)
	}
	if len(chapters) != 0 {
		t.Errorf("expected no chapters, got %d", len(chapters))
	}
}

func TestContentByChapterOrdered(t *testing.T) {
	s := openTestStore(t)
	insertFixtureModule(t, s, "Accessing Funding & Loans")

	chapters, err := s.Content().ChaptersByModule("Accessing Funding & Loans")
	if err != nil {
		t.Fatalf("chapters: %v", err)
	}
	chapterID := chapters[0].ID

	// Inserted out of display order on purpose.
	blocks := []struct {
		order int
		ctype string
		text  string
	}{
		{2, "example", "A village savings group pools weekly deposits."},
		{1, "text", "Funding can come from savings, grants, or loans."},
		{3, "tip", "Compare interest rates before borrowing."},
	}
	for _, b := range blocks {
		if _, err := s.DB().Exec(
			"INSERT INTO content (chapter_id, content_type, content_text, display_order) VALUES (?, ?, ?, ?)",
			chapterID, b.ctype, b.text, b.order,
		); err != nil {
			t.Fatalf("insert content: %v", err)
		}
	}

	got, err := s.Content().ContentByChapter(chapterID)
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, b := range got {
		if b.DisplayOrder != i+1 {
			t.Errorf("block[%d].DisplayOrder = %d, want %d", i, b.DisplayOrder, i+1)
		}
	}
	if got[0].ContentType != "text" {
		t.Errorf("first block type = %q, want %q", got[0].ContentType, "text")
	}
}

func TestQuestionsByChapter(t *testing.T) {
	s := openTestStore(t)
	insertFixtureModule(t, s, "Accessing Funding & Loans")

	chapters, err := s.Content().ChaptersByModule("Accessing Funding & Loans")
	if err != nil {
		t.Fatalf("chapters: %v", err)
	}
	chapterID := chapters[0].ID

	if _, err := s.DB().Exec(`
		INSERT INTO questions (chapter_id, question_text, option_a, option_b, option_c, correct_option, explanation)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, chapterID, "What is a grant?", "Money you repay", "Money you keep", "A type of tax", "B", "Grants do not have to be repaid."); err != nil {
		t.Fatalf("insert question: %v", err)
	}

	questions, err := s.Content().QuestionsByChapter(chapterID)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("len = %d, want 1", len(questions))
	}
	q := questions[0]
	if q.CorrectOption != "B" {
		t.Errorf("correct option = %q, want B", q.CorrectOption)
	}
	if opts := q.Options(); len(opts) != 3 || opts[1] != "Money you keep" {
		t.Errorf("options = %v", opts)
	}
}
