package store

import (
	"database/sql"
	"fmt"
)

// Module is a named subject area, static reference data.
type Module struct {
	ID   int64
	Name string
}

// Chapter is one unit within a module, ordered by ChapterNumber.
type Chapter struct {
	ID            int64
	ModuleID      int64
	ChapterNumber int
	Title         string
}

// ContentBlock is one piece of chapter content, ordered by DisplayOrder.
type ContentBlock struct {
	ChapterID    int64
	ContentType  string
	ContentText  string
	DisplayOrder int
}

// Question is a three-option multiple-choice question. CorrectOption is
// one of "A", "B", "C".
type Question struct {
	ID            int64
	ChapterID     int64
	Text          string
	OptionA       string
	OptionB       string
	OptionC       string
	CorrectOption string
	Explanation   string
}

// Options returns the labeled options in A, B, C order.
func (q Question) Options() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC}
}

// ContentRepo retrieves course modules, chapters, content blocks and
// quiz questions.
type ContentRepo interface {
	// Modules returns all modules ordered by name.
	Modules() ([]Module, error)

	// ChaptersByModule returns the module's chapters ordered by
	// ascending chapter number.
	ChaptersByModule(moduleName string) ([]Chapter, error)

	// ContentByChapter returns the chapter's content blocks ordered by
	// ascending display order.
	ContentByChapter(chapterID int64) ([]ContentBlock, error)

	// QuestionsByChapter returns the chapter's quiz questions.
	QuestionsByChapter(chapterID int64) ([]Question, error)
}

type contentRepo struct {
	db *sql.DB
}

func (r *contentRepo) Modules() ([]Module, error) {
	rows, err := r.db.Query("SELECT id, name FROM modules ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query modules: %w", err)
	}
	defer rows.Close()

	var out []Module
	for rows.Next() {
		var m Module
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *contentRepo) ChaptersByModule(moduleName string) ([]Chapter, error) {
	rows, err := r.db.Query(`
		SELECT c.id, c.module_id, c.chapter_number, c.title
		FROM chapters c
		JOIN modules m ON m.id = c.module_id
		WHERE m.name = ?
		ORDER BY c.chapter_number ASC
	`, moduleName)
	if err != nil {
		return nil, fmt.Errorf("query chapters: %w", err)
	}
	defer rows.Close()

	var out []Chapter
	for rows.Next() {
		var c Chapter
		if err := rows.Scan(&c.ID, &c.ModuleID, &c.ChapterNumber, &c.Title); err != nil {
			return nil, fmt.Errorf("scan chapter: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *contentRepo) ContentByChapter(chapterID int64) ([]ContentBlock, error) {
	rows, err := r.db.Query(`
		SELECT chapter_id, content_type, content_text, display_order
		FROM content WHERE chapter_id = ?
		ORDER BY display_order ASC
	`, chapterID)
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}
	defer rows.Close()

	var out []ContentBlock
	for rows.Next() {
		var b ContentBlock
		if err := rows.Scan(&b.ChapterID, &b.ContentType, &b.ContentText, &b.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan content block: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *contentRepo) QuestionsByChapter(chapterID int64) ([]Question, error) {
	rows, err := r.db.Query(`
		SELECT id, chapter_id, question_text, option_a, option_b, option_c, correct_option, explanation
		FROM questions WHERE chapter_id = ?
	`, chapterID)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		var q Question
		err := rows.Scan(&q.ID, &q.ChapterID, &q.Text, &q.OptionA, &q.OptionB, &q.OptionC, &q.CorrectOption, &q.Explanation)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
