// Package seed populates the reference course catalog: the subject
// modules shown on the main menu, plus chapters, content blocks and
// quiz questions for the Accessing Funding & Loans module.
package seed

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/igire/igire/internal/store"
)

// ModuleNames are the subject areas offered on the main menu.
var ModuleNames = []string{
	"Financial Literacy",
	"Budgeting & Savings",
	"Business Planning & Management",
	"Accessing Funding & Loans",
	"Marketing & Branding",
}

type chapterSeed struct {
	Number    int
	Title     string
	Content   []contentSeed
	Questions []questionSeed
}

type contentSeed struct {
	Type string
	Text string
}

type questionSeed struct {
	Text        string
	OptionA     string
	OptionB     string
	OptionC     string
	Correct     string
	Explanation string
}

var fundingChapters = []chapterSeed{
	{
		Number: 1,
		Title:  "Understanding Funding Sources",
		Content: []contentSeed{
			{"text", "Funding for a small business can come from personal savings, savings groups, grants, microfinance institutions, and commercial bank loans. Each source differs in cost, speed, and the obligations it creates."},
			{"example", "A tailoring cooperative funds its first sewing machines through a village savings and loan association, avoiding interest payments entirely."},
			{"tip", "Start with the cheapest money available to you: your own savings and grants do not have to be repaid."},
		},
		Questions: []questionSeed{
			{
				Text:        "Which funding source does NOT need to be repaid?",
				OptionA:     "A commercial bank loan",
				OptionB:     "A grant",
				OptionC:     "A microfinance loan",
				Correct:     "B",
				Explanation: "Grants are non-repayable funds, unlike loans which must be repaid with interest.",
			},
			{
				Text:        "What is usually the first funding source a new entrepreneur should consider?",
				OptionA:     "Personal savings",
				OptionB:     "A bank overdraft",
				OptionC:     "An investor",
				Correct:     "A",
				Explanation: "Personal savings carry no interest or repayment obligations, making them the cheapest starting capital.",
			},
		},
	},
	{
		Number: 2,
		Title:  "Preparing a Loan Application",
		Content: []contentSeed{
			{"text", "Lenders assess your ability to repay. A strong application includes a clear business plan, realistic cash flow projections, records of past income, and any collateral you can offer."},
			{"example", "A shop owner brings six months of sales records to the bank, showing steady weekly income that covers the proposed repayment."},
			{"tip", "Keep written records of every sale from day one. Lenders trust documented income far more than estimates."},
		},
		Questions: []questionSeed{
			{
				Text:        "What do lenders mainly look for in a loan application?",
				OptionA:     "An ambitious growth story",
				OptionB:     "Evidence of ability to repay",
				OptionC:     "A large number of employees",
				Correct:     "B",
				Explanation: "Lenders approve loans based on repayment capacity, shown through records, cash flow, and collateral.",
			},
		},
	},
	{
		Number: 3,
		Title:  "Managing Loan Repayment",
		Content: []contentSeed{
			{"text", "Before signing, understand the interest rate, the repayment schedule, and any penalties for late payment. Plan repayments into your weekly budget so the loan never surprises you."},
			{"tip", "Compare the total cost of borrowing across lenders, not just the monthly installment."},
		},
		Questions: []questionSeed{
			{
				Text:        "When comparing two loans, what should you compare?",
				OptionA:     "The total cost of borrowing",
				OptionB:     "Only the monthly installment",
				OptionC:     "The lender's office location",
				Correct:     "A",
				Explanation: "A lower installment over a longer term can cost more in total; always compare the full cost of the loan.",
			},
		},
	},
}

// Run inserts the reference catalog. It is idempotent: modules and
// chapters are keyed by unique constraints, and seeded chapter content
// is replaced wholesale on each run.
func Run(st *store.Store) error {
	db := st.DB()

	for _, name := range ModuleNames {
		if _, err := db.Exec("INSERT OR IGNORE INTO modules (name) VALUES (?)", name); err != nil {
			return fmt.Errorf("seed module %q: %w", name, err)
		}
	}

	var fundingID int64
	err := db.QueryRow("SELECT id FROM modules WHERE name = ?", "Accessing Funding & Loans").Scan(&fundingID)
	if err != nil {
		return fmt.Errorf("look up funding module: %w", err)
	}

	for _, ch := range fundingChapters {
		if err := seedChapter(db, fundingID, ch); err != nil {
			return err
		}
	}

	log.Info().Int("modules", len(ModuleNames)).Int("chapters", len(fundingChapters)).Msg("catalog seeded")
	return nil
}

func seedChapter(db *sql.DB, moduleID int64, ch chapterSeed) error {
	if _, err := db.Exec(
		"INSERT OR IGNORE INTO chapters (module_id, chapter_number, title) VALUES (?, ?, ?)",
		moduleID, ch.Number, ch.Title,
	); err != nil {
		return fmt.Errorf("seed chapter %d: %w", ch.Number, err)
	}

	var chapterID int64
	err := db.QueryRow(
		"SELECT id FROM chapters WHERE module_id = ? AND chapter_number = ?",
		moduleID, ch.Number,
	).Scan(&chapterID)
	if err != nil {
		return fmt.Errorf("look up chapter %d: %w", ch.Number, err)
	}

	// Replace chapter content and questions wholesale so reruns pick up
	// catalog changes without duplicating rows.
	if _, err := db.Exec("DELETE FROM content WHERE chapter_id = ?", chapterID); err != nil {
		return fmt.Errorf("clear content for chapter %d: %w", ch.Number, err)
	}
	if _, err := db.Exec("DELETE FROM questions WHERE chapter_id = ?", chapterID); err != nil {
		return fmt.Errorf("clear questions for chapter %d: %w", ch.Number, err)
	}

	for i, block := range ch.Content {
		if _, err := db.Exec(
			"INSERT INTO content (chapter_id, content_type, content_text, display_order) VALUES (?, ?, ?, ?)",
			chapterID, block.Type, block.Text, i+1,
		); err != nil {
			return fmt.Errorf("seed content for chapter %d: %w", ch.Number, err)
		}
	}

	for _, q := range ch.Questions {
		if _, err := db.Exec(`
			INSERT INTO questions (chapter_id, question_text, option_a, option_b, option_c, correct_option, explanation)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, chapterID, q.Text, q.OptionA, q.OptionB, q.OptionC, q.Correct, q.Explanation); err != nil {
			return fmt.Errorf("seed question for chapter %d: %w", ch.Number, err)
		}
	}
	return nil
}
