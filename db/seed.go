package db

import (
	"database/sql"
	"fmt"
)

// SeedData populates the database with initial reference content:
// chapters, topics, a small question bank and the published mock tests.
func SeedData(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	chapters := []struct {
		Number     int
		Title      string
		Subject    string
		ClassLevel string
	}{
		{1, "Units and Measurements", "physics", "11"},
		{2, "Motion in a Straight Line", "physics", "11"},
		{1, "Some Basic Concepts of Chemistry", "chemistry", "11"},
		{1, "The Living World", "biology", "11"},
	}
	for _, ch := range chapters {
		_, err = tx.Exec(`
			INSERT INTO chapters (chapter_number, chapter_title, subject, class_level)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (
				SELECT 1 FROM chapters WHERE chapter_title = $2 AND subject = $3
			)`, ch.Number, ch.Title, ch.Subject, ch.ClassLevel)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding chapters: %w", err)
		}
	}

	topics := []struct {
		Name    string
		Subject string
	}{
		{"Dimensional Analysis", "physics"},
		{"Mole Concept", "chemistry"},
		{"Taxonomy", "biology"},
	}
	for _, tp := range topics {
		_, err = tx.Exec(`
			INSERT INTO topics (topic_name, subject)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM topics WHERE topic_name = $1)`,
			tp.Name, tp.Subject)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding topics: %w", err)
		}
	}

	questions := []struct {
		Question string
		Options  string
		Answer   string
		Subject  string
	}{
		{
			"Which of the following is a fundamental SI unit?",
			`["newton", "joule", "kelvin", "watt"]`,
			"c", "physics",
		},
		{
			"The dimensional formula of impulse is the same as that of:",
			`["force", "momentum", "energy", "power"]`,
			"b", "physics",
		},
		{
			"One mole of any gas at STP occupies:",
			`[{"id": "a", "text": "11.2 L"}, {"id": "b", "text": "22.4 L"}, {"id": "c", "text": "44.8 L"}, {"id": "d", "text": "2.24 L"}]`,
			"b", "chemistry",
		},
		{
			"Binomial nomenclature was introduced by:",
			`["Darwin", "Linnaeus", "Whittaker", "Mendel"]`,
			"b", "biology",
		},
	}
	for _, q := range questions {
		_, err = tx.Exec(`
			INSERT INTO questions (question, options, correct_answer, subject)
			SELECT $1, $2::jsonb, $3, $4
			WHERE NOT EXISTS (SELECT 1 FROM questions WHERE question = $1)`,
			q.Question, q.Options, q.Answer, q.Subject)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding questions: %w", err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO mock_tests (test_type, title, questions_list, duration_minutes, subject, is_published)
		SELECT 'full_syllabus', 'Full Syllabus Mock Test 1', '[1, 2, 3, 4]'::jsonb, 180, NULL, TRUE
		WHERE NOT EXISTS (SELECT 1 FROM mock_tests WHERE title = 'Full Syllabus Mock Test 1')`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error seeding mock tests: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
