package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolhub/domain"
)

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB prepares the enum types, opens the gorm handle, migrates the schema
// and creates the partial unique indexes backing the uniqueness invariants.
func BootDB() (*gorm.DB, error) {
	url := GetDatabaseURL()

	bootstrap, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	defer bootstrap.Close()

	if err := bootstrap.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createEnumTypes(bootstrap); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(url), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	err = db.AutoMigrate(
		&domain.Person{},
		&domain.ActivityRecord{},
		&domain.SchoolYear{},
		&domain.Semester{},
		&domain.GradeLevel{},
		&domain.Section{},
		&domain.Subject{},
		&domain.SubjectInstructor{},
		&domain.SubjectStudent{},
		&domain.SubmissionFolder{},
		&domain.Submission{},
		&domain.SubmissionFile{},
		&domain.StudentSubmission{},
		&domain.AttendanceSession{},
		&domain.AttendanceRecord{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createUniqueIndexes(bootstrap); err != nil {
		return nil, err
	}

	return db, nil
}

// Postgres enum types have to exist before AutoMigrate references them.
func createEnumTypes(db *sql.DB) error {
	queries := []string{
		`DO $$ BEGIN
			CREATE TYPE person_role AS ENUM ('admin', 'instructor', 'student');
		EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
		`DO $$ BEGIN
			CREATE TYPE attendance_status AS ENUM ('present', 'absent', 'late', 'excused');
		EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("failed to create enum type: %w", err)
		}
	}
	return nil
}

// Partial indexes so uniqueness only binds live rows; concurrent duplicate
// writers race into a 23505 which the repositories translate.
func createUniqueIndexes(db *sql.DB) error {
	queries := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_school_years_label
			ON school_years (year_label) WHERE deleted_at IS NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_subject_instructors_pair
			ON subject_instructors (subject_id, instructor_id) WHERE deleted_at IS NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_subject_students_pair
			ON subject_students (subject_id, student_id) WHERE deleted_at IS NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_student_submissions_pair
			ON student_submissions (submission_id, student_id) WHERE deleted_at IS NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_attendance_records_pair
			ON attendance_records (session_id, student_id) WHERE deleted_at IS NULL;`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("failed to create unique index: %w", err)
		}
	}
	return nil
}
