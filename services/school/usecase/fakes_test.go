package usecase

import (
	"context"

	"schoolhub/domain"
)

// fakeHierarchyRepo embeds the interface so each test only overrides what it
// touches; calling anything else panics loudly.
type fakeHierarchyRepo struct {
	domain.HierarchyRepo
	subjects  map[int]*domain.Subject
	years     map[int]*domain.SchoolYear
	created   []string
	createErr error
}

func (f *fakeHierarchyRepo) GetSubjectByID(ctx context.Context, id int) (*domain.Subject, error) {
	if s, ok := f.subjects[id]; ok {
		return s, nil
	}
	return nil, &domain.NotFoundError{Entity: "subject", ID: id}
}

func (f *fakeHierarchyRepo) GetSchoolYearByID(ctx context.Context, id int) (*domain.SchoolYear, error) {
	if y, ok := f.years[id]; ok {
		return y, nil
	}
	return nil, &domain.NotFoundError{Entity: "school year", ID: id}
}

func (f *fakeHierarchyRepo) CreateSchoolYear(ctx context.Context, year *domain.SchoolYear) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, year.YearLabel)
	return nil
}

func (f *fakeHierarchyRepo) CreateSemester(ctx context.Context, semester *domain.Semester) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, semester.Name)
	return nil
}

type fakeDirectory struct {
	roles map[int]domain.Role
}

func (f *fakeDirectory) RoleOf(ctx context.Context, personID int) (domain.Role, error) {
	if r, ok := f.roles[personID]; ok {
		return r, nil
	}
	return "", &domain.NotFoundError{Entity: "person", ID: personID}
}

type fakeEnrollmentRepo struct {
	domain.EnrollmentRepo
	assigned     [][2]int
	assignErr    error
	students     []int
	studentCount int
	roster       []domain.RosterEntry
}

func (f *fakeEnrollmentRepo) AssignInstructor(ctx context.Context, subjectID, instructorID int) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	f.assigned = append(f.assigned, [2]int{subjectID, instructorID})
	return nil
}

func (f *fakeEnrollmentRepo) AssignStudent(ctx context.Context, subjectID, studentID int) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	f.assigned = append(f.assigned, [2]int{subjectID, studentID})
	return nil
}

func (f *fakeEnrollmentRepo) RemoveStudent(ctx context.Context, subjectID, studentID int) error {
	return nil
}

func (f *fakeEnrollmentRepo) ListStudents(ctx context.Context, subjectID int) (*[]domain.RosterEntry, error) {
	entries := make([]domain.RosterEntry, len(f.roster))
	copy(entries, f.roster)
	return &entries, nil
}

func (f *fakeEnrollmentRepo) StudentIDs(ctx context.Context, subjectID int) ([]int, error) {
	return f.students, nil
}

func (f *fakeEnrollmentRepo) CountStudents(ctx context.Context, subjectID int) (int, error) {
	return f.studentCount, nil
}

type fakeAttendanceRepo struct {
	domain.AttendanceRepo
	sessions    map[int]*domain.AttendanceSession
	lastRecords []domain.AttendanceRecord
}

func (f *fakeAttendanceRepo) CreateSession(ctx context.Context, session *domain.AttendanceSession, records []domain.AttendanceRecord) error {
	f.lastRecords = records
	return nil
}

func (f *fakeAttendanceRepo) GetSessionByID(ctx context.Context, id int) (*domain.AttendanceSession, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, &domain.NotFoundError{Entity: "attendance session", ID: id}
}

func (f *fakeAttendanceRepo) UpdateRecordStatus(ctx context.Context, sessionID, studentID int, status domain.AttendanceStatus) error {
	return nil
}

type fakeAttendanceStatsRepo struct {
	sessionCounts domain.StatusCounts
	sessions      int
	counts        domain.StatusCounts
}

func (f *fakeAttendanceStatsRepo) SessionStatusCounts(ctx context.Context, sessionID int) (*domain.StatusCounts, error) {
	c := f.sessionCounts
	return &c, nil
}

func (f *fakeAttendanceStatsRepo) SubjectStatusCounts(ctx context.Context, subjectID int) (int, *domain.StatusCounts, error) {
	c := f.counts
	return f.sessions, &c, nil
}

type fakeGradeStatsRepo struct {
	rollup domain.GradeRollup
}

func (f *fakeGradeStatsRepo) SubjectGradeRollup(ctx context.Context, subjectID int) (*domain.GradeRollup, error) {
	r := f.rollup
	return &r, nil
}

type fakeSubmissionRepo struct {
	domain.SubmissionRepo
	folders         map[int]*domain.SubmissionFolder
	submissions     map[int]*domain.Submission
	lastFiles       []domain.SubmissionFile
	lastUpdate      *domain.Submission
	lastUpdateFiles *[]domain.SubmissionFile
	updateCalled    bool
	grades          map[[2]int]*float64
}

func (f *fakeSubmissionRepo) GetFolderByID(ctx context.Context, id int) (*domain.SubmissionFolder, error) {
	if fd, ok := f.folders[id]; ok {
		return fd, nil
	}
	return nil, &domain.NotFoundError{Entity: "folder", ID: id}
}

func (f *fakeSubmissionRepo) CreateFolder(ctx context.Context, folder *domain.SubmissionFolder) error {
	return nil
}

func (f *fakeSubmissionRepo) CreateSubmission(ctx context.Context, submission *domain.Submission, files []domain.SubmissionFile) error {
	f.lastFiles = files
	return nil
}

func (f *fakeSubmissionRepo) UpdateSubmission(ctx context.Context, submission *domain.Submission, files *[]domain.SubmissionFile) error {
	f.updateCalled = true
	f.lastUpdate = submission
	f.lastUpdateFiles = files
	return nil
}

func (f *fakeSubmissionRepo) GetSubmissionByID(ctx context.Context, id int) (*domain.Submission, error) {
	if s, ok := f.submissions[id]; ok {
		return s, nil
	}
	return nil, &domain.NotFoundError{Entity: "submission", ID: id}
}

func (f *fakeSubmissionRepo) UpsertGrade(ctx context.Context, submissionID, studentID int, grade *float64) error {
	if f.grades == nil {
		f.grades = make(map[[2]int]*float64)
	}
	f.grades[[2]int{submissionID, studentID}] = grade
	return nil
}

type fakeActivityLog struct {
	actions []string
	err     error
}

func (f *fakeActivityLog) Record(ctx context.Context, actorID int, action, description string) error {
	if f.err != nil {
		return f.err
	}
	f.actions = append(f.actions, action)
	return nil
}
