package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"padhobadho/internal/domain"
	"padhobadho/internal/dto"

	"go.uber.org/zap"
)

var requiredImportColumns = []string{"subject", "content", "option_a", "option_b", "correct_option"}

var optionColumns = []string{"option_a", "option_b", "option_c", "option_d"}

// QuestionImporter bulk-loads questions from CSV.
type QuestionImporter interface {
	// Import returns the report together with a PARTIAL_BATCH_FAILURE error when some rows failed.
	Import(ctx context.Context, r io.Reader) (*dto.ImportReport, error)
}

type questionImporter struct {
	txManager    domain.TransactionManager
	subjectRepo  domain.SubjectRepository
	questionRepo domain.QuestionRepository
	logger       *zap.Logger
}

func NewQuestionImporter(
	txManager domain.TransactionManager,
	subjectRepo domain.SubjectRepository,
	questionRepo domain.QuestionRepository,
	logger *zap.Logger,
) QuestionImporter {
	return &questionImporter{
		txManager:    txManager,
		subjectRepo:  subjectRepo,
		questionRepo: questionRepo,
		logger:       logger,
	}
}

// importRun is the state of one Import call.
type importRun struct {
	columns  map[string]int
	subjects map[string]string
	seen     map[string]struct{}
	report   dto.ImportReport
}

func (s *questionImporter) Import(ctx context.Context, r io.Reader) (*dto.ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewInvalidInputError("csv is empty")
		}
		return nil, domain.NewError(domain.CodeInvalidFormat, "failed to read csv header", err)
	}

	run := &importRun{
		columns:  make(map[string]int, len(header)),
		subjects: make(map[string]string),
		seen:     make(map[string]struct{}),
	}
	for i, name := range header {
		run.columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, col := range requiredImportColumns {
		if _, ok := run.columns[col]; !ok {
			return nil, domain.NewMissingFieldError(col)
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err := ctx.Err(); err != nil {
			return &run.report, err
		}

		run.report.Total++
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return &run.report, domain.NewInternalError("failed to read csv", err)
			}
			run.fail(parseErr.StartLine, parseErr.Err.Error())
			continue
		}

		line, _ := reader.FieldPos(0)
		if reason := s.importRow(ctx, run, record); reason != "" {
			run.fail(line, reason)
		}
	}

	s.logger.Info("Question import finished",
		zap.Int("total", run.report.Total),
		zap.Int("imported", run.report.Imported),
		zap.Int("duplicates", run.report.Duplicates),
		zap.Int("failed", run.report.Failed),
	)

	if run.report.Failed > 0 {
		return &run.report, domain.NewPartialBatchFailureError(run.report.Failed, run.report.Total)
	}
	return &run.report, nil
}

func (run *importRun) fail(line int, reason string) {
	run.report.Failed++
	run.report.Errors = append(run.report.Errors, dto.RowError{Line: line, Reason: reason})
}

func (run *importRun) field(record []string, column string) string {
	i, ok := run.columns[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// importRow returns a non-empty reason when the row fails.
func (s *questionImporter) importRow(ctx context.Context, run *importRun, record []string) string {
	question, subjectName, reason := run.parseRow(record)
	if reason != "" {
		return reason
	}

	var duplicate bool
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		subjectID, err := s.resolveSubject(ctx, run, subjectName)
		if err != nil {
			return err
		}
		question.SubjectID = subjectID

		key := subjectID + "\x00" + strings.ToLower(question.Content)
		if _, ok := run.seen[key]; ok {
			duplicate = true
			return nil
		}
		exists, err := s.questionRepo.ExistsByContent(ctx, subjectID, question.Content)
		if err != nil {
			return err
		}
		if exists {
			duplicate = true
			run.seen[key] = struct{}{}
			return nil
		}
		if err := s.questionRepo.CreateQuestion(ctx, question); err != nil {
			return err
		}
		run.seen[key] = struct{}{}
		return nil
	})
	if err != nil {
		// A rolled back row may have created the subject; forget it.
		delete(run.subjects, strings.ToUpper(subjectName))
		return err.Error()
	}
	if duplicate {
		run.report.Duplicates++
		return ""
	}
	run.report.Imported++
	return ""
}

func (s *questionImporter) resolveSubject(ctx context.Context, run *importRun, name string) (string, error) {
	key := strings.ToUpper(name)
	if id, ok := run.subjects[key]; ok {
		return id, nil
	}
	subject, err := s.subjectRepo.GetSubjectByName(ctx, name)
	if err != nil {
		return "", err
	}
	if subject == nil {
		subject = &domain.Subject{Name: name}
		if err := s.subjectRepo.CreateSubject(ctx, subject); err != nil {
			return "", err
		}
	}
	run.subjects[key] = subject.ID
	return subject.ID, nil
}

func (run *importRun) parseRow(record []string) (*domain.Question, string, string) {
	subject := run.field(record, "subject")
	if subject == "" {
		return nil, "", "subject is required"
	}

	var options []string
	gap := false
	for _, col := range optionColumns {
		opt := run.field(record, col)
		if opt == "" {
			gap = true
			continue
		}
		if gap {
			return nil, "", fmt.Sprintf("%s is set but an earlier option is empty", col)
		}
		options = append(options, opt)
	}

	correct, ok := parseCorrectOption(run.field(record, "correct_option"))
	if !ok {
		return nil, "", fmt.Sprintf("invalid correct_option %q", run.field(record, "correct_option"))
	}

	difficulty, ok := domain.ParseDifficulty(run.field(record, "difficulty"))
	if !ok {
		return nil, "", fmt.Sprintf("invalid difficulty %q", run.field(record, "difficulty"))
	}

	var sourceYear int
	if raw := run.field(record, "source_year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1900 || year > 2100 {
			return nil, "", fmt.Sprintf("invalid source_year %q", raw)
		}
		sourceYear = year
	}

	q := &domain.Question{
		Topic:         run.field(record, "topic"),
		Content:       run.field(record, "content"),
		Options:       options,
		CorrectOption: correct,
		Difficulty:    difficulty,
		Explanation:   run.field(record, "explanation"),
		SourceYear:    sourceYear,
	}
	if err := q.Validate(); err != nil {
		return nil, "", err.Error()
	}
	return q, subject, ""
}

// parseCorrectOption accepts a letter A-D or a zero-based index 0-3.
func parseCorrectOption(raw string) (int, bool) {
	if len(raw) != 1 {
		return 0, false
	}
	c := raw[0]
	switch {
	case c >= 'A' && c <= 'D':
		return int(c - 'A'), true
	case c >= 'a' && c <= 'd':
		return int(c - 'a'), true
	case c >= '0' && c <= '3':
		return int(c - '0'), true
	default:
		return 0, false
	}
}
