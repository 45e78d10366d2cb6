package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/logocheck/logocheck/internal/domain"
)

// CheckOptions are the resolved inputs of a single run.
type CheckOptions struct {
	RootPath    string
	SchemaPath  string
	SearchDir   string
	FileName    string
	ExcludeDirs []string
	Draft       string
}

// CheckService orchestrates the check pipeline:
// load schema -> discover files -> parse -> validate -> collect.
type CheckService struct {
	finder   domain.FileFinder
	parser   domain.DocumentParser
	compiler domain.SchemaCompiler
	log      logrus.FieldLogger
}

func NewCheckService(
	finder domain.FileFinder,
	parser domain.DocumentParser,
	compiler domain.SchemaCompiler,
	log logrus.FieldLogger,
) *CheckService {
	return &CheckService{
		finder:   finder,
		parser:   parser,
		compiler: compiler,
		log:      log,
	}
}

// Run validates every discovered file against the schema. Per-file failures
// are recorded in the result; only setup failures are returned as errors.
func (s *CheckService) Run(opts CheckOptions) (*domain.RunResult, error) {
	// 1. Load schema once
	s.log.WithField("schema", opts.SchemaPath).Debug("loading schema")
	sch, err := s.compiler.Compile(opts.SchemaPath, opts.Draft)
	if err != nil {
		return nil, &domain.SetupError{Stage: "schema", Path: opts.SchemaPath, Err: err}
	}

	// 2. Discover candidate files
	files := s.finder.Find(opts.SearchDir, opts.FileName, opts.ExcludeDirs...)
	s.log.WithFields(logrus.Fields{"dir": opts.SearchDir, "count": len(files)}).Debug("discovered files")

	result := &domain.RunResult{
		SearchDir:  opts.SearchDir,
		FileName:   opts.FileName,
		Files:      []domain.FileResult{},
		Violations: []domain.Violation{},
	}

	// 3. Parse and validate each file in isolation
	for _, f := range files {
		fr := s.checkFile(sch, f, displayPath(opts.RootPath, f))
		s.log.WithFields(logrus.Fields{"file": fr.Path, "violations": len(fr.Violations)}).Debug("validated")
		result.Add(fr)
	}

	return result, nil
}

func (s *CheckService) checkFile(sch domain.Schema, path, display string) domain.FileResult {
	fr := domain.FileResult{Path: display}

	instance, err := s.parser.Parse(path)
	if err != nil {
		fr.Violations = []domain.Violation{{
			File:    display,
			Message: fmt.Sprintf("parse error: %v", err),
		}}
		return fr
	}

	fr.Violations = sch.Validate(instance)
	domain.SortViolations(fr.Violations)
	for i := range fr.Violations {
		fr.Violations[i].File = display
	}
	return fr
}

// displayPath renders path relative to root when it lies inside root.
func displayPath(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
