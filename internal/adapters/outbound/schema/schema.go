package schema

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/logocheck/logocheck/internal/domain"
)

var drafts = map[string]*jsonschema.Draft{
	"draft4":  jsonschema.Draft4,
	"draft6":  jsonschema.Draft6,
	"draft7":  jsonschema.Draft7,
	"2019-09": jsonschema.Draft2019,
	"2020-12": jsonschema.Draft2020,
}

// Compiler implements domain.SchemaCompiler on top of santhosh-tekuri/jsonschema.
type Compiler struct {
	parser domain.DocumentParser
}

// NewCompiler creates a Compiler that decodes schema files with parser.
func NewCompiler(parser domain.DocumentParser) *Compiler {
	return &Compiler{parser: parser}
}

// Compile loads the schema at path. draft selects the dialect for schemas
// without a $schema keyword; empty means draft7. Format keywords are asserted.
func (c *Compiler) Compile(path, draft string) (domain.Schema, error) {
	if draft == "" {
		draft = domain.DefaultDraft
	}
	d, ok := drafts[draft]
	if !ok {
		return nil, fmt.Errorf("unknown draft %q", draft)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	doc, err := c.parser.Parse(absPath)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(d)
	compiler.AssertFormat()
	if err := compiler.AddResource(absPath, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	sch, err := compiler.Compile(absPath)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &Schema{
		schema:  sch,
		printer: message.NewPrinter(language.English),
	}, nil
}

// Schema is a compiled schema. It is safe to reuse across instances.
type Schema struct {
	schema  *jsonschema.Schema
	printer *message.Printer
}

// Validate returns every violation of the schema, sorted by location.
func (s *Schema) Validate(instance any) []domain.Violation {
	err := s.schema.Validate(instance)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []domain.Violation{{Message: err.Error()}}
	}

	var out []domain.Violation
	s.collect(ve, &out)
	domain.SortViolations(out)
	return out
}

// collect flattens the error tree to its leaves, the same units the
// library's basic output format reports. anyOf and oneOf failures stop the
// descent and report once instead of once per failing branch.
func (s *Schema) collect(ve *jsonschema.ValidationError, out *[]domain.Violation) {
	if len(ve.Causes) == 0 || isAlternatives(ve.ErrorKind) {
		*out = append(*out, s.describe(ve)...)
		return
	}
	for _, cause := range ve.Causes {
		s.collect(cause, out)
	}
}

func (s *Schema) describe(ve *jsonschema.ValidationError) []domain.Violation {
	loc := slices.Clone(ve.InstanceLocation)

	// One entry per missing property keeps the messages single-line.
	if req, ok := ve.ErrorKind.(*kind.Required); ok {
		vs := make([]domain.Violation, 0, len(req.Missing))
		for _, name := range req.Missing {
			vs = append(vs, domain.Violation{
				Location: loc,
				Message:  fmt.Sprintf("'%s' is a required property", name),
			})
		}
		return vs
	}

	msg := ve.ErrorKind.LocalizedString(s.printer)
	switch k := ve.ErrorKind.(type) {
	case *kind.AnyOf:
		msg = "is not valid under any of the given schemas"
	case *kind.OneOf:
		if len(k.Subschemas) == 0 {
			msg = "is not valid under any of the given schemas"
		}
	}

	return []domain.Violation{{
		Location: loc,
		Message:  msg,
	}}
}

func isAlternatives(k jsonschema.ErrorKind) bool {
	switch k.(type) {
	case *kind.AnyOf, *kind.OneOf:
		return true
	}
	return false
}
