package domain

// FileFinder locates files with a given name under a directory tree.
type FileFinder interface {
	Find(dir, name string, excludeDirs ...string) []string
}

// DocumentParser decodes a structured document from disk.
type DocumentParser interface {
	Parse(path string) (any, error)
}

// SchemaCompiler turns a schema file into a reusable validator.
type SchemaCompiler interface {
	Compile(path, draft string) (Schema, error)
}

// Schema validates decoded instances. Validate returns every violation with
// File left empty; callers fill it in.
type Schema interface {
	Validate(instance any) []Violation
}

// ConfigLoader reads project configuration from a root directory.
type ConfigLoader interface {
	Load(rootPath string) (Config, error)
	LoadFile(path string) (Config, error)
}

// RepoLocator resolves the enclosing repository root for a path.
type RepoLocator interface {
	RepoRoot(path string) (string, error)
}
