package config

// RootNamespace is the implicit namespace every absolute module path hangs
// off of. `Foo.Bar` resolves to `Funex.Foo.Bar` unless an alias says otherwise.
const RootNamespace = "Funex"

// NamespaceSeparator joins path segments in canonical module paths.
const NamespaceSeparator = "."

// Pseudo-variable spellings recognized by the resolver.
const (
	PseudoMainName   = "__MAIN__"   // the root namespace itself
	PseudoModuleName = "__MODULE__" // the module being compiled
	PseudoFileName   = "__FILE__"   // the source file being compiled
	PseudoEnvName    = "__ENV__"    // the lexical environment snapshot
)

// CaptureOperator is the partial-application marker as written in source.
const CaptureOperator = "&"

// ManifestFileNames are the recognized module manifest file names.
var ManifestFileNames = []string{"funex.yaml", "funex.yml"}

// DefaultIndexFile is the default location of the macro index database.
const DefaultIndexFile = "funex-index.db"
