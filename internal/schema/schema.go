package schema

// CurrentVersion is the descriptor format version written by Marshal.
const CurrentVersion = "1"

// Kind names accepted in descriptor files.
const (
	KindInterface = "interface"
	KindClass     = "class"
)

// File is the root of a descriptor file.
type File struct {
	// Version of the descriptor format. Defaults to CurrentVersion.
	Version string `yaml:"version"`
	// Types are the described types, in order.
	Types []TypeSpec `yaml:"types"`
}

// TypeSpec describes one interface or class.
type TypeSpec struct {
	// Name is the fully qualified type name, e.g. "java.util.function.Function".
	Name string `yaml:"name"`
	// Kind is "interface" (default) or "class".
	Kind string `yaml:"kind,omitempty"`
	// TypeParams are declarations such as "T" or "T extends Comparable<T>".
	TypeParams StringOrArray `yaml:"type_params,omitempty"`
	// Extends lists the supertypes with their type arguments.
	Extends StringOrArray `yaml:"extends,omitempty"`
	// Methods are the declared methods.
	Methods []MethodSpec `yaml:"methods,omitempty"`
	// Description is free text, ignored by the generator.
	Description string `yaml:"description,omitempty"`
}

// IsClass reports whether the descriptor describes a class.
func (t *TypeSpec) IsClass() bool {
	return t.Kind == KindClass
}

// MethodSpec describes one method, either as a Java signature or field by
// field.
type MethodSpec struct {
	// Signature is set when the method was given as a single string.
	Signature string `yaml:"-"`

	Name       string        `yaml:"name,omitempty"`
	TypeParams StringOrArray `yaml:"type_params,omitempty"`
	Params     StringOrArray `yaml:"params,omitempty"`
	Returns    string        `yaml:"returns,omitempty"`
	Throws     StringOrArray `yaml:"throws,omitempty"`
	Abstract   bool          `yaml:"abstract,omitempty"`
	Default    bool          `yaml:"default,omitempty"`
	Static     bool          `yaml:"static,omitempty"`
}

// StringOrArray represents a value that can be either a single string or an array of strings.
type StringOrArray []string
