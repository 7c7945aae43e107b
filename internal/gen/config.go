package gen

import (
	"unchecker-generator/internal/analyze"
)

// DefaultBanner is the first line of every generated file.
const DefaultBanner = "Code generated by unchecker-generator. DO NOT EDIT."

// Config holds configuration for code generation.
type Config struct {
	// Package is the Java package of the generated class.
	Package string
	// Class is the simple name of the enclosing class.
	Class string
	// Checked is the exception category the checked interfaces declare.
	Checked analyze.TypeID
	// Unchecked is the category checked exceptions are wrapped in. It must
	// not itself be checked.
	Unchecked analyze.TypeID
	// Naming derives the generated names from each SAM type's simple name.
	Naming NamingPolicy
	// Banner is the text of the leading line comment. Defaults to
	// DefaultBanner.
	Banner string
	// SiteURL, when set, is linked from the class javadoc.
	SiteURL string
}

// DefaultConfig returns the configuration of the general-purpose uncheckers:
// Exception wrapped in RuntimeException.
func DefaultConfig() Config {
	return Config{
		Package:   "net.johnglassmyer.uncheckers",
		Class:     "Uncheckers",
		Checked:   analyze.TypeID{Package: "java.lang", Name: "Exception"},
		Unchecked: analyze.TypeID{Package: "java.lang", Name: "RuntimeException"},
		Naming: AffixPolicy{
			CheckedInterfacePrefix: "Checked",
			AdapterPrefix:          "uncheck",
			DirectInvokePrefix:     "callUnchecked",
		},
		Banner: DefaultBanner,
	}
}

// ExceptionCategory is an exception type together with its classification.
type ExceptionCategory struct {
	ID      analyze.TypeID
	Checked bool
}

// Qualified returns the fully qualified name, used in imports and links.
func (c ExceptionCategory) Qualified() string {
	return c.ID.String()
}

// Simple returns the simple name, used in code.
func (c ExceptionCategory) Simple() string {
	return c.ID.Name
}
