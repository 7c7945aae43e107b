package common

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SimpleName returns the last segment of a dotted Java name.
// Returns the input unchanged if it has no package qualifier.
func SimpleName(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}

	return qualified
}

// PackageOf returns the package part of a dotted Java name, or "" for
// unqualified names.
func PackageOf(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[:i]
	}

	return ""
}

// Qualify joins a package and a simple name.
func Qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}

	return pkg + "." + name
}

// javaKeywords are the reserved words that cannot be used as identifiers,
// including the literals true, false and null.
var javaKeywords = map[string]struct{}{
	"abstract": {}, "assert": {}, "boolean": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "class": {}, "const": {},
	"continue": {}, "default": {}, "do": {}, "double": {}, "else": {},
	"enum": {}, "extends": {}, "final": {}, "finally": {}, "float": {},
	"for": {}, "goto": {}, "if": {}, "implements": {}, "import": {},
	"instanceof": {}, "int": {}, "interface": {}, "long": {}, "native": {},
	"new": {}, "package": {}, "private": {}, "protected": {}, "public": {},
	"return": {}, "short": {}, "static": {}, "strictfp": {}, "super": {},
	"switch": {}, "synchronized": {}, "this": {}, "throw": {}, "throws": {},
	"transient": {}, "try": {}, "void": {}, "volatile": {}, "while": {},
	"true": {}, "false": {}, "null": {}, "_": {},
}

// IsKeyword reports whether s is a reserved Java word.
func IsKeyword(s string) bool {
	_, ok := javaKeywords[s]
	return ok
}

// IsIdentifier reports whether s is a legal Java identifier.
func IsIdentifier(s string) bool {
	if s == "" || IsKeyword(s) {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}

// IsQualifiedName reports whether s is a dotted sequence of identifiers,
// such as a package name or a fully qualified type name.
func IsQualifiedName(s string) bool {
	if s == "" {
		return false
	}

	for _, part := range strings.Split(s, ".") {
		if !IsIdentifier(part) {
			return false
		}
	}

	return true
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
