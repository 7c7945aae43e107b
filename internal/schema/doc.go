// Package schema provides the YAML descriptor format for Java types, its
// parsing and validation, and the construction of an analyze.TypeGraph from
// descriptor files.
//
// Descriptors stand in for reflection: they list, per type, what the
// generator needs to know about it.
//
// # Schema Overview
//
//	version: "1"
//	types:
//	  - name: java.util.function.BinaryOperator
//	    type_params: [T]
//	    extends: java.util.function.BiFunction<T, T, T>
//	    methods:
//	      - "static <T> BinaryOperator<T> minBy(Comparator<? super T> comparator)"
//	  - name: java.io.IOException
//	    kind: class
//	    extends: java.lang.Exception
//	  - name: com.example.Adder
//	    methods:
//	      - name: add
//	        params: [int, int]
//	        returns: int
//	        throws: com.example.IOFailure
//
// # Methods
//
// A method is either a signature string in Java syntax or a mapping with
// name, type_params, params, returns (default void), throws, default and
// static. Interface methods are abstract unless default or static; class
// methods are abstract only when declared so.
//
// # Lists
//
// type_params, extends, params and throws accept a single string or a list.
//
// # Resolution
//
// Names in extends and throws resolve as Java source would see them from
// the declaring type: fully qualified, then the same package, then
// java.lang.
package schema
