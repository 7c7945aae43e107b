// Package analyze models the Java types the generator works on.
//
// There is no runtime reflection to lean on, so types are described as data
// (see package schema) and collected into a TypeGraph. The graph answers the
// questions the generator needs:
//
//   - which abstract methods a type exposes, including inherited ones, with
//     the type arguments of each supertype substituted in;
//   - whether one type is a subtype of another;
//   - whether an exception type is checked, that is, a subtype of the
//     failure root that is not a subtype of the unchecked root.
//
// Key types:
//   - TypeRef: a parsed Java type expression such as Map<K, V>[] or ? super T
//   - TypeID: package plus simple name
//   - TypeInfo: an interface or class with type parameters, supertypes and methods
//   - ResolvedMethod: a method as seen from a particular type
package analyze
