// Package xsdtype recognizes and classifies the four XSD datatypes the
// numeric core projects onto: xsd:integer, xsd:decimal, xsd:double, and
// xsd:float (spec.md §4.3). Naming follows the XSD URI convention the
// example corpus's RDF literal handling uses for its datatype constants,
// narrowed to bare local names since this package never touches full URIs.
package xsdtype
