// Package oslo provides the data.vlaanderen.be identifier namespaces, the
// Flemish OSLO vocabulary terms, and the versioned NACE classification
// namespaces used by the KBO and organization converters.
package oslo
