// Package w3c provides IRI constants for the standard W3C vocabularies
// (RDF, SKOS, Dublin Core, ADMS, LOCN, org/regorg, schema.org, FOAF)
// referenced by the Flemish government linked-data publications.
package w3c
