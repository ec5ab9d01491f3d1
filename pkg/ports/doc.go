/*
Package ports defines the driven ports (interfaces) of the logframe engine.

The engine is a set of pure evaluators. Everything it consumes or produces
beyond its arguments goes through these interfaces, so reference data,
persistence and translation can live in Redis, a directory of Markdown
files, a YAML file or memory.

# Key Interfaces

  - ReferenceCatalog: keyed lookups of ecosystem patterns, theory-of-change
    patterns, state and district challenges, indicator templates,
    methodologies, stakeholders, practice templates, competencies and
    policy references.
  - Recorder: persistence of every derived record.
  - RecordReader: read-back of recorded evaluations for one organization.
  - Translator: best-effort text translation.

Absent reference data is not an error: lookups return a nil pattern or an
empty slice with a nil error. An error always means the backend failed.
*/
package ports
