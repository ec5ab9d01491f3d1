/*
Package domain contains the core models of the logframe engine.

It defines the design artifacts an education program authors in a Logical
Framework (LFA): change-pathway graphs, problem trees, design snapshots,
and the derived records (section results, feedback items) the engine emits.
This package is kept pure and free of external dependencies like I/O or
persistence; collaborators live behind the interfaces in pkg/ports.

# Key Entities

  - Node / Edge / Graph: a flat, id-keyed representation of a causal chain.
  - ProblemTree: causes -> core problem -> effects.
  - Snapshot: section name -> section content, scored against a rubric.
  - SectionResult / CompletenessReport: output of the completeness scorer.
  - FeedbackItem / QualityReport: output of the design quality analyzer.
*/
package domain
