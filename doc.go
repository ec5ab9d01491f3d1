/*
Package logframe validates and scores Logical Framework (LFA) designs of
education programs.

A design is a set of artifacts: a problem statement, a causal problem tree,
a theory of change (activities -> outputs -> outcomes -> impact),
stakeholders, practice changes and measurable indicators. The Engine checks
their internal logical consistency and produces completeness and quality
scores with actionable feedback.

# Concept

Every evaluation is a pure function of its input plus optional reference
lookups. Collaborators are ports:

  - ports.ReferenceCatalog provides ecosystem patterns, pathway patterns,
    state and district challenges, indicator templates and the methodology,
    stakeholder, practice, competency and policy tables.
  - ports.Recorder receives a derived domain.Record after each evaluation.
  - ports.Translator localizes results on request.

Lookup and recording failures are logged and fire lifecycle hooks; they
never fail an evaluation. A missing pattern simply yields the documented
fallback result.

# Usage

	eng, err := logframe.New(
		logframe.WithCatalog(memory.NewCatalog(data)),
		logframe.WithLogger(logger),
	)
	if err != nil {
		log.Fatal(err)
	}

	report, err := eng.ValidatePathway(ctx, logframe.PathwayRequest{
		Theme: "foundational literacy",
		Nodes: nodes,
		Edges: edges,
	})
	if err != nil {
		// structural malformation: unknown node reference or duplicate id
		log.Fatal(err)
	}
	fmt.Println(report.IsValid, report.Issues)
*/
package logframe
