package prompts

const structuralSpec = `Respond with a JSON object matching this exact structure:

{
  "added_sections": [{"section": "<section_name>", "content": "<content>"}],
  "removed_sections": [{"section": "<section_name>", "content": "<content>"}],
  "reorganized_sections": [{"old_section": "<old_name>", "new_section": "<new_name>"}]
}

Field constraints:
- added_sections: Sections present in Document 2 but not Document 1, with
  their full content.
- removed_sections: Sections present in Document 1 but not Document 2, with
  the content that was removed.
- reorganized_sections: Sections that moved or were renamed, mapping the old
  identifier to the new one.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing and no other text
- Use empty arrays for categories with no findings
- Identify sections exactly as they are labeled in the documents`

const semanticSpec = `Respond with a JSON object matching this exact structure:

{
  "term_changes": [{"term": "<term_name>", "old_definition": "<old_def>", "new_definition": "<new_def>"}],
  "obligation_changes": [{"party": "<party_name>", "old_obligation": "<old_obl>", "new_obligation": "<new_obl>"}],
  "condition_changes": [{"condition": "<condition_name>", "old_text": "<old_text>", "new_text": "<new_text>"}]
}

Field constraints:
- term_changes: Defined terms whose definitions differ between versions.
- obligation_changes: Party obligations that were added, removed, or altered.
  Use an empty string for the old or new value when the obligation is new or
  was removed entirely.
- condition_changes: Conditions or requirements whose operative text changed.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing and no other text
- Use empty arrays for categories with no findings
- Quote document language verbatim in the old and new fields`

const finalSpec = `Respond with a JSON object matching this exact structure:

{
  "significant_changes": [{"category": "<category>", "description": "<description>", "impact": "<impact>"}],
  "overall_assessment": "<text>",
  "potential_inconsistencies": [{"description": "<description>", "location": "<location>"}]
}

Field constraints:
- significant_changes: The changes most likely to matter to a reviewing
  party, categorized (e.g., structural, terms, obligations) with their
  potential impact.
- overall_assessment: A prose assessment of how substantially the document
  has changed.
- potential_inconsistencies: Internal contradictions or drafting issues the
  changes introduced, with where they occur.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing and no other text
- Base findings only on the provided structural and semantic analyses`

const riskSpec = `Respond with a JSON object matching this exact structure:

{
  "legal_risks": [{"description": "<description>", "explanation": "<explanation>", "severity": "<Low|Medium|High>", "mitigation": "<mitigation>"}],
  "business_risks": [{"description": "<description>", "explanation": "<explanation>", "severity": "<Low|Medium|High>", "mitigation": "<mitigation>"}],
  "operational_risks": [{"description": "<description>", "explanation": "<explanation>", "severity": "<Low|Medium|High>", "mitigation": "<mitigation>"}],
  "strategic_risks": [{"description": "<description>", "explanation": "<explanation>", "severity": "<Low|Medium|High>", "mitigation": "<mitigation>"}]
}

Field constraints:
- Each risk entry names the risk, explains why it is a risk, rates severity
  as exactly Low, Medium, or High, and suggests a mitigation.
- Tie each risk to a specific change identified in the comparison analyses.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing and no other text
- Use empty arrays for risk categories with no findings`

const summarySpec = `Respond with a markdown document, not JSON. Structure the report with these top-level headings:

# Executive Summary
# Detailed Changes Analysis
# Risk Assessment
# Recommendations

Behavioral constraints:
- Write for a legal reviewer deciding whether to accept the new version
- Reference specific sections, terms, and risks from the provided analyses
- Mark any section whose underlying analysis failed to parse as requiring
  manual review, and include the recoverable raw findings`

var specs = map[Stage]string{
	StageStructural: structuralSpec,
	StageSemantic:   semanticSpec,
	StageFinal:      finalSpec,
	StageRisk:       riskSpec,
	StageSummary:    summarySpec,
}

// Spec returns the hardcoded specification for a pipeline stage.
// Specifications define the expected output format and behavioral constraints.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
