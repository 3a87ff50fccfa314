// Package prompt holds the prompt variants the copilot and the evaluation
// harness work with. Variants are flat text with {placeholder} slots; there
// is deliberately no template logic.
package prompt

import (
	"fmt"
	"strings"
)

// Variant names.
const (
	Baseline   = "baseline"
	Structured = "structured"
	React      = "react"
	PlanSolve  = "plan_solve"
)

const BaselinePrompt = `You are a preventive health assistant.
Provide concise preventive health tips for the condition: {condition}.
Keep recommendations evidence-informed, actionable, and brief.`

const StructuredPrompt = `You are a preventive health assistant who provides structured, actionable guidance.

Provide structured preventive tips for {condition}.

Format:
1. Brief explanation (1-2 sentences)
2. Three actionable tips
3. One sentence recommendation next steps`

const ReactPrompt = `You are a Preventive Health Copilot implementing the ReAct reasoning framework.

User query: {query}

Follow these steps explicitly:
1. Thought: think about the user's intent and constraints.
2. Action: decide whether to call a tool (health_tips or schedule_reminder).
3. Observation: include the tool output if a tool is called.
4. Answer: provide final actionable guidance and any scheduled reminders.

Respond using labeled sections: Thought, Action, Observation, Answer.`

const PlanSolvePrompt = `You are a Preventive Health Copilot using a Plan-and-Solve approach.

User query: {query}

1) Produce a short plan (2-4 steps).
2) Execute the steps, calling tools when helpful.
3) Summarize the final recommendations.

Return JSON with keys: plan (list), actions (list), result (string).`

// CopilotSystemPrompt is the default system prompt for the tool-calling
// agent profile.
const CopilotSystemPrompt = `You are a Preventive Health Copilot. Use the available tools when the user asks for condition-specific tips or wants a reminder scheduled at a specific time. Follow the ReAct pattern: reason first, act when needed, then answer with clear actionable guidance.`

// BaselineSystemPrompt is the system prompt for the toolless baseline
// profile.
const BaselineSystemPrompt = `You are a preventive health assistant. Provide simple, clear, evidence-informed preventive health tips.`

// Library maps variant names to their templates.
var Library = map[string]string{
	Baseline:   BaselinePrompt,
	Structured: StructuredPrompt,
	React:      ReactPrompt,
	PlanSolve:  PlanSolvePrompt,
}

// Variants returns the variant names in a stable presentation order.
func Variants() []string {
	return []string{Baseline, Structured, React, PlanSolve}
}

// Render substitutes {key} placeholders in the named variant. Placeholders
// without a matching var are left in place.
func Render(name string, vars map[string]string) (string, error) {
	tmpl, ok := Library[name]
	if !ok {
		return "", fmt.Errorf("unknown prompt variant: %s", name)
	}

	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl), nil
}
