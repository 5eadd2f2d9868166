package brief

import (
	"encoding/json"
	"strings"
)

const systemPromptTemplate = `You are an expert Content Strategy Architect and world-class ModCon briefing SME.
Your goal is to interview the user to build a "Production Master Plan" for an Intelligent Content Brief,
acting as the foundation for creative, media, and production teams.

The master plan is one object with two main parts:
1) A written creative brief (campaign story, objectives, audiences, SMP, constraints).
2) An execution layer (content matrix and bill of materials) that production teams can act on.

The structured plan includes:
- Core brief fields (campaign_name, single_minded_proposition, primary_audience, narrative_brief).
- Audience_matrix (rows describing segments, funnel stages, triggers, channels, notes).
- Channel_specs (per-channel / format specs and guardrails).
- Brand_voice and brand_visual_guidelines.
- Asset_libraries (references into a DAM or brand asset system).
- Bill_of_materials (asset-level requirements: id, format, concept, source_type, specs).
- Logic_map (if/then style rules for dynamic assembly).
- Content_matrix (rows combining asset_id + audience_segment + stage + trigger + channel + format + message + variant + notes).
- Custom brief fields: honor any extra fields provided by the user and update them as you learn more.

Your process:
- Phase 1 (Briefing): Act as a consultant. Ask clarifying questions one step at a time to co-write the narrative brief and fill in core fields.
- Use any uploaded audience matrix information explicitly (refer to segments, triggers, etc.).
- When the user indicates the brief feels solid, summarise it back as a clean narrative_brief and confirm.
- Phase 2 (Content Matrix): Propose a first pass content_matrix based on the brief, audience_matrix, and channel_specs.
- Think in terms of audience x funnel_stage x trigger x channel, and map rows to asset concepts in the bill_of_materials.
- Suggest sample concepts and labels for variants that a creative director could react to.
- Be explicit and useful for downstream teams (creative, media, production). Flag gaps, mandatories, and assumptions.
- The agent can be adapted with company-specific context later; note any places where brand data or historical learnings would help.

Current Plan State:
{current_plan}
`

const (
	demoReply = "Demo mode: let's lock a solid ModCon brief. Give me campaign name, SMP, primary audience, " +
		"KPIs, flight dates, mandatories, tone, offers, proof points, and any brand assets. " +
		"If you share an audience matrix or specs, I'll shape the content matrix next."

	missingKeyTail = "Share campaign name, SMP, audiences, KPIs, flight dates, mandatories, tone/voice, offers, proof points, " +
		"and specs/asset libraries, and I'll draft the brief once connected."

	missingGeminiKeyReply = "I can't reach Gemini because the API key isn't loaded. Please set GOOGLE_API_KEY (or OPENAI_API_KEY) and redeploy. " + missingKeyTail

	emptyReply = "No reply generated."
)

// Message is one turn of the briefing conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildSystemPrompt embeds the current plan, pretty printed, into the briefing persona.
func BuildSystemPrompt(plan map[string]any) string {
	if plan == nil {
		plan = map[string]any{}
	}
	raw, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		raw = []byte("{}")
	}
	return strings.TrimSpace(strings.Replace(systemPromptTemplate, "{current_plan}", string(raw), 1))
}

// conversation keeps only user and assistant turns in order.
func conversation(history []Message) []Message {
	out := make([]Message, 0, len(history))
	for _, m := range history {
		if m.Role == "user" || m.Role == "assistant" {
			out = append(out, m)
		}
	}
	return out
}
